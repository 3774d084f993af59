package tracer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"reelops/internal/gateway/tracer"
)

func TestNoopTracer_Start(t *testing.T) {
	tr := tracer.NewNoop()
	ctx := context.Background()

	newCtx, span := tr.Start(ctx, tracer.SpanRequest,
		tracer.String(tracer.AttrMethod, "get"),
		tracer.Bool(tracer.AttrCanceled, false),
	)

	// Context should be returned unchanged
	assert.Equal(t, ctx, newCtx)
	require.NotNil(t, span)

	// Span methods should not panic
	span.SetAttributes(tracer.Int(tracer.AttrStatus, 200))
	span.AddEvent(tracer.EventForcedLogout)
	span.End(nil)
}

func TestNoopTracer_SpanEndWithError(t *testing.T) {
	tr := tracer.NewNoop()

	_, span := tr.Start(context.Background(), tracer.SpanRequest)
	require.NotNil(t, span)

	// Should not panic when ending with error
	span.End(errors.New("test error"))
}

func TestOTelTracer_DefaultProvider(t *testing.T) {
	tr := tracer.NewOTel()
	ctx := context.Background()

	newCtx, span := tr.Start(ctx, tracer.SpanRequest,
		tracer.String(tracer.AttrMethod, "get"),
		tracer.String(tracer.AttrPath, "/api/movies"),
		tracer.Int(tracer.AttrStatus, 200),
		tracer.Bool(tracer.AttrCanceled, false),
	)

	require.NotNil(t, newCtx)
	require.NotNil(t, span)

	span.SetAttributes(tracer.Int(tracer.AttrStatus, 404))
	span.AddEvent(tracer.EventForcedLogout, tracer.String(tracer.AttrPath, "/api/movies"))
	span.End(nil)
}

func TestOTelTracer_EndWithErrorRecordsStatus(t *testing.T) {
	tr := tracer.NewOTel()

	_, span := tr.Start(context.Background(), tracer.SpanRequest)
	require.NotNil(t, span)

	span.End(errors.New("request failed"))
}

func TestOTelTracer_InjectedTracer(t *testing.T) {
	provider := noop.NewTracerProvider()
	tr := tracer.NewOTel(tracer.WithOTelTracer(provider.Tracer("test")))

	_, span := tr.Start(context.Background(), tracer.SpanRequest)
	require.NotNil(t, span)
	span.End(nil)
}
