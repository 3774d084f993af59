// Package tracer provides a lightweight tracing abstraction for the gateway.
//
// The gateway emits a span per outbound request while staying decoupled from
// the OpenTelemetry APIs. NoopTracer serves tests; OTelTracer adapts the
// global OpenTelemetry provider for production.
package tracer

import "context"

// Span represents an active trace span.
type Span interface {
	// End completes the span, recording any error that occurred.
	// End must be called exactly once, typically via defer.
	End(err error)

	// SetAttributes adds key-value pairs to the span.
	SetAttributes(attrs ...Attribute)

	// AddEvent records a timestamped event within the span.
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans for outbound requests.
// Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an int attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

// Span and attribute names used by the gateway.
const (
	SpanRequest = "gateway.request"

	AttrMethod    = "http.method"
	AttrPath      = "http.path"
	AttrStatus    = "http.status"
	AttrRequestID = "request_id"
	AttrCanceled  = "canceled"
)

// Event names used by the gateway.
const (
	EventForcedLogout = "gateway.forced_logout"
)
