// Package gateway is the single choke point for all outbound API calls.
//
// Every request picks up the current bearer token, and every response is
// normalized into a Result so callers never handle transport errors
// directly. One contract wrinkle is preserved deliberately: when the server
// answers with the "Access Denied" sentinel, Do triggers the forced-logout
// flow and returns a nil Result instead of the usual failure shape. Callers
// must treat a nil Result as "no result". Flattening this into the normal
// error path would change observable behavior and needs a product decision
// first.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	gwmetrics "reelops/internal/gateway/metrics"
	"reelops/internal/gateway/tracer"
	"reelops/internal/session"
	"reelops/internal/tokenstore"
	"reelops/pkg/apierrors"
)

// AccessDeniedMessage is the well-known server signal that forces a logout.
const AccessDeniedMessage = "Access Denied"

// defaultFailureStatus is reported when the transport produced no status
// code at all (connection refused, cancellation, malformed response).
const defaultFailureStatus = http.StatusBadRequest

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// LogoutFunc is invoked when the server signals Access Denied. It clears the
// session store and persisted token and forces navigation to the sign-in
// route. The context passed in is the request's own context.
type LogoutFunc func(ctx context.Context)

// Request describes a single outbound call.
type Request struct {
	Method string
	Path   string
	Body   any
	Params url.Values
}

// Result is the normalized outcome of a call. Exactly one of Data and Err is
// meaningful: Err nil means Data holds the raw response body.
type Result struct {
	Status int
	Data   json.RawMessage
	Err    error
}

// errorBody is the error payload shape the API uses.
type errorBody struct {
	Message string `json:"message"`
}

// Config holds the required gateway dependencies.
type Config struct {
	BaseURL  string
	Tokens   tokenstore.Store
	Sessions *session.Store
	Logout   LogoutFunc
}

// Gateway performs all outbound HTTP calls for the client core.
type Gateway struct {
	baseURL  string
	tokens   tokenstore.Store
	sessions *session.Store
	logout   LogoutFunc
	client   HTTPDoer
	logger   *slog.Logger
	metrics  *gwmetrics.Metrics
	tracer   tracer.Tracer
}

// Option configures optional gateway dependencies.
type Option func(*Gateway)

func WithHTTPClient(client HTTPDoer) Option {
	return func(g *Gateway) {
		g.client = client
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) {
		g.logger = logger
	}
}

func WithMetrics(m *gwmetrics.Metrics) Option {
	return func(g *Gateway) {
		g.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(g *Gateway) {
		g.tracer = t
	}
}

// New constructs a gateway. BaseURL, Tokens, Sessions and Logout are
// required; the HTTP client, logger, metrics and tracer default to sensible
// implementations.
func New(cfg Config, opts ...Option) (*Gateway, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("gateway: base URL is required")
	}
	if cfg.Tokens == nil || cfg.Sessions == nil {
		return nil, errors.New("gateway: token and session stores are required")
	}
	if cfg.Logout == nil {
		return nil, errors.New("gateway: logout func is required")
	}

	g := &Gateway{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		tokens:   cfg.Tokens,
		sessions: cfg.Sessions,
		logout:   cfg.Logout,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.client == nil {
		g.client = &http.Client{Timeout: 30 * time.Second}
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	if g.tracer == nil {
		g.tracer = tracer.NewNoop()
	}
	return g, nil
}

// Do performs the request and normalizes the outcome. It never returns a Go
// error; failures are carried in Result.Err. The returned Result is nil only
// when the Access Denied short-circuit fired.
func (g *Gateway) Do(ctx context.Context, req Request) *Result {
	// Own cancellation scope, linked to the caller's context so external
	// cancellation propagates and aborts the in-flight request.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	requestID := uuid.NewString()
	ctx, span := g.tracer.Start(ctx, tracer.SpanRequest,
		tracer.String(tracer.AttrMethod, req.Method),
		tracer.String(tracer.AttrPath, req.Path),
		tracer.String(tracer.AttrRequestID, requestID),
	)

	start := time.Now()
	result := g.do(ctx, req, requestID, span)
	g.observe(req.Method, result, time.Since(start))

	switch {
	case result == nil:
		span.End(apierrors.New(apierrors.CodeAccessDenied, AccessDeniedMessage))
	case result.Err != nil:
		span.SetAttributes(tracer.Int(tracer.AttrStatus, result.Status),
			tracer.Bool(tracer.AttrCanceled, apierrors.IsCanceled(result.Err)))
		span.End(result.Err)
	default:
		span.SetAttributes(tracer.Int(tracer.AttrStatus, result.Status))
		span.End(nil)
	}
	return result
}

func (g *Gateway) do(ctx context.Context, req Request, requestID string, span tracer.Span) *Result {
	httpReq, err := g.buildRequest(ctx, req, requestID)
	if err != nil {
		return &Result{
			Status: defaultFailureStatus,
			Err:    apierrors.Wrap(err, apierrors.CodeBadRequest, "failed to build request"),
		}
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		if apierrors.IsCanceled(err) || ctx.Err() != nil {
			return &Result{
				Status: defaultFailureStatus,
				Err:    apierrors.Wrap(fmt.Errorf("request aborted: %w", context.Canceled), apierrors.CodeCanceled, ""),
			}
		}
		return &Result{
			Status: defaultFailureStatus,
			Err:    apierrors.Wrap(err, apierrors.CodeRequestFailed, ""),
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Result{
			Status: resp.StatusCode,
			Err:    apierrors.Wrap(err, apierrors.CodeRequestFailed, "failed to read response"),
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &Result{Status: resp.StatusCode, Data: body}
	}

	var apiErr errorBody
	_ = json.Unmarshal(body, &apiErr)

	if apiErr.Message == AccessDeniedMessage {
		g.logger.WarnContext(ctx, "access denied by server, forcing logout",
			"path", req.Path,
			"request_id", requestID,
		)
		if g.metrics != nil {
			g.metrics.ForcedLogouts.Inc()
		}
		span.AddEvent(tracer.EventForcedLogout)
		g.logout(ctx)
		return nil
	}

	return &Result{
		Status: resp.StatusCode,
		Err:    apierrors.New(codeForStatus(resp.StatusCode), apiErr.Message),
	}
}

func (g *Gateway) buildRequest(ctx context.Context, req Request, requestID string) (*http.Request, error) {
	target := g.baseURL + req.Path
	if len(req.Params) > 0 {
		target += "?" + req.Params.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, strings.ToUpper(req.Method), target, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if token := g.currentToken(ctx); token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}
	return httpReq, nil
}

// currentToken prefers the persisted token and falls back to the in-memory
// session, matching the transitional state where one exists without the
// other.
func (g *Gateway) currentToken(ctx context.Context) string {
	token, err := g.tokens.Load(ctx)
	if err == nil && token != "" {
		return token
	}
	if err != nil && !errors.Is(err, tokenstore.ErrNotFound) {
		g.logger.WarnContext(ctx, "failed to load persisted token", "error", err)
	}
	return g.sessions.Token()
}

func (g *Gateway) observe(method string, result *Result, elapsed time.Duration) {
	if g.metrics == nil {
		return
	}
	status := "denied"
	if result != nil {
		status = statusClass(result.Status)
		if result.Err != nil {
			if apierrors.IsCanceled(result.Err) {
				g.metrics.CanceledRequests.Inc()
			} else {
				g.metrics.RequestFailures.WithLabelValues(method).Inc()
			}
		}
	}
	g.metrics.RequestsTotal.WithLabelValues(method, status).Inc()
	g.metrics.RequestDurationMs.WithLabelValues(method).Observe(float64(elapsed.Milliseconds()))
}

func statusClass(status int) string {
	return fmt.Sprintf("%dxx", status/100)
}

func codeForStatus(status int) apierrors.Code {
	switch status {
	case http.StatusUnauthorized:
		return apierrors.CodeUnauthorized
	case http.StatusNotFound:
		return apierrors.CodeNotFound
	case http.StatusBadRequest:
		return apierrors.CodeBadRequest
	default:
		return apierrors.CodeRequestFailed
	}
}
