// Package authn implements the login and logout flows. The forced-logout
// flow built by ForcedLogout is also the gateway's Access Denied hook, so
// rejection anywhere in the app converges on the same cleanup.
package authn

import (
	"context"
	"errors"
	"log/slog"

	"reelops/internal/gateway"
	"reelops/internal/guard"
	"reelops/internal/session"
	"reelops/internal/tokenstore"
)

// Doer is the gateway interface the service depends on.
type Doer interface {
	Do(ctx context.Context, req gateway.Request) *gateway.Result
}

// IdentityFetcher resolves the identity behind the current bearer token.
type IdentityFetcher interface {
	CurrentUser(ctx context.Context) (*session.Session, error)
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the part of the login body the flow needs.
type loginResponse struct {
	Token string `json:"token"`
}

// Service drives the login and logout flows.
type Service struct {
	gw       Doer
	sessions *session.Store
	tokens   tokenstore.Store
	identity IdentityFetcher
	nav      guard.Navigator
	logger   *slog.Logger
}

// Option configures optional service dependencies.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService constructs the auth flow service.
func NewService(gw Doer, sessions *session.Store, tokens tokenstore.Store, identity IdentityFetcher, nav guard.Navigator, opts ...Option) (*Service, error) {
	if gw == nil || sessions == nil || tokens == nil || identity == nil || nav == nil {
		return nil, errors.New("authn: all dependencies are required")
	}
	s := &Service{
		gw:       gw,
		sessions: sessions,
		tokens:   tokens,
		identity: identity,
		nav:      nav,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s, nil
}

// Login exchanges credentials for a token, confirms the identity behind it
// and persists the token only once the identity is confirmed. On success it
// navigates home.
func (s *Service) Login(ctx context.Context, creds Credentials) error {
	res := s.gw.Do(ctx, gateway.Request{Method: "post", Path: "/api/auth/login", Body: creds})

	var login loginResponse
	ok, err := gateway.Unwrap(res, &login)
	if err != nil {
		return err
	}
	if !ok || login.Token == "" {
		// Cancelled, or a forced logout fired; nothing to do.
		return nil
	}

	// Token-only session first so the identity fetch carries the bearer.
	s.sessions.Set(session.TokenOnly(login.Token))

	identity, err := s.identity.CurrentUser(ctx)
	if err != nil || identity == nil {
		s.sessions.Clear()
		if err != nil {
			return err
		}
		return nil
	}

	s.sessions.Set(identity)
	if err := s.tokens.Save(ctx, login.Token); err != nil {
		s.logger.WarnContext(ctx, "failed to persist token", "error", err)
	}
	s.nav.NavigateTo(guard.HomeRoute)
	return nil
}

// Logout invalidates the server-side session best effort, then runs the
// local forced-logout flow.
func (s *Service) Logout(ctx context.Context) error {
	res := s.gw.Do(ctx, gateway.Request{Method: "post", Path: "/api/auth/logout", Body: struct{}{}})
	if res != nil && res.Err != nil {
		s.logger.WarnContext(ctx, "server-side logout failed", "error", res.Err)
	}

	ForcedLogout(s.sessions, s.tokens, s.nav, s.logger)(ctx)
	return nil
}

// ForcedLogout builds the flow the gateway invokes on an Access Denied
// response: clear the persisted token wholesale, clear the session, and
// force navigation to the sign-in route. It performs no server call, so an
// already-rejected token cannot loop the flow through the gateway again.
func ForcedLogout(sessions *session.Store, tokens tokenstore.Store, nav guard.Navigator, logger *slog.Logger) func(ctx context.Context) {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context) {
		if err := tokens.Clear(ctx); err != nil {
			logger.WarnContext(ctx, "failed to clear persisted token", "error", err)
		}
		sessions.Clear()
		nav.NavigateTo(guard.SignInRoute)
	}
}
