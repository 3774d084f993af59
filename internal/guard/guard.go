// Package guard decides, on every navigation, whether the current operator
// is authenticated and drives redirects accordingly.
package guard

//go:generate mockgen -source=guard.go -destination=mocks/mocks.go -package=mocks IdentityFetcher,Navigator

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"reelops/internal/session"
	"reelops/internal/tokenstore"
)

// Well-known routes.
const (
	SignInRoute = "/sign-in"
	HomeRoute   = "/"
)

// identityFetchKey deduplicates concurrent identity fetches; overlapping
// navigations share one in-flight call.
const identityFetchKey = "current-user"

// State is the guard's derived authentication state. It is computed from the
// session and token stores on demand, never stored.
type State int

const (
	// StateNoSessionNoToken means neither a session nor a persisted token
	// exists; only the sign-in route is reachable.
	StateNoSessionNoToken State = iota
	// StateTokenOnlyPending means a persisted token exists but the identity
	// fetch has not resolved yet.
	StateTokenOnlyPending
	// StateAuthenticated means a session is present.
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateTokenOnlyPending:
		return "token_only_pending"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "no_session_no_token"
	}
}

// IdentityFetcher resolves the identity behind the current bearer token.
// A nil session with a nil error means the call produced no result (for
// example because the gateway's forced logout fired mid-fetch).
type IdentityFetcher interface {
	CurrentUser(ctx context.Context) (*session.Session, error)
}

// Navigator forces navigation to a route. Redirects go through it so the
// guard stays independent of how the surrounding app renders.
type Navigator interface {
	NavigateTo(route string)
}

// Guard evaluates the authentication state on each route change.
//
// The forced-logout flow performs its own redirect; the guard's route-keyed
// evaluation is the backstop that catches app start and hard reloads.
type Guard struct {
	sessions     *session.Store
	tokens       tokenstore.Store
	identity     IdentityFetcher
	nav          Navigator
	unauthRoutes map[string]struct{}
	group        singleflight.Group
	logger       *slog.Logger
}

// Option configures optional guard dependencies.
type Option func(*Guard)

func WithLogger(logger *slog.Logger) Option {
	return func(g *Guard) {
		g.logger = logger
	}
}

// New constructs a guard. The unauthenticated allow-list contains only the
// sign-in route.
func New(sessions *session.Store, tokens tokenstore.Store, identity IdentityFetcher, nav Navigator, opts ...Option) (*Guard, error) {
	if sessions == nil || tokens == nil {
		return nil, errors.New("guard: session and token stores are required")
	}
	if identity == nil || nav == nil {
		return nil, errors.New("guard: identity fetcher and navigator are required")
	}

	g := &Guard{
		sessions: sessions,
		tokens:   tokens,
		identity: identity,
		nav:      nav,
		unauthRoutes: map[string]struct{}{
			SignInRoute: {},
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g, nil
}

// State derives the current authentication state.
func (g *Guard) State(ctx context.Context) State {
	if g.sessions.Get() != nil {
		return StateAuthenticated
	}
	if token, err := g.tokens.Load(ctx); err == nil && token != "" {
		return StateTokenOnlyPending
	}
	return StateNoSessionNoToken
}

// Evaluate runs the guard's transition logic for the given route. It is
// invoked on every route change; a session cleared mid-navigation is caught
// by the forced-logout redirect, not by re-running Evaluate.
func (g *Guard) Evaluate(ctx context.Context, route string) error {
	if g.sessions.Get() != nil {
		// Terminal allow state for this navigation.
		return nil
	}

	token, err := g.tokens.Load(ctx)
	if err != nil && !errors.Is(err, tokenstore.ErrNotFound) {
		return err
	}

	if token == "" {
		if _, ok := g.unauthRoutes[route]; !ok {
			g.nav.NavigateTo(SignInRoute)
		}
		return nil
	}

	// A persisted token without a session: write a token-only session first
	// so the identity fetch itself carries the bearer token.
	g.sessions.Set(session.TokenOnly(token))

	identity, err := g.fetchIdentity(ctx)
	if err != nil || identity == nil {
		if err != nil {
			g.logger.WarnContext(ctx, "identity fetch failed, redirecting to sign-in", "error", err)
		}
		g.nav.NavigateTo(SignInRoute)
		return nil
	}

	g.sessions.Set(identity)
	if route == SignInRoute {
		g.nav.NavigateTo(HomeRoute)
	}
	return nil
}

// fetchIdentity resolves the current user, sharing a single in-flight call
// between concurrent navigations.
func (g *Guard) fetchIdentity(ctx context.Context) (*session.Session, error) {
	v, err, _ := g.group.Do(identityFetchKey, func() (any, error) {
		return g.identity.CurrentUser(ctx)
	})
	if err != nil {
		return nil, err
	}
	identity, _ := v.(*session.Session)
	return identity, nil
}
