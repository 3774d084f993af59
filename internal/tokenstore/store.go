// Package tokenstore persists the bearer token across restarts. The token is
// the only state that survives a reload; its presence is what lets the auth
// guard attempt silent re-authentication.
package tokenstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no token is persisted.
var ErrNotFound = errors.New("token not found")

// Store persists a single bearer token.
//
// Error Contract:
// - Load returns ErrNotFound when no token is persisted
// - Clear removes the whole store, not just the token entry, and is a no-op
//   when nothing is persisted
// - infrastructure failures are returned wrapped with context
type Store interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
