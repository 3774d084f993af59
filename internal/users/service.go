// Package users holds the typed service functions for the /api/users
// resource.
package users

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"reelops/internal/gateway"
	"reelops/internal/session"
)

// Doer is the gateway interface the service depends on.
type Doer interface {
	Do(ctx context.Context, req gateway.Request) *gateway.Result
}

// Service builds user requests and unwraps their responses. A nil, nil
// return from any method means the call was cancelled or short-circuited by
// a forced logout; it is not an error.
type Service struct {
	gw Doer
}

// NewService constructs a user service over the given gateway.
func NewService(gw Doer) *Service {
	return &Service{gw: gw}
}

// List fetches a page of users. Zero-valued params are omitted from the
// query string.
func (s *Service) List(ctx context.Context, p ListParams) (*UserList, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(p.Page))
	if p.SortBy != "" {
		params.Set("sortBy", p.SortBy)
	}
	if p.Direction != "" {
		params.Set("direction", p.Direction)
	}
	if p.Status != "" {
		params.Set("status", p.Status)
	}
	if p.Query != "" {
		params.Set("query", p.Query)
	}

	res := s.gw.Do(ctx, gateway.Request{Method: "get", Path: "/api/users", Params: params})

	var list UserList
	ok, err := gateway.Unwrap(res, &list)
	if err != nil || !ok {
		return nil, err
	}
	return &list, nil
}

// Get fetches a single user by id.
func (s *Service) Get(ctx context.Context, userID int64) (*User, error) {
	res := s.gw.Do(ctx, gateway.Request{Method: "get", Path: fmt.Sprintf("/api/users/%d", userID)})

	var user User
	ok, err := gateway.Unwrap(res, &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

// Create creates a user and returns the server's representation.
func (s *Service) Create(ctx context.Context, input CreateInput) (*User, error) {
	res := s.gw.Do(ctx, gateway.Request{Method: "post", Path: "/api/users", Body: input})

	var user User
	ok, err := gateway.Unwrap(res, &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

// Update replaces a user's editable fields.
func (s *Service) Update(ctx context.Context, userID int64, input UpdateInput) (*User, error) {
	res := s.gw.Do(ctx, gateway.Request{Method: "put", Path: fmt.Sprintf("/api/users/%d", userID), Body: input})

	var user User
	ok, err := gateway.Unwrap(res, &user)
	if err != nil || !ok {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user.
func (s *Service) Delete(ctx context.Context, userID int64) error {
	res := s.gw.Do(ctx, gateway.Request{Method: "delete", Path: fmt.Sprintf("/api/users/%d", userID)})

	_, err := gateway.Unwrap(res, nil)
	return err
}

// CurrentUser resolves the identity behind the current bearer token. It
// satisfies the guard's IdentityFetcher contract: nil, nil means the call
// produced no result.
func (s *Service) CurrentUser(ctx context.Context) (*session.Session, error) {
	res := s.gw.Do(ctx, gateway.Request{Method: "get", Path: "/api/users/me"})

	var identity session.Session
	ok, err := gateway.Unwrap(res, &identity)
	if err != nil || !ok {
		return nil, err
	}
	return &identity, nil
}
