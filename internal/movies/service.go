// Package movies holds the typed service functions for the /api/movies
// resource.
package movies

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"reelops/internal/gateway"
)

// Doer is the gateway interface the service depends on.
type Doer interface {
	Do(ctx context.Context, req gateway.Request) *gateway.Result
}

// Service builds movie requests and unwraps their responses. A nil, nil
// return means the call was cancelled or short-circuited by a forced logout.
type Service struct {
	gw Doer
}

// NewService constructs a movie service over the given gateway.
func NewService(gw Doer) *Service {
	return &Service{gw: gw}
}

// List fetches a page of titles, newest first unless overridden.
func (s *Service) List(ctx context.Context, p ListParams) (*MovieList, error) {
	if p.SortBy == "" {
		p.SortBy = "id"
	}
	if p.Direction == "" {
		p.Direction = "desc"
	}

	params := url.Values{}
	params.Set("page", strconv.Itoa(p.Page))
	params.Set("sortBy", p.SortBy)
	params.Set("direction", p.Direction)
	if p.ContentType != "" {
		params.Set("contentType", p.ContentType)
	}
	if p.Query != "" {
		params.Set("query", p.Query)
	}

	res := s.gw.Do(ctx, gateway.Request{Method: "get", Path: "/api/movies", Params: params})

	var list MovieList
	ok, err := gateway.Unwrap(res, &list)
	if err != nil || !ok {
		return nil, err
	}
	return &list, nil
}

// Get fetches a single title by id.
func (s *Service) Get(ctx context.Context, movieID int64) (*Movie, error) {
	res := s.gw.Do(ctx, gateway.Request{Method: "get", Path: fmt.Sprintf("/api/movies/%d", movieID)})

	var movie Movie
	ok, err := gateway.Unwrap(res, &movie)
	if err != nil || !ok {
		return nil, err
	}
	return &movie, nil
}

// Create creates a title, including nested seasons and episodes for series.
func (s *Service) Create(ctx context.Context, input CreateInput) (*Movie, error) {
	res := s.gw.Do(ctx, gateway.Request{Method: "post", Path: "/api/movies", Body: input})

	var movie Movie
	ok, err := gateway.Unwrap(res, &movie)
	if err != nil || !ok {
		return nil, err
	}
	return &movie, nil
}

// Update replaces a title.
func (s *Service) Update(ctx context.Context, movieID int64, input UpdateInput) (*Movie, error) {
	res := s.gw.Do(ctx, gateway.Request{Method: "put", Path: fmt.Sprintf("/api/movies/%d", movieID), Body: input})

	var movie Movie
	ok, err := gateway.Unwrap(res, &movie)
	if err != nil || !ok {
		return nil, err
	}
	return &movie, nil
}

// Delete removes a title.
func (s *Service) Delete(ctx context.Context, movieID int64) error {
	res := s.gw.Do(ctx, gateway.Request{Method: "delete", Path: fmt.Sprintf("/api/movies/%d", movieID)})

	_, err := gateway.Unwrap(res, nil)
	return err
}
