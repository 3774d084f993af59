// Package genres holds the typed service functions for the /api/genres
// resource.
package genres

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

// Service builds genre requests and unwraps their responses. A nil, nil
// return means the call was cancelled or short-circuited by a forced logout.
type Service struct {
	gw Doer
}

// NewService constructs a genre service over the given gateway.
func NewService(gw Doer) *Service {
	return &Service{gw: gw}
}

// List fetches a page of genres, or every genre when FetchAll is set.
func (s *Service) List(ctx context.Context, p ListParams) (*GenreList, error) {
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
	if p.FetchAll {
		params.Set("fetchAll", "true")
	}

	res := s.gw.Do(ctx, gateway.Request{Method: "get", Path: "/api/genres", Params: params})

	var list GenreList
	ok, err := gateway.Unwrap(res, &list)
	if err != nil || !ok {
		return nil, err
	}
	return &list, nil
}

// Get fetches a single genre by id.
func (s *Service) Get(ctx context.Context, genreID int64) (*Genre, error) {
	res := s.gw.Do(ctx, gateway.Request{Method: "get", Path: fmt.Sprintf("/api/genres/%d", genreID)})

	var genre Genre
	ok, err := gateway.Unwrap(res, &genre)
	if err != nil || !ok {
		return nil, err
	}
	return &genre, nil
}

// Create creates a genre.
func (s *Service) Create(ctx context.Context, input Input) (*Genre, error) {
	res := s.gw.Do(ctx, gateway.Request{Method: "post", Path: "/api/genres", Body: input})

	var genre Genre
	ok, err := gateway.Unwrap(res, &genre)
	if err != nil || !ok {
		return nil, err
	}
	return &genre, nil
}

// Update renames a genre.
func (s *Service) Update(ctx context.Context, genreID int64, input Input) (*Genre, error) {
	res := s.gw.Do(ctx, gateway.Request{Method: "put", Path: fmt.Sprintf("/api/genres/%d", genreID), Body: input})

	var genre Genre
	ok, err := gateway.Unwrap(res, &genre)
	if err != nil || !ok {
		return nil, err
	}
	return &genre, nil
}

// Delete removes a genre.
func (s *Service) Delete(ctx context.Context, genreID int64) error {
	res := s.gw.Do(ctx, gateway.Request{Method: "delete", Path: fmt.Sprintf("/api/genres/%d", genreID)})

	_, err := gateway.Unwrap(res, nil)
	return err
}
