// Package dashboard aggregates catalog counters for the overview screen.
package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"reelops/internal/genres"
	"reelops/internal/movies"
	"reelops/internal/users"
)

// statsTimeout bounds the whole aggregation; a slow leg cancels its peers.
const statsTimeout = 10 * time.Second

// UserLister, MovieLister and GenreLister are the service interfaces the
// aggregation depends on.
type UserLister interface {
	List(ctx context.Context, p users.ListParams) (*users.UserList, error)
}

type MovieLister interface {
	List(ctx context.Context, p movies.ListParams) (*movies.MovieList, error)
}

type GenreLister interface {
	List(ctx context.Context, p genres.ListParams) (*genres.GenreList, error)
}

// Stats are the counters shown on the overview screen.
type Stats struct {
	TotalUsers    int
	ActiveUsers   int
	InactiveUsers int
	BlockedUsers  int
	TotalMovies   int
	TotalGenres   int
}

// Service fans the counter fetches out in parallel.
type Service struct {
	users  UserLister
	movies MovieLister
	genres GenreLister
}

// NewService constructs the dashboard aggregation service.
func NewService(users UserLister, movies MovieLister, genres GenreLister) *Service {
	return &Service{users: users, movies: movies, genres: genres}
}

// statsFetchResult holds results from the parallel fetches. Each goroutine
// writes to its own field, avoiding data races.
type statsFetchResult struct {
	users  *users.UserList
	movies *movies.MovieList
	genres *genres.GenreList
}

// Stats gathers the counters with shared context cancellation: the first
// failing fetch cancels the rest. A fetch that resolved to no result (forced
// logout or cancellation) yields zero counters for its leg.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, statsTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	var result statsFetchResult

	g.Go(func() error {
		list, err := s.users.List(ctx, users.ListParams{Page: 1})
		result.users = list
		return err
	})
	g.Go(func() error {
		list, err := s.movies.List(ctx, movies.ListParams{Page: 1})
		result.movies = list
		return err
	})
	g.Go(func() error {
		list, err := s.genres.List(ctx, genres.ListParams{Page: 1})
		result.genres = list
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &Stats{}
	if result.users != nil {
		stats.TotalUsers = result.users.TotalUsers
		stats.ActiveUsers = result.users.ActiveUsers
		stats.InactiveUsers = result.users.InactiveUsers
		stats.BlockedUsers = result.users.BlockedUsers
	}
	if result.movies != nil {
		stats.TotalMovies = result.movies.TotalMovies
	}
	if result.genres != nil {
		stats.TotalGenres = result.genres.TotalGenres
	}
	return stats, nil
}
