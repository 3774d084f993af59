package mockapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"reelops/internal/movies"
)

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r.URL.Query())

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	list := movies.MovieList{Movies: []movies.Movie{}}
	filtered := make([]movies.Movie, 0, len(s.store.movies))
	for _, m := range s.store.movies {
		list.TotalMovies++
		if q.contentType != "" && m.ContentType != q.contentType {
			continue
		}
		if q.query != "" && !strings.Contains(strings.ToLower(m.Title), q.query) {
			continue
		}
		filtered = append(filtered, *m)
	}

	desc := q.direction == "desc"
	switch q.sortBy {
	case "title":
		sortSlice(filtered, desc, func(a, b movies.Movie) bool { return a.Title < b.Title })
	case "releaseYear":
		sortSlice(filtered, desc, func(a, b movies.Movie) bool { return a.ReleaseYear < b.ReleaseYear })
	default:
		sortSlice(filtered, desc, func(a, b movies.Movie) bool { return a.ID < b.ID })
	}

	list.Movies = paginate(filtered, q.page)
	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Invalid movie id")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	m, ok := s.store.movies[id]
	if !ok {
		s.writeMessage(w, http.StatusNotFound, "Movie not found")
		return
	}
	s.writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleCreateMovie(w http.ResponseWriter, r *http.Request) {
	var input movies.CreateInput
	if !s.decode(w, r, &input) {
		return
	}
	if input.Title == "" || input.ContentType == "" {
		s.writeMessage(w, http.StatusBadRequest, "Title and contentType are required")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	now := time.Now().UTC()
	m := &movies.Movie{
		ID: s.store.id(), Title: input.Title, ContentType: input.ContentType,
		Description: input.Description, MaturityRating: input.MaturityRating,
		ReleaseYear: input.ReleaseYear, Duration: input.Duration,
		ThumbnailURL: input.ThumbnailURL, Director: input.Director,
		IsFeatured: input.IsFeatured, Seasons: input.Seasons,
		Genres:    s.resolveGenres(input.GenreIDs),
		CreatedAt: now, UpdatedAt: now,
	}
	s.store.movies[m.ID] = m
	s.writeJSON(w, http.StatusCreated, m)
}

func (s *Server) handleUpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Invalid movie id")
		return
	}
	var input movies.UpdateInput
	if !s.decode(w, r, &input) {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	m, ok := s.store.movies[id]
	if !ok {
		s.writeMessage(w, http.StatusNotFound, "Movie not found")
		return
	}

	m.Title = input.Title
	m.ContentType = input.ContentType
	m.Description = input.Description
	m.MaturityRating = input.MaturityRating
	m.ReleaseYear = input.ReleaseYear
	m.Duration = input.Duration
	m.ThumbnailURL = input.ThumbnailURL
	m.Director = input.Director
	m.IsFeatured = input.IsFeatured
	m.Seasons = input.Seasons
	m.Genres = s.resolveGenres(input.GenreIDs)
	touch(&m.UpdatedAt)
	s.writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleDeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Invalid movie id")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.movies[id]; !ok {
		s.writeMessage(w, http.StatusNotFound, "Movie not found")
		return
	}
	delete(s.store.movies, id)
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Movie deleted"})
}

// resolveGenres maps genre ids to embedded refs, dropping unknown ids.
// Caller must hold the store lock.
func (s *Server) resolveGenres(ids []int64) []movies.GenreRef {
	if len(ids) == 0 {
		return nil
	}
	refs := make([]movies.GenreRef, 0, len(ids))
	for _, id := range ids {
		if g, ok := s.store.genres[id]; ok {
			refs = append(refs, movies.GenreRef{ID: g.ID, Name: g.Name})
		}
	}
	return refs
}
