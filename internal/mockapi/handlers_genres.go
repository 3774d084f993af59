package mockapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"reelops/internal/genres"
)

func (s *Server) handleListGenres(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r.URL.Query())

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	list := genres.GenreList{Genres: []genres.Genre{}}
	filtered := make([]genres.Genre, 0, len(s.store.genres))
	for _, g := range s.store.genres {
		list.TotalGenres++
		if q.query != "" && !strings.Contains(strings.ToLower(g.Name), q.query) {
			continue
		}
		filtered = append(filtered, *g)
	}

	desc := q.direction == "desc"
	if q.sortBy == "name" {
		sortSlice(filtered, desc, func(a, b genres.Genre) bool { return a.Name < b.Name })
	} else {
		sortSlice(filtered, desc, func(a, b genres.Genre) bool { return a.ID < b.ID })
	}

	if q.fetchAll {
		list.Genres = filtered
	} else {
		list.Genres = paginate(filtered, q.page)
	}
	s.writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetGenre(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Invalid genre id")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	g, ok := s.store.genres[id]
	if !ok {
		s.writeMessage(w, http.StatusNotFound, "Genre not found")
		return
	}
	s.writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleCreateGenre(w http.ResponseWriter, r *http.Request) {
	var input genres.Input
	if !s.decode(w, r, &input) {
		return
	}
	if input.Name == "" {
		s.writeMessage(w, http.StatusBadRequest, "Name is required")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	for _, g := range s.store.genres {
		if strings.EqualFold(g.Name, input.Name) {
			s.writeMessage(w, http.StatusBadRequest, "Genre already exists")
			return
		}
	}
	now := time.Now().UTC()
	g := &genres.Genre{ID: s.store.id(), Name: input.Name, CreatedAt: now, UpdatedAt: now}
	s.store.genres[g.ID] = g
	s.writeJSON(w, http.StatusCreated, g)
}

func (s *Server) handleUpdateGenre(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Invalid genre id")
		return
	}
	var input genres.Input
	if !s.decode(w, r, &input) {
		return
	}
	if input.Name == "" {
		s.writeMessage(w, http.StatusBadRequest, "Name is required")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	g, ok := s.store.genres[id]
	if !ok {
		s.writeMessage(w, http.StatusNotFound, "Genre not found")
		return
	}
	g.Name = input.Name
	touch(&g.UpdatedAt)

	// Keep the refs embedded in movies in sync with the rename.
	for _, m := range s.store.movies {
		for i := range m.Genres {
			if m.Genres[i].ID == id {
				m.Genres[i].Name = g.Name
			}
		}
	}
	s.writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleDeleteGenre(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Invalid genre id")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.genres[id]; !ok {
		s.writeMessage(w, http.StatusNotFound, "Genre not found")
		return
	}
	delete(s.store.genres, id)

	for _, m := range s.store.movies {
		refs := m.Genres[:0]
		for _, ref := range m.Genres {
			if ref.ID != id {
				refs = append(refs, ref)
			}
		}
		m.Genres = refs
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Genre deleted"})
}
