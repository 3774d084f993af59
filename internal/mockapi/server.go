// Package mockapi is an in-memory stand-in for the media-catalog backend.
// Integration tests and local development run against it; it implements
// every endpoint the client core consumes, including the "Access Denied"
// rejection contract for bad bearer tokens.
package mockapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// accessDeniedMessage is the sentinel the client's gateway reacts to.
const accessDeniedMessage = "Access Denied"

// defaultTokenTTL is how long issued tokens stay valid.
const defaultTokenTTL = 2 * time.Hour

type contextKey string

// userIDKey carries the authenticated user's id through the request context.
const userIDKey contextKey = "mockapi.user_id"

// Config configures the mock server.
type Config struct {
	JWTSecret string
	TokenTTL  time.Duration
	Logger    *slog.Logger
}

// Server serves the mock catalog API over in-memory data.
type Server struct {
	secret   []byte
	tokenTTL time.Duration
	logger   *slog.Logger
	store    *memoryStore
	router   chi.Router
}

// New constructs a seeded mock server.
func New(cfg Config) *Server {
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "mock-catalog-secret"
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = defaultTokenTTL
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	s := &Server{
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: cfg.TokenTTL,
		logger:   cfg.Logger,
		store:    newMemoryStore(),
	}

	r := chi.NewRouter()
	r.Post("/api/auth/login", s.handleLogin)
	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Post("/api/auth/logout", s.handleLogout)
		r.Get("/api/users/me", s.handleMe)

		r.Get("/api/users", s.handleListUsers)
		r.Post("/api/users", s.handleCreateUser)
		r.Get("/api/users/{id}", s.handleGetUser)
		r.Put("/api/users/{id}", s.handleUpdateUser)
		r.Delete("/api/users/{id}", s.handleDeleteUser)

		r.Get("/api/movies", s.handleListMovies)
		r.Post("/api/movies", s.handleCreateMovie)
		r.Get("/api/movies/{id}", s.handleGetMovie)
		r.Put("/api/movies/{id}", s.handleUpdateMovie)
		r.Delete("/api/movies/{id}", s.handleDeleteMovie)

		r.Get("/api/genres", s.handleListGenres)
		r.Post("/api/genres", s.handleCreateGenre)
		r.Get("/api/genres/{id}", s.handleGetGenre)
		r.Put("/api/genres/{id}", s.handleUpdateGenre)
		r.Delete("/api/genres/{id}", s.handleDeleteGenre)
	})
	s.router = r
	return s
}

// Handler returns the root http handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// issueToken mints an HS256 bearer token for the given user.
func (s *Server) issueToken(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   jsonID(userID),
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// parseToken validates a bearer token and returns the subject user id.
func (s *Server) parseToken(raw string) (int64, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, jwt.ErrTokenInvalidClaims
	}
	return parseID(claims.Subject)
}

// requireAuth rejects requests without a valid bearer token using the
// Access Denied sentinel the client's gateway reacts to.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			s.writeMessage(w, http.StatusUnauthorized, accessDeniedMessage)
			return
		}
		userID, err := s.parseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			s.writeMessage(w, http.StatusUnauthorized, accessDeniedMessage)
			return
		}
		if _, ok := s.store.findUser(userID); !ok {
			s.writeMessage(w, http.StatusUnauthorized, accessDeniedMessage)
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Errors after WriteHeader cannot change the status code, so we ignore
	// encoding errors.
	_ = json.NewEncoder(w).Encode(response)
}

func (s *Server) writeMessage(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"message": message})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, out any) bool {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
