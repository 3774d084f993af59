package mockapi

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"reelops/internal/users"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse is the identity shape returned by login and /api/users/me.
type authResponse struct {
	users.User
	Token string `json:"token"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !s.decode(w, r, &req) {
		return
	}

	record, ok := s.store.findUserByEmail(req.Email)
	if !ok || bcrypt.CompareHashAndPassword(record.passwordHash, []byte(req.Password)) != nil {
		s.writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if record.AccountStatus == users.StatusBlocked {
		s.writeMessage(w, http.StatusForbidden, "Account is blocked")
		return
	}

	token, err := s.issueToken(record.ID)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "failed to issue token", "error", err)
		s.writeMessage(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	s.writeJSON(w, http.StatusOK, authResponse{User: record.User, Token: token})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	// The mock has no server-side session registry; issued tokens simply
	// run out their expiry.
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(userIDKey).(int64)
	record, ok := s.store.findUser(userID)
	if !ok {
		s.writeMessage(w, http.StatusUnauthorized, accessDeniedMessage)
		return
	}

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	s.writeJSON(w, http.StatusOK, authResponse{User: record.User, Token: token})
}

// touch bumps UpdatedAt on write operations.
func touch(t *time.Time) {
	*t = time.Now().UTC()
}
