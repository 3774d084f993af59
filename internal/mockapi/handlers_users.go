package mockapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"reelops/internal/users"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	q := parseListQuery(r.URL.Query())

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	list := users.UserList{Users: []users.User{}}
	filtered := make([]users.User, 0, len(s.store.users))
	for _, record := range s.store.users {
		switch record.AccountStatus {
		case users.StatusActive:
			list.ActiveUsers++
		case users.StatusInactive:
			list.InactiveUsers++
		case users.StatusBlocked:
			list.BlockedUsers++
		}
		list.TotalUsers++

		if q.status != "" && record.AccountStatus != q.status {
			continue
		}
		if q.query != "" && !matchesUser(&record.User, q.query) {
			continue
		}
		filtered = append(filtered, record.User)
	}

	sortUsers(filtered, q)
	list.Users = paginate(filtered, q.page)
	s.writeJSON(w, http.StatusOK, list)
}

func matchesUser(u *users.User, query string) bool {
	haystack := strings.ToLower(u.FirstName + " " + u.LastName + " " + u.Email)
	return strings.Contains(haystack, query)
}

func sortUsers(list []users.User, q listQuery) {
	desc := q.direction == "desc"
	switch q.sortBy {
	case "email":
		sortSlice(list, desc, func(a, b users.User) bool { return a.Email < b.Email })
	case "firstName":
		sortSlice(list, desc, func(a, b users.User) bool { return a.FirstName < b.FirstName })
	case "createdAt":
		sortSlice(list, desc, func(a, b users.User) bool { return a.CreatedAt.Before(b.CreatedAt) })
	default:
		sortSlice(list, desc, func(a, b users.User) bool { return a.ID < b.ID })
	}
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	record, ok := s.store.findUser(id)
	if !ok {
		s.writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	s.writeJSON(w, http.StatusOK, record.User)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var input users.CreateInput
	if !s.decode(w, r, &input) {
		return
	}
	if input.Email == "" || input.Password == "" {
		s.writeMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	if _, exists := s.store.findUserByEmail(input.Email); exists {
		s.writeMessage(w, http.StatusBadRequest, "Email already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.writeMessage(w, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	now := time.Now().UTC()
	record := &userRecord{
		User: users.User{
			ID: s.store.id(), FirstName: input.FirstName, LastName: input.LastName,
			Email: input.Email, Role: input.Role, AccountStatus: input.AccountStatus,
			CreatedAt: now, UpdatedAt: now,
		},
		passwordHash: hash,
	}
	if record.AccountStatus == "" {
		record.AccountStatus = users.StatusActive
	}
	s.store.users[record.ID] = record
	s.writeJSON(w, http.StatusCreated, record.User)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}
	var input users.UpdateInput
	if !s.decode(w, r, &input) {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	record, ok := s.store.users[id]
	if !ok {
		s.writeMessage(w, http.StatusNotFound, "User not found")
		return
	}

	record.FirstName = input.FirstName
	record.LastName = input.LastName
	record.Email = input.Email
	record.Role = input.Role
	if input.AccountStatus != "" {
		record.AccountStatus = input.AccountStatus
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			s.writeMessage(w, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		record.passwordHash = hash
	}
	touch(&record.UpdatedAt)
	s.writeJSON(w, http.StatusOK, record.User)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	if _, ok := s.store.users[id]; !ok {
		s.writeMessage(w, http.StatusNotFound, "User not found")
		return
	}
	delete(s.store.users, id)
	s.writeJSON(w, http.StatusOK, map[string]string{"message": "User deleted"})
}
