package session

import "time"

// Session is the in-memory record of the currently authenticated identity.
// Immediately after login, before the identity fetch resolves, only Token is
// populated; the guard replaces it wholesale once the identity is confirmed.
type Session struct {
	ID            int64     `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	AccountStatus string    `json:"accountStatus"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	Token         string    `json:"token"`
}

// TokenOnly builds the optimistic session written before the identity fetch
// resolves, so that the fetch itself can carry the bearer token.
func TokenOnly(token string) *Session {
	return &Session{Token: token}
}

// Identified reports whether the session carries a confirmed identity rather
// than only a token.
func (s *Session) Identified() bool {
	return s != nil && s.ID != 0
}
