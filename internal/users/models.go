package users

import "time"

// Account status values used by the status filter.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusBlocked  = "blocked"
)

// User is an operator or member account as the API returns it.
type User struct {
	ID            int64     `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	AccountStatus string    `json:"accountStatus"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UserList is the paginated list response with its status counters.
type UserList struct {
	Users         []User `json:"users"`
	TotalUsers    int    `json:"totalUsers"`
	ActiveUsers   int    `json:"activeUsers"`
	InactiveUsers int    `json:"inactiveUsers"`
	BlockedUsers  int    `json:"blockedUsers"`
}

// ListParams are the pagination, sort and filter parameters for List.
type ListParams struct {
	Page      int
	SortBy    string
	Direction string
	Query     string
	Status    string
}

// CreateInput is the payload for creating a user.
type CreateInput struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	AccountStatus string `json:"accountStatus"`
	Role          string `json:"role"`
	Password      string `json:"password"`
}

// UpdateInput is the payload for updating a user. Password is optional; an
// empty value leaves the current password untouched.
type UpdateInput struct {
	Email         string `json:"email"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Role          string `json:"role"`
	Password      string `json:"password,omitempty"`
	AccountStatus string `json:"accountStatus,omitempty"`
}
