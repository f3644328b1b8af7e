// Package user holds the process-wide user record served by the API.
package user

import "github.com/dnimmo/bestretro/internal/domain"

// Default is the record the server is built with.
var Default = domain.User{
	ID:    "1",
	Name:  "Nimmo",
	Email: "dnimmo@gmail.com",
	Teams: [2]string{"1", "2"},
}

// Provider returns the user record. Implementations must be safe for
// concurrent use and must return the same value for the process lifetime.
type Provider interface {
	User() domain.User
}

// Static is a Provider backed by a value fixed at construction.
type Static struct {
	u domain.User
}

// NewStatic creates a Static provider serving u.
func NewStatic(u domain.User) *Static {
	return &Static{u: u}
}

// User returns a copy of the stored record.
func (s *Static) User() domain.User {
	return s.u
}
