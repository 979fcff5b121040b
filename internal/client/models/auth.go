// Package models contains the wire types exchanged with the CourseKeeper
// backend and the DTOs used by the client services.
package models

import "strings"

// AdminRole is the role name that grants access to administrative screens.
const AdminRole = "Admin"

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
}

// AuthResponse is the server's answer to both login and register.
// Success=false carries a business failure with ErrorMessage set.
type AuthResponse struct {
	Success      bool     `json:"success"`
	Token        string   `json:"token"`
	Email        string   `json:"email"`
	FullName     string   `json:"fullName"`
	Roles        []string `json:"roles"`
	Expiration   string   `json:"expiration"`
	ErrorMessage string   `json:"errorMessage,omitempty"`
}

// User is the authenticated identity as kept in memory and persisted
// locally. Roles is always non-nil; the server contract guarantees the
// field is supplied.
type User struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	FullName  string   `json:"fullName"`
	Roles     []string `json:"roles"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// SplitFullName splits a full name at the first space: the first token is
// the first name, the remainder (spaces preserved) is the last name.
func SplitFullName(fullName string) (first, last string) {
	parts := strings.SplitN(fullName, " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}
