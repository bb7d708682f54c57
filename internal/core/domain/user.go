package domain

import (
	"errors"
	"time"
)

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUsernameTaken = errors.New("username already taken")
var ErrInvalidCredentials = errors.New("incorrect username or password")
var ErrInvalidRole = errors.New("invalid role")

// ValidRole reports whether role is one of the known role labels.
func ValidRole(role string) bool {
	return role == RoleStudent || role == RoleAdmin
}

// User models an authenticated actor in the system.
// PasswordHash is never serialised outward.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
