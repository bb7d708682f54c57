package domain

import "errors"

var ErrTokenInvalid = errors.New("token is invalid or expired")
var ErrRoleNotPermitted = errors.New("unauthorized role")

// Identity is the verified claim recovered from a bearer token.
// It reflects the role at issuance time: a role change made after the
// token was issued is not visible until the holder logs in again.
type Identity struct {
	ID   int64
	Role string
}

// IsAdmin reports whether the identity holds the elevated role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
