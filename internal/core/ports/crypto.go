package ports

import "github.com/classhub/classhub-api/internal/core/domain"

// PasswordHasher turns a plaintext password into a one-way, salted hash
// and checks a plaintext against a stored hash. The salt is embedded in
// the hash string, so Verify needs only the two arguments.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify returns false for a mismatch and for a malformed hash.
	Verify(hash, plaintext string) bool
}

// TokenIssuer produces a signed, time-limited bearer token carrying an identity.
type TokenIssuer interface {
	Issue(identity domain.Identity) (string, error)
}

// TokenVerifier checks a token's signature and expiry and recovers the
// identity stamped into it. Failures of either kind surface as
// domain.ErrTokenInvalid — callers never learn which check failed.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// TokenService is the full token surface: one secret, one TTL, both
// directions.
type TokenService interface {
	TokenIssuer
	TokenVerifier
}
