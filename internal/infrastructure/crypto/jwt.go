// Package crypto holds the credential primitives: Argon2id password
// hashing and HS256 token signing. Both are pure functions over their
// inputs plus fixed construction-time parameters, so they are safe to
// share across concurrent requests.
package crypto

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/classhub/classhub-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// tokenClaims is the JWT payload: the user id and the role held at
// issuance time, plus the registered iat/exp pair.
type tokenClaims struct {
	UserID int64  `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokens issues and verifies HMAC-SHA256 signed bearer tokens. The
// same secret signs and verifies, so verification is a pure computation
// with no store lookup — and consequently no revocation: expiry is the
// only way a token dies.
type JWTTokens struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTTokens(secret string, ttl time.Duration) (*JWTTokens, error) {
	if len(secret) < 16 {
		return nil, fmt.Errorf("jwt secret must be at least 16 characters")
	}
	if ttl == 0 {
		ttl = defaultTokenTTL
	}
	return &JWTTokens{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token for identity expiring exactly ttl after issuance.
func (t *JWTTokens) Issue(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: identity.ID,
		Role:   identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded identity.
// Every failure mode collapses into domain.ErrTokenInvalid: callers (and
// clients) are not told whether the signature or the clock was at fault.
func (t *JWTTokens) Verify(token string) (domain.Identity, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (any, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return domain.Identity{}, domain.ErrTokenInvalid
	}

	if claims.UserID == 0 || claims.Role == "" {
		return domain.Identity{}, domain.ErrTokenInvalid
	}

	return domain.Identity{ID: claims.UserID, Role: claims.Role}, nil
}
