package ports

import (
	"context"

	"github.com/classhub/classhub-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, error)
	// Login returns the signed token and the user's role. Unknown username
	// and wrong password both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, string, error)
}
