package ports

import (
	"context"

	"github.com/classhub/classhub-api/internal/core/domain"
)

// UserRepository defines the persistence interface for users.
// Implementations must map a username uniqueness violation on Create
// to domain.ErrUsernameTaken and absent rows to domain.ErrUserNotFound.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, id int64, username, passwordHash string) error
	UpdateRole(ctx context.Context, id int64, role string) error
	Delete(ctx context.Context, id int64) error
}
