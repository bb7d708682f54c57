package ports

import (
	"context"

	"github.com/classhub/classhub-api/internal/core/domain"
)

type UserService interface {
	Profile(ctx context.Context, id int64) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int64, username, password string) error
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, username, password, role string) (*domain.User, error)
	UpdateRole(ctx context.Context, id int64, role string) error
	Delete(ctx context.Context, id int64) error
}
