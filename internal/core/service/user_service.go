package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/classhub/classhub-api/internal/core/domain"
	"github.com/classhub/classhub-api/internal/core/ports"
)

// UserService implements profile management and the admin user panel.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

func (s *UserService) Profile(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id int64, username, password string) error {
	if username == "" || password == "" {
		return domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateProfile(ctx, id, username, hash); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Msg("profile updated")
	return nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Create is the admin add-user operation. It takes the same path as
// self-registration; the route-level role check is what restricts it.
func (s *UserService) Create(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user created by admin")
	return created, nil
}

// UpdateRole changes a user's role. Tokens already in circulation keep
// the old role until their holder logs in again.
func (s *UserService) UpdateRole(ctx context.Context, id int64, role string) error {
	if !domain.ValidRole(role) {
		return domain.ErrInvalidRole
	}

	if err := s.repo.UpdateRole(ctx, id, role); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Str("role", role).Msg("user role updated")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
