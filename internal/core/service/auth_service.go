package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/classhub/classhub-api/internal/core/domain"
	"github.com/classhub/classhub-api/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
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

	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user registered")

	return created, nil
}

// Login verifies the credentials and returns a signed token together with
// the user's role. An unknown username and a wrong password collapse into
// the same ErrInvalidCredentials so the response cannot be used to probe
// which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, string, error) {
	if username == "" || password == "" {
		return "", "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", "", domain.ErrInvalidCredentials
		}
		return "", "", err
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return "", "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Identity{ID: user.ID, Role: user.Role})
	if err != nil {
		return "", "", err
	}

	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("user logged in")

	return token, user.Role, nil
}
