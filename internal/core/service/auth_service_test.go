package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/classhub/classhub-api/internal/core/domain"
	"github.com/classhub/classhub-api/internal/infrastructure/crypto"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUsernameTaken
	}
	created := cloneUser(user)
	created.ID = r.nextID
	r.nextID++
	r.users[created.Username] = cloneUser(created)
	return cloneUser(created), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) UpdateProfile(_ context.Context, id int64, username, passwordHash string) error {
	for key, u := range r.users {
		if u.ID == id {
			delete(r.users, key)
			u.Username = username
			u.PasswordHash = passwordHash
			r.users[username] = u
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id int64, role string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	for key, u := range r.users {
		if u.ID == id {
			delete(r.users, key)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func newAuthService(t *testing.T, repo *stubUserRepo) (*AuthService, *crypto.JWTTokens) {
	t.Helper()
	tokens, err := crypto.NewJWTTokens("service-test-secret-123", time.Hour)
	if err != nil {
		t.Fatalf("NewJWTTokens: %v", err)
	}
	return NewAuthService(repo, crypto.NewArgon2Hasher(), tokens, zerolog.Nop()), tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthService(t, repo)

	user, err := svc.Register(context.Background(), "alice", "pw123", domain.RoleStudent)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected store-assigned id")
	}
	if user.PasswordHash == "pw123" || !strings.HasPrefix(user.PasswordHash, "$argon2id$") {
		t.Fatalf("password not hashed: %q", user.PasswordHash)
	}
	if user.Role != domain.RoleStudent {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_InvalidRole(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthService(t, repo)

	if _, err := svc.Register(context.Background(), "bob", "pw", "superuser"); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthService(t, repo)

	if _, err := svc.Register(context.Background(), "bob", "pw1", domain.RoleStudent); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pw2", domain.RoleStudent); !errors.Is(err, domain.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc, tokens := newAuthService(t, repo)

	created, err := svc.Register(context.Background(), "carol", "s3cret", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, role, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if role != domain.RoleAdmin {
		t.Fatalf("expected role %q, got %q", domain.RoleAdmin, role)
	}

	identity, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if identity.ID != created.ID || identity.Role != domain.RoleAdmin {
		t.Fatalf("token carries wrong identity: %+v", identity)
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthService(t, repo)

	if _, err := svc.Register(context.Background(), "dave", "goodpass", domain.RoleStudent); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Unknown username and wrong password must be indistinguishable.
	_, _, errUnknown := svc.Login(context.Background(), "ghost", "goodpass")
	_, _, errWrongPw := svc.Login(context.Background(), "dave", "badpass")

	if !errors.Is(errUnknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPw)
	}
}
