package auth

import (
	"context"
	"errors"
	"testing"

	"career-bridge/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	users     map[uuid.UUID]user.User
	createErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: map[uuid.UUID]user.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(context.Background(), email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

func (m *mockUserRepo) Update(_ context.Context, u user.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return user.ErrNotFound
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	u, ok := m.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Active = active
	m.users[id] = u
	return nil
}

func TestRegister_Success(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  New.User@Example.COM ",
		Password: "supersecret",
		Name:     "New User",
		Role:     user.RoleCandidate,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if u.Email != "new.user@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.PasswordHash != "" {
		t.Fatalf("credential hash must not cross the usecase boundary")
	}
	if !u.Active {
		t.Fatalf("new accounts start active")
	}

	stored := repo.users[u.ID]
	if stored.PasswordHash == "" || stored.PasswordHash == "supersecret" {
		t.Fatalf("stored password must be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("supersecret")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	in := RegisterInput{Email: "dup@example.com", Password: "supersecret", Role: user.RoleCandidate}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), in)
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_AdminSelfSignupRejected(t *testing.T) {
	svc := NewService(newMockUserRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "root@example.com",
		Password: "supersecret",
		Role:     user.RoleAdmin,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	svc := NewService(newMockUserRepo())

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.co", Password: "short"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.co", Password: "rightpassword"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Login(context.Background(), LoginInput{Email: "a@b.co", Password: "wrongpassword"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmailLooksLikeWrongPassword(t *testing.T) {
	svc := NewService(newMockUserRepo())

	_, err := svc.Login(context.Background(), LoginInput{Email: "nobody@b.co", Password: "whatever123"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_BlockedAccount(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{Email: "blocked@b.co", Password: "supersecret"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := repo.SetActive(context.Background(), u.ID, false); err != nil {
		t.Fatalf("set active failed: %v", err)
	}

	_, err = svc.Login(context.Background(), LoginInput{Email: "blocked@b.co", Password: "supersecret"})
	if !errors.Is(err, ErrAccountBlocked) {
		t.Fatalf("expected ErrAccountBlocked, got %v", err)
	}
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	svc := NewService(newMockUserRepo())

	err := svc.ForgotPassword(context.Background(), "missing@b.co")
	if !errors.Is(err, ErrEmailNotFound) {
		t.Fatalf("expected ErrEmailNotFound, got %v", err)
	}
}
