package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockUserRepo struct {
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	upsertFn     func(ctx context.Context, user *domain.User) (*domain.User, error)
	countFn      func(ctx context.Context) (int64, error)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserRepo) Upsert(ctx context.Context, user *domain.User) (*domain.User, error) {
	return m.upsertFn(ctx, user)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	if m.countFn == nil {
		return 0, nil
	}
	return m.countFn(ctx)
}

type mockJWT struct {
	generateFn func(userID int64, role string) (string, error)
	validateFn func(token string) (int64, string, error)
}

func (m *mockJWT) GenerateAccessToken(userID int64, role string) (string, error) {
	return m.generateFn(userID, role)
}

func (m *mockJWT) ValidateAccessToken(token string) (int64, string, error) {
	return m.validateFn(token)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(hash)
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestService_Login_Success(t *testing.T) {
	user := &domain.User{
		ID:           7,
		Email:        "admin@vnest.fi",
		Name:         "Admin",
		PasswordHash: hashPassword(t, "secret123"),
		Role:         domain.UserRoleAdmin,
	}

	users := &mockUserRepo{
		getByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			if email != "admin@vnest.fi" {
				t.Errorf("email not normalized: %q", email)
			}
			return user, nil
		},
	}
	jwt := &mockJWT{
		generateFn: func(userID int64, role string) (string, error) {
			if userID != 7 || role != "ADMIN" {
				t.Errorf("unexpected token args: %d %s", userID, role)
			}
			return "signed-token", nil
		},
	}

	svc := NewService(testLogger(), users, jwt)

	result, err := svc.Login(context.Background(), LoginInput{
		Email:    "  Admin@VNEST.fi ",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AccessToken != "signed-token" {
		t.Errorf("token: got %q", result.AccessToken)
	}
	if result.User.ID != 7 {
		t.Errorf("user id: got %d", result.User.ID)
	}
}

func TestService_Login_WrongPassword(t *testing.T) {
	users := &mockUserRepo{
		getByEmailFn: func(_ context.Context, _ string) (*domain.User, error) {
			return &domain.User{
				ID:           1,
				Email:        "user@vnest.fi",
				PasswordHash: hashPassword(t, "right-password"),
				Role:         domain.UserRoleUser,
			}, nil
		},
	}
	svc := NewService(testLogger(), users, &mockJWT{})

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "user@vnest.fi",
		Password: "wrong-password",
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := &mockUserRepo{
		getByEmailFn: func(_ context.Context, _ string) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := NewService(testLogger(), users, &mockJWT{})

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "nobody@vnest.fi",
		Password: "whatever",
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized (not found must not leak)", err)
	}
}

func TestService_Login_ValidationErrors(t *testing.T) {
	svc := NewService(testLogger(), &mockUserRepo{}, &mockJWT{})

	tests := []struct {
		name  string
		input LoginInput
	}{
		{"empty email", LoginInput{Password: "x"}},
		{"not an email", LoginInput{Email: "no-at-sign", Password: "x"}},
		{"empty password", LoginInput{Email: "a@b.fi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tt.input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("got %v, want ErrValidation", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// ValidateToken
// ---------------------------------------------------------------------------

func TestService_ValidateToken(t *testing.T) {
	jwt := &mockJWT{
		validateFn: func(token string) (int64, string, error) {
			if token == "good" {
				return 5, "USER", nil
			}
			return 0, "", errors.New("bad token")
		},
	}
	svc := NewService(testLogger(), &mockUserRepo{}, jwt)

	userID, role, err := svc.ValidateToken(context.Background(), "good")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != 5 || role != domain.UserRoleUser {
		t.Errorf("got %d/%s, want 5/USER", userID, role)
	}

	_, _, err = svc.ValidateToken(context.Background(), "forged")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("got %v, want ErrUnauthorized", err)
	}
}

// ---------------------------------------------------------------------------
// Bootstrap
// ---------------------------------------------------------------------------

func TestService_Bootstrap_UpsertsUsers(t *testing.T) {
	var upserted []*domain.User
	users := &mockUserRepo{
		upsertFn: func(_ context.Context, u *domain.User) (*domain.User, error) {
			upserted = append(upserted, u)
			return u, nil
		},
	}
	svc := NewService(testLogger(), users, &mockJWT{})

	userList := "admin@vnest.fi:adminpass:Admin:ADMIN;therapist@vnest.fi:userpass:Terapeutti:USER"
	if err := svc.Bootstrap(context.Background(), userList); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(upserted) != 2 {
		t.Fatalf("upserted: got %d, want 2", len(upserted))
	}
	if upserted[0].Email != "admin@vnest.fi" || upserted[0].Role != domain.UserRoleAdmin {
		t.Errorf("first user: %+v", upserted[0])
	}
	if upserted[1].Role != domain.UserRoleUser || upserted[1].Name != "Terapeutti" {
		t.Errorf("second user: %+v", upserted[1])
	}

	// Passwords are stored hashed, never in the clear.
	if err := bcrypt.CompareHashAndPassword([]byte(upserted[0].PasswordHash), []byte("adminpass")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestService_Bootstrap_RoleDefaultsToUser(t *testing.T) {
	var upserted *domain.User
	users := &mockUserRepo{
		upsertFn: func(_ context.Context, u *domain.User) (*domain.User, error) {
			upserted = u
			return u, nil
		},
	}
	svc := NewService(testLogger(), users, &mockJWT{})

	if err := svc.Bootstrap(context.Background(), "someone@vnest.fi:pass:Joku"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upserted == nil || upserted.Role != domain.UserRoleUser {
		t.Errorf("role: got %+v, want USER", upserted)
	}
}

func TestService_Bootstrap_SkipsMalformedEntries(t *testing.T) {
	var upserted int
	users := &mockUserRepo{
		upsertFn: func(_ context.Context, u *domain.User) (*domain.User, error) {
			upserted++
			return u, nil
		},
	}
	svc := NewService(testLogger(), users, &mockJWT{})

	userList := "broken-entry;admin@vnest.fi:pass:Admin:ADMIN;x@y.fi:pass:Name:SUPERROLE"
	if err := svc.Bootstrap(context.Background(), userList); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if upserted != 1 {
		t.Errorf("upserted: got %d, want 1 (bad entries skipped)", upserted)
	}
}

func TestService_Bootstrap_EmptyListIsNoop(t *testing.T) {
	users := &mockUserRepo{
		upsertFn: func(_ context.Context, _ *domain.User) (*domain.User, error) {
			t.Fatal("upsert must not be called")
			return nil, nil
		},
	}
	svc := NewService(testLogger(), users, &mockJWT{})

	if err := svc.Bootstrap(context.Background(), "   "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_Bootstrap_AllFailedReturnsError(t *testing.T) {
	users := &mockUserRepo{
		upsertFn: func(_ context.Context, _ *domain.User) (*domain.User, error) {
			return nil, errors.New("db down")
		},
	}
	svc := NewService(testLogger(), users, &mockJWT{})

	err := svc.Bootstrap(context.Background(), "admin@vnest.fi:pass:Admin:ADMIN")
	if err == nil {
		t.Fatal("expected error when every entry fails")
	}
}
