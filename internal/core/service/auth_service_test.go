package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/pawprint/cattery-api/internal/core/domain"
	"github.com/pawprint/cattery-api/internal/core/ports"
)

func newAuthService(repo *stubUserRepo, throttle ports.LoginThrottle) *AuthService {
	codec := NewTokenCodec("secret", time.Hour)
	return NewAuthService(repo, codec, throttle, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "alice",
		Email:    "alice@example.com",
		Password: "pass1234",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "pass1234" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass1234")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_AdminRequiresAdminActor(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	// Anonymous caller may not mint an admin.
	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "eve", Email: "eve@example.com", Password: "pass1234", Role: domain.RoleAdmin,
	}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	// Neither may a plain user.
	actor := domain.Principal{Email: "bob@example.com", Role: domain.RoleUser}
	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "eve", Email: "eve@example.com", Password: "pass1234", Role: domain.RoleAdmin, Actor: &actor,
	}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for user actor, got %v", err)
	}

	// An admin may.
	admin := domain.Principal{Email: "root@example.com", Role: domain.RoleAdmin}
	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "eve", Email: "eve@example.com", Password: "pass1234", Role: domain.RoleAdmin, Actor: &admin,
	})
	if err != nil {
		t.Fatalf("admin actor register failed: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %q", user.Role)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	in := ports.RegisterInput{Name: "bob", Email: "bob@example.com", Password: "pass1234"}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "carol", Email: "carol@example.com", Password: "s3cret99",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret99")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "carol@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	// The issued token round-trips through the codec.
	p, err := svc.codec.Verify(token)
	if err != nil {
		t.Fatalf("token failed verification: %v", err)
	}
	if p.Email != "carol@example.com" || p.Role != domain.RoleUser {
		t.Fatalf("unexpected principal: %+v", p)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Name: "dave", Email: "dave@example.com", Password: "goodpass",
	})
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	// A missing account is indistinguishable from a bad password.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_SoftDeletedUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Name: "gone", Email: "gone@example.com", Password: "pass1234",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if err := repo.SoftDelete(context.Background(), user.ID, time.Now().UTC()); err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "gone@example.com", "pass1234"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for deleted user, got %v", err)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	throttle := newStubThrottle(3)
	svc := newAuthService(repo, throttle)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Name: "frank", Email: "frank@example.com", Password: "goodpass",
	})

	for i := 0; i < 3; i++ {
		if _, _, err := svc.Login(context.Background(), "frank@example.com", "badpass"); err != domain.ErrInvalidCredentials {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}

	// Even the correct password is rejected once the window is exhausted.
	if _, _, err := svc.Login(context.Background(), "frank@example.com", "goodpass"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailThrottled(t *testing.T) {
	repo := newStubUserRepo()
	throttle := newStubThrottle(3)
	svc := newAuthService(repo, throttle)

	// Probing a nonexistent account counts toward the window, so
	// enumeration is rate-limited like password guessing.
	for i := 0; i < 3; i++ {
		if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Profile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	_, _ = svc.Register(context.Background(), ports.RegisterInput{
		Name: "alice", Email: "alice@example.com", Password: "pass1234",
	})

	user, err := svc.Profile(context.Background(), domain.Principal{Email: "alice@example.com", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if user.Name != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}
