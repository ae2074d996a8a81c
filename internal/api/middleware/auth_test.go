package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pawprint/cattery-api/internal/core/domain"
	"github.com/pawprint/cattery-api/internal/core/service"
)

// stubUserRepo serves FindByEmail from a fixed map; the remaining
// repository methods are unused by the middleware.
type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(context.Context, *domain.User) (*domain.User, error) {
	panic("not used")
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.users[email]
	if !ok || u.DeletedAt != nil {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) FindByID(context.Context, uint, bool) (*domain.User, error) {
	panic("not used")
}

func (r *stubUserRepo) List(context.Context, int, int) ([]*domain.User, int64, error) {
	panic("not used")
}

func (r *stubUserRepo) Update(context.Context, *domain.User) error { panic("not used") }

func (r *stubUserRepo) SoftDelete(context.Context, uint, time.Time) error { panic("not used") }

func invokeAuth(t *testing.T, repo *stubUserRepo, authorization string) (echo.Context, error) {
	t.Helper()
	codec := service.NewTokenCodec("secret", time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cats", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	handler := Auth(codec, repo)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func issueToken(t *testing.T, p domain.Principal) string {
	t.Helper()
	token, err := service.NewTokenCodec("secret", time.Hour).Issue(p)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	return token
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", he.Code)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"alice@example.com": {ID: 1, Email: "alice@example.com", Role: domain.RoleUser},
	}}
	token := issueToken(t, domain.Principal{Email: "alice@example.com", Role: domain.RoleUser})

	c, err := invokeAuth(t, repo, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
	if got := c.Get("email"); got != "alice@example.com" {
		t.Fatalf("expected email in context, got %v", got)
	}
	if got := c.Get("role"); got != domain.RoleUser {
		t.Fatalf("expected role in context, got %v", got)
	}
}

func TestAuth_RoleComesFromStore(t *testing.T) {
	// The stored role wins over the token's claim, so demotions and
	// promotions apply before the token expires.
	repo := &stubUserRepo{users: map[string]*domain.User{
		"alice@example.com": {ID: 1, Email: "alice@example.com", Role: domain.RoleUser},
	}}
	token := issueToken(t, domain.Principal{Email: "alice@example.com", Role: domain.RoleAdmin})

	c, err := invokeAuth(t, repo, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
	if got := c.Get("role"); got != domain.RoleUser {
		t.Fatalf("expected stored role %q, got %v", domain.RoleUser, got)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	_, err := invokeAuth(t, &stubUserRepo{}, "")
	assertUnauthorized(t, err)
}

func TestAuth_BadScheme(t *testing.T) {
	token := issueToken(t, domain.Principal{Email: "alice@example.com", Role: domain.RoleUser})
	_, err := invokeAuth(t, &stubUserRepo{}, "Basic "+token)
	assertUnauthorized(t, err)
}

func TestAuth_GarbageToken(t *testing.T) {
	_, err := invokeAuth(t, &stubUserRepo{}, "Bearer not.a.token")
	assertUnauthorized(t, err)
}

func invokeOptionalAuth(t *testing.T, repo *stubUserRepo, authorization string) (echo.Context, error) {
	t.Helper()
	codec := service.NewTokenCodec("secret", time.Hour)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	handler := OptionalAuth(codec, repo)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return c, handler(c)
}

func TestOptionalAuth_NoHeader(t *testing.T) {
	// Anonymous requests pass through with no claims set.
	c, err := invokeOptionalAuth(t, &stubUserRepo{}, "")
	if err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
	if got := c.Get("email"); got != nil {
		t.Fatalf("expected no email claim, got %v", got)
	}
	if got := c.Get("role"); got != nil {
		t.Fatalf("expected no role claim, got %v", got)
	}
}

func TestOptionalAuth_ValidToken(t *testing.T) {
	repo := &stubUserRepo{users: map[string]*domain.User{
		"root@example.com": {ID: 1, Email: "root@example.com", Role: domain.RoleAdmin},
	}}
	token := issueToken(t, domain.Principal{Email: "root@example.com", Role: domain.RoleAdmin})

	c, err := invokeOptionalAuth(t, repo, "Bearer "+token)
	if err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
	if got := c.Get("email"); got != "root@example.com" {
		t.Fatalf("expected email claim, got %v", got)
	}
	if got := c.Get("role"); got != domain.RoleAdmin {
		t.Fatalf("expected admin role claim, got %v", got)
	}
}

func TestOptionalAuth_InvalidTokenStillRejected(t *testing.T) {
	// A credential that is offered but bad is an error, not anonymity.
	_, err := invokeOptionalAuth(t, &stubUserRepo{}, "Bearer not.a.token")
	assertUnauthorized(t, err)
}

func TestAuth_DeletedUser(t *testing.T) {
	deletedAt := time.Now().UTC()
	repo := &stubUserRepo{users: map[string]*domain.User{
		"gone@example.com": {ID: 1, Email: "gone@example.com", Role: domain.RoleUser, DeletedAt: &deletedAt},
	}}
	token := issueToken(t, domain.Principal{Email: "gone@example.com", Role: domain.RoleUser})

	_, err := invokeAuth(t, repo, "Bearer "+token)
	assertUnauthorized(t, err)
}
