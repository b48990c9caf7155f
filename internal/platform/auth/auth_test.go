package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func testAuthenticator(t *testing.T) *Authenticator {
	t.Helper()
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	secret := []byte("0123456789abcdef0123456789abcdef")
	return NewAuthenticator("admin", hash, secret, time.Hour)
}

func TestLogin_Success(t *testing.T) {
	a := testAuthenticator(t)

	token, expiresAt, err := a.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if !expiresAt.After(time.Now()) {
		t.Error("expected expiry in the future")
	}

	username, err := a.Verify(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if username != "admin" {
		t.Errorf("expected admin, got %s", username)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	a := testAuthenticator(t)
	if _, _, err := a.Login("admin", "wrong"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_WrongUsername(t *testing.T) {
	a := testAuthenticator(t)
	if _, _, err := a.Login("root", "s3cret"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_NoHashConfigured(t *testing.T) {
	a := NewAuthenticator("admin", "", []byte("0123456789abcdef0123456789abcdef"), time.Hour)
	if _, _, err := a.Login("admin", "anything"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestVerify_TamperedToken(t *testing.T) {
	a := testAuthenticator(t)
	token, _, err := a.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := a.Verify(tampered); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	hash, _ := HashPassword("s3cret")
	a := NewAuthenticator("admin", hash, []byte("0123456789abcdef0123456789abcdef"), -time.Minute)

	token, _, err := a.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := a.Verify(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	a := testAuthenticator(t)
	token, _, err := a.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := NewAuthenticator("admin", "", []byte("ffffffffffffffffffffffffffffffff"), time.Hour)
	if _, err := other.Verify(token); err != ErrInvalidToken {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestRequireAdmin_MissingHeader(t *testing.T) {
	a := testAuthenticator(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequireAdmin(a)
	err := mw(func(c echo.Context) error { return nil })(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestRequireAdmin_MalformedHeader(t *testing.T) {
	a := testAuthenticator(t)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := RequireAdmin(a)
	err := mw(func(c echo.Context) error { return nil })(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}

func TestRequireAdmin_ValidToken(t *testing.T) {
	a := testAuthenticator(t)
	token, _, err := a.Login("admin", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var user string
	mw := RequireAdmin(a)
	if err := mw(func(c echo.Context) error {
		user, _ = c.Get("admin_user").(string)
		return c.NoContent(http.StatusOK)
	})(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user != "admin" {
		t.Errorf("expected admin_user on context, got %q", user)
	}
}

func TestLoginHandler(t *testing.T) {
	a := testAuthenticator(t)
	h := NewHandler(a)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"username":"admin","password":"s3cret"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "token") {
		t.Errorf("expected token in response, got %s", rec.Body.String())
	}
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	a := testAuthenticator(t)
	h := NewHandler(a)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPost, "/login",
		strings.NewReader(`{"username":"admin","password":"nope"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %v", err)
	}
}
