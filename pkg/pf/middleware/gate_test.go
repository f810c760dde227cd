package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/peperuizdev/portfolio/pkg/pf/logger"
)

type stubVerifier struct {
	userID string
	email  string
	role   string
	err    error
}

func (s stubVerifier) VerifyToken(token string) (string, string, string, error) {
	return s.userID, s.email, s.role, s.err
}

func serveGate(t *testing.T, verifier TokenVerifier, req *http.Request) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	gate := AdminGate(verifier, []string{"es", "en"}, "es", logger.NewNoopLogger())
	rec := httptest.NewRecorder()
	gate(next).ServeHTTP(rec, req)
	return rec, captured
}

func TestAdminGateMissingCookie(t *testing.T) {
	for _, path := range []string{"/es/admin", "/en/admin", "/es/admin/settings"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest("GET", path, nil)
			rec, _ := serveGate(t, stubVerifier{}, req)

			if rec.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
			}
			if loc := rec.Header().Get("Location"); loc != "/es/admin/login" {
				t.Errorf("Location = %q, want /es/admin/login", loc)
			}
		})
	}
}

func TestAdminGateInvalidToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/es/admin", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "tampered"})

	rec, _ := serveGate(t, stubVerifier{err: errors.New("bad signature")}, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	// The stale cookie must be cleared on the way out.
	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == AuthCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("invalid auth cookie was not cleared")
	}
}

func TestAdminGateValidToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/en/admin", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "good"})

	verifier := stubVerifier{userID: "u-1", email: "admin@example.com", role: "admin"}
	rec, captured := serveGate(t, verifier, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := GetUserID(captured.Context()); got != "u-1" {
		t.Errorf("user id in context = %q, want u-1", got)
	}
	if got := GetUserEmail(captured.Context()); got != "admin@example.com" {
		t.Errorf("user email in context = %q", got)
	}
	if got := GetUserRole(captured.Context()); got != "admin" {
		t.Errorf("user role in context = %q", got)
	}
}

func TestAdminGateLoginExempt(t *testing.T) {
	req := httptest.NewRequest("GET", "/es/admin/login", nil)
	rec, _ := serveGate(t, stubVerifier{err: errors.New("never called")}, req)

	if rec.Code != http.StatusOK {
		t.Errorf("login page should not be gated, status = %d", rec.Code)
	}
}

func TestAdminGateIgnoresNonAdminPaths(t *testing.T) {
	paths := []string{"/es", "/en/about", "/es/administracion", "/api/auth/login"}

	for _, p := range paths {
		t.Run(p, func(t *testing.T) {
			req := httptest.NewRequest("GET", p, nil)
			rec, _ := serveGate(t, stubVerifier{err: errors.New("never called")}, req)
			if rec.Code != http.StatusOK {
				t.Errorf("status = %d, want 200", rec.Code)
			}
		})
	}
}

func TestBearerOrCookieToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := BearerOrCookieToken(req); got != "" {
		t.Errorf("empty request should yield no token, got %q", got)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "from-cookie"})
	if got := BearerOrCookieToken(req); got != "from-cookie" {
		t.Errorf("token = %q, want from-cookie", got)
	}

	// Header wins over cookie.
	req.Header.Set("Authorization", "Bearer from-header")
	if got := BearerOrCookieToken(req); got != "from-header" {
		t.Errorf("token = %q, want from-header", got)
	}
}
