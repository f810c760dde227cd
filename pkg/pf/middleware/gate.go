package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/peperuizdev/portfolio/pkg/pf/logger"
)

const (
	// AuthCookieName is the name of the signed session token cookie.
	AuthCookieName = "auth-token"

	// AuthCookieMaxAge matches the token expiry (one hour).
	AuthCookieMaxAge = 3600
)

// TokenVerifier checks a signed session token and returns its claims.
type TokenVerifier interface {
	VerifyToken(token string) (userID, email, role string, err error)
}

// AdminGate protects every route under /<locale>/admin except the login
// page. The token from the auth cookie is re-verified on each request; any
// failure (absent, tampered, expired) redirects to the login route under
// the default locale. Verification never surfaces as a 500.
func AdminGate(verifier TokenVerifier, locales []string, defaultLocale string, log logger.Logger) func(http.Handler) http.Handler {
	loginPath := "/" + defaultLocale + "/admin/login"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rest, ok := adminSubpath(r.URL.Path, locales)
			if !ok || rest == "/login" {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(AuthCookieName)
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			userID, email, role, err := verifier.VerifyToken(cookie.Value)
			if err != nil {
				log.Debugf("Rejected admin token: %v", err)
				ClearAuthCookie(w)
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, UserIDKey, userID)
			ctx = context.WithValue(ctx, UserEmailKey, email)
			ctx = context.WithValue(ctx, UserRoleKey, role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// adminSubpath reports the path below /<locale>/admin, if the path is an
// admin route for any supported locale. The empty subpath ("" for
// /<locale>/admin itself) is returned as "".
func adminSubpath(path string, locales []string) (string, bool) {
	for _, locale := range locales {
		prefix := "/" + locale + "/admin"
		if path == prefix {
			return "", true
		}
		if strings.HasPrefix(path, prefix+"/") {
			return strings.TrimPrefix(path, prefix), true
		}
	}
	return "", false
}

// SetAuthCookie stores the session token with the given lifetime.
// The cookie is HttpOnly: access control is decided server-side only.
func SetAuthCookie(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAuthCookie removes the session token cookie.
func ClearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// BearerOrCookieToken extracts a token from the Authorization header
// (Bearer scheme) or, failing that, from the auth cookie.
func BearerOrCookieToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c, err := r.Cookie(AuthCookieName); err == nil {
		return c.Value
	}
	return ""
}
