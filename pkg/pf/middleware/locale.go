package middleware

import (
	"net/http"
	"strings"
)

const (
	// LocaleCookieName is the name of the locale preference cookie.
	LocaleCookieName = "NEXT_LOCALE"

	// localeCookieMaxAge keeps the preference for one year.
	localeCookieMaxAge = 365 * 24 * 3600
)

// LocaleResolver decides the locale context for incoming request paths.
type LocaleResolver interface {
	// FromPath reports the locale a path is already prefixed with, if any.
	FromPath(path string) (locale string, ok bool)

	// Resolve determines the preferred locale from a cookie value and an
	// Accept-Language header value. Must always return a supported locale.
	Resolve(cookieValue, acceptLanguage string) string
}

// LocaleRedirect guarantees every page request carries a locale prefix.
// Already-prefixed paths pass through unchanged with the locale injected
// into the request context; anything else is redirected to the same path
// under the preferred locale (cookie, then Accept-Language, then default).
func LocaleRedirect(resolver LocaleResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			if isLocaleExempt(path) {
				next.ServeHTTP(w, r)
				return
			}

			if locale, ok := resolver.FromPath(path); ok {
				refreshLocaleCookie(w, r, locale)
				next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), locale)))
				return
			}

			var cookieValue string
			if c, err := r.Cookie(LocaleCookieName); err == nil {
				cookieValue = c.Value
			}

			locale := resolver.Resolve(cookieValue, r.Header.Get("Accept-Language"))

			target := "/" + locale
			if path != "/" {
				target += path
			}
			if r.URL.RawQuery != "" {
				target += "?" + r.URL.RawQuery
			}

			http.Redirect(w, r, target, http.StatusTemporaryRedirect)
		})
	}
}

// isLocaleExempt reports whether a path is served outside the locale tree
// (static assets and the JSON API).
func isLocaleExempt(path string) bool {
	return strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/api/") ||
		path == "/favicon.ico" ||
		path == "/robots.txt"
}

// SetLocaleCookie stores the locale preference for one year.
func SetLocaleCookie(w http.ResponseWriter, locale string) {
	http.SetCookie(w, &http.Cookie{
		Name:     LocaleCookieName,
		Value:    locale,
		Path:     "/",
		MaxAge:   localeCookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

func refreshLocaleCookie(w http.ResponseWriter, r *http.Request, locale string) {
	if c, err := r.Cookie(LocaleCookieName); err == nil && c.Value == locale {
		return
	}
	SetLocaleCookie(w, locale)
}
