package middleware

import (
	"context"
)

type contextKey string

const (
	// LocaleKey is the context key for the resolved locale.
	LocaleKey = contextKey("locale")

	// UserIDKey is the context key for the authenticated user ID.
	UserIDKey = contextKey("user_id")

	// UserEmailKey is the context key for the authenticated user email.
	UserEmailKey = contextKey("user_email")

	// UserRoleKey is the context key for the authenticated user role.
	UserRoleKey = contextKey("user_role")
)

// WithLocale returns a context carrying the resolved locale.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, LocaleKey, locale)
}

// GetLocale extracts the locale from the context.
// Returns an empty string if no locale has been resolved.
func GetLocale(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if locale, ok := ctx.Value(LocaleKey).(string); ok {
		return locale
	}
	return ""
}

// GetUserID extracts the authenticated user ID from the context.
// Returns an empty string if the request is not authenticated.
func GetUserID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(UserIDKey).(string); ok {
		return id
	}
	return ""
}

// GetUserEmail extracts the authenticated user email from the context.
func GetUserEmail(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if email, ok := ctx.Value(UserEmailKey).(string); ok {
		return email
	}
	return ""
}

// GetUserRole extracts the authenticated user role from the context.
func GetUserRole(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if role, ok := ctx.Value(UserRoleKey).(string); ok {
		return role
	}
	return ""
}
