package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peperuizdev/portfolio/pkg/pf/config"
	"github.com/peperuizdev/portfolio/pkg/pf/logger"
	"github.com/peperuizdev/portfolio/pkg/pf/middleware"
)

func newTestRouter(t *testing.T) (chi.Router, Service) {
	t.Helper()

	svc := newTestService(t)
	handler := NewHandler(svc, &config.Config{}, logger.NewNoopLogger())

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, svc
}

func postJSON(t *testing.T, r chi.Router, path string, body any, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if mutate != nil {
		mutate(req)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleLogin(t *testing.T) {
	r, svc := newTestRouter(t)
	_, err := svc.CreateUser(context.Background(), "admin@example.com", "password123", "Admin", RoleAdmin)
	require.NoError(t, err)

	t.Run("missing fields", func(t *testing.T) {
		rec := postJSON(t, r, "/api/auth/login", map[string]string{"email": "admin@example.com"}, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := postJSON(t, r, "/api/auth/login", map[string]string{
			"email": "admin@example.com", "password": "wrong",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "invalid credentials", body["message"])
	})

	t.Run("unknown user gets the same message", func(t *testing.T) {
		rec := postJSON(t, r, "/api/auth/login", map[string]string{
			"email": "nobody@example.com", "password": "password123",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "invalid credentials", body["message"])
	})

	t.Run("success returns token and sets cookie", func(t *testing.T) {
		rec := postJSON(t, r, "/api/auth/login", map[string]string{
			"email": "admin@example.com", "password": "password123",
		}, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotEmpty(t, body["token"])

		var cookie *http.Cookie
		for _, c := range rec.Result().Cookies() {
			if c.Name == middleware.AuthCookieName {
				cookie = c
			}
		}
		require.NotNil(t, cookie, "auth cookie not set")
		assert.Equal(t, body["token"], cookie.Value)
		assert.Equal(t, "/", cookie.Path)
		assert.Equal(t, 3600, cookie.MaxAge)
		assert.True(t, cookie.HttpOnly)
	})
}

func TestHandleChangePassword(t *testing.T) {
	r, svc := newTestRouter(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "admin@example.com", "password123", "Admin", RoleAdmin)
	require.NoError(t, err)

	token, _, err := svc.Login(ctx, "admin@example.com", "password123")
	require.NoError(t, err)

	withBearer := func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	t.Run("no token", func(t *testing.T) {
		rec := postJSON(t, r, "/api/auth/change-password", map[string]string{
			"currentPassword": "password123", "newPassword": "newpassword",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := postJSON(t, r, "/api/auth/change-password", map[string]string{
			"currentPassword": "password123", "newPassword": "newpassword",
		}, func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer garbage")
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := postJSON(t, r, "/api/auth/change-password", map[string]string{
			"currentPassword": "password123",
		}, withBearer)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("new password too short", func(t *testing.T) {
		rec := postJSON(t, r, "/api/auth/change-password", map[string]string{
			"currentPassword": "password123", "newPassword": "short",
		}, withBearer)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong current password", func(t *testing.T) {
		rec := postJSON(t, r, "/api/auth/change-password", map[string]string{
			"currentPassword": "wrong", "newPassword": "newpassword",
		}, withBearer)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("success via cookie token", func(t *testing.T) {
		rec := postJSON(t, r, "/api/auth/change-password", map[string]string{
			"currentPassword": "password123", "newPassword": "newpassword",
		}, func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: middleware.AuthCookieName, Value: token})
		})
		require.Equal(t, http.StatusOK, rec.Code)

		// The token survives the rotation; only the hash changed.
		_, err := svc.Authenticate(ctx, "admin@example.com", "newpassword")
		assert.NoError(t, err)
	})
}

func TestHandleLogout(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := postJSON(t, r, "/api/auth/logout", map[string]string{}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.AuthCookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "auth cookie should be cleared")
}
