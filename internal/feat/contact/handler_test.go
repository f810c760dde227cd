package contact

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peperuizdev/portfolio/pkg/pf/config"
	"github.com/peperuizdev/portfolio/pkg/pf/logger"
	"github.com/peperuizdev/portfolio/pkg/pf/middleware"
)

type allowAllVerifier struct{ err error }

func (v allowAllVerifier) VerifyToken(token string) (string, string, string, error) {
	if v.err != nil {
		return "", "", "", v.err
	}
	return "u-1", "admin@example.com", "admin", nil
}

func newContactRouter(t *testing.T, verifier middleware.TokenVerifier, cfg *config.Config) (chi.Router, Service) {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{Contact: config.ContactConfig{RateLimit: 100}}
	}

	svc := newTestContactService(t, &stubRelayer{})
	handler := NewHandler(svc, verifier, cfg, logger.NewNoopLogger())

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, svc
}

func postForm(r chi.Router, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"name":    {"Jane Doe"},
		"email":   {"jane@example.com"},
		"subject": {"Hello"},
		"message": {"I would like to talk about a project."},
		"_locale": {"en"},
	}
}

func TestHandleSubmit(t *testing.T) {
	r, svc := newContactRouter(t, allowAllVerifier{}, nil)

	rec := postForm(r, validForm())
	require.Equal(t, http.StatusOK, rec.Code)

	subs, err := svc.ListSubmissions(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "Jane Doe", subs[0].Name)
	assert.Equal(t, "en", subs[0].Locale)
}

func TestHandleSubmitValidationFailure(t *testing.T) {
	r, svc := newContactRouter(t, allowAllVerifier{}, nil)

	form := validForm()
	form.Set("email", "not-an-email")
	form.Set("message", "short")

	rec := postForm(r, form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	subs, err := svc.ListSubmissions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, subs, "invalid submissions must not be stored")
}

func TestHandleSubmitHoneypot(t *testing.T) {
	r, svc := newContactRouter(t, allowAllVerifier{}, nil)

	form := validForm()
	form.Set("_honeypot", "gotcha")

	rec := postForm(r, form)
	assert.Equal(t, http.StatusOK, rec.Code, "bots get a success response")

	subs, err := svc.ListSubmissions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, subs, "honeypot submissions must not be stored")
}

func TestHandleSubmitUnsupportedLocaleFallsBack(t *testing.T) {
	r, svc := newContactRouter(t, allowAllVerifier{}, nil)

	form := validForm()
	form.Set("_locale", "fr")

	rec := postForm(r, form)
	require.Equal(t, http.StatusOK, rec.Code)

	subs, err := svc.ListSubmissions(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "es", subs[0].Locale)
}

func TestHandleSubmitRateLimit(t *testing.T) {
	cfg := &config.Config{Contact: config.ContactConfig{RateLimit: 2}}
	r, _ := newContactRouter(t, allowAllVerifier{}, cfg)

	for i := 0; i < 2; i++ {
		rec := postForm(r, validForm())
		require.Equal(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}

	rec := postForm(r, validForm())
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestAdminMessagesRequireAuth(t *testing.T) {
	r, _ := newContactRouter(t, allowAllVerifier{err: errors.New("bad token")}, nil)

	t.Run("no token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/contact/messages", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/contact/messages", nil)
		req.Header.Set("Authorization", "Bearer whatever")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAdminMessagesFlow(t *testing.T) {
	r, svc := newContactRouter(t, allowAllVerifier{}, nil)
	ctx := context.Background()

	sub := validSubmission()
	require.NoError(t, svc.Submit(ctx, sub))

	authed := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	rec := authed("GET", "/api/contact/messages")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = authed("GET", "/api/contact/messages/"+sub.ID.String())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = authed("GET", "/api/contact/messages/not-a-uuid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = authed("POST", "/api/contact/messages/"+sub.ID.String()+"/read")
	assert.Equal(t, http.StatusOK, rec.Code)

	unread, err := svc.CountUnread(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, unread)

	rec = authed("DELETE", "/api/contact/messages/"+sub.ID.String())
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = authed("GET", "/api/contact/messages/"+sub.ID.String())
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
