package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/peperuizdev/portfolio/pkg/pf/config"
	"github.com/peperuizdev/portfolio/pkg/pf/logger"
	"github.com/peperuizdev/portfolio/pkg/pf/middleware"
)

// Handler implements the JSON authentication endpoints.
type Handler struct {
	service Service
	cfg     *config.Config
	log     logger.Logger
}

// NewHandler creates a new auth handler.
func NewHandler(service Service, cfg *config.Config, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		cfg:     cfg,
		log:     log,
	}
}

// RegisterRoutes registers the authentication API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	h.log.Info("Registering auth routes")

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/login", h.HandleLogin)
		r.Post("/change-password", h.HandleChangePassword)
		r.Post("/logout", h.HandleLogout)
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// HandleLogin exchanges an email/password pair for a signed session token.
// The token is returned in the response body and stored in an HttpOnly
// cookie so page middleware can verify it server-side.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.jsonMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		h.jsonMessage(w, http.StatusBadRequest, "email and password are required")
		return
	}

	token, user, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			h.jsonMessage(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		h.log.Errorf("Login failed: %v", err)
		h.jsonMessage(w, http.StatusInternalServerError, "internal server error")
		return
	}

	maxAge := int(h.service.Tokens().TTL().Seconds())
	middleware.SetAuthCookie(w, token, maxAge)

	h.log.Infof("User authenticated: %s", user.ID)
	h.jsonResponse(w, http.StatusOK, map[string]string{"token": token})
}

// HandleChangePassword rotates the authenticated user's credential.
// The token comes from the Authorization header (Bearer) or the auth
// cookie; the current password must verify before the hash is replaced.
func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.jsonMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.CurrentPassword == "" || req.NewPassword == "" {
		h.jsonMessage(w, http.StatusBadRequest, "current and new password are required")
		return
	}

	tokenString := middleware.BearerOrCookieToken(r)
	if tokenString == "" {
		h.jsonMessage(w, http.StatusUnauthorized, "authentication token required")
		return
	}

	claims, err := h.service.Tokens().Verify(tokenString)
	if err != nil {
		h.log.Debugf("Rejected change-password token: %v", err)
		h.jsonMessage(w, http.StatusUnauthorized, "invalid token")
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		h.jsonMessage(w, http.StatusUnauthorized, "invalid token")
		return
	}

	err = h.service.ChangePassword(r.Context(), userID, req.CurrentPassword, req.NewPassword)
	switch {
	case err == nil:
		h.jsonMessage(w, http.StatusOK, "password updated")
	case errors.Is(err, ErrPasswordTooShort):
		h.jsonMessage(w, http.StatusBadRequest, "new password is too short")
	case errors.Is(err, ErrUserNotFound):
		h.jsonMessage(w, http.StatusNotFound, "user not found")
	case errors.Is(err, ErrInvalidCredentials):
		h.jsonMessage(w, http.StatusUnauthorized, "current password is incorrect")
	default:
		h.log.Errorf("Cannot change password: %v", err)
		h.jsonMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// HandleLogout clears the session cookie. Tokens are stateless, so there
// is nothing to revoke server-side.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearAuthCookie(w)
	h.jsonMessage(w, http.StatusOK, "logged out")
}

func (h *Handler) jsonMessage(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"message": message})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Errorf("Cannot encode response: %v", err)
	}
}
