package contact

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/peperuizdev/portfolio/internal/i18n"
	"github.com/peperuizdev/portfolio/pkg/pf/config"
	"github.com/peperuizdev/portfolio/pkg/pf/logger"
	"github.com/peperuizdev/portfolio/pkg/pf/middleware"
)

// Handler implements the public contact endpoint and the admin message API.
type Handler struct {
	service        Service
	verifier       middleware.TokenVerifier
	cfg            *config.Config
	log            logger.Logger
	limiter        *submissionLimiter
	allowedOrigins []string
}

// NewHandler creates a new contact handler.
func NewHandler(service Service, verifier middleware.TokenVerifier, cfg *config.Config, log logger.Logger) *Handler {
	limit := cfg.Contact.RateLimit
	if limit <= 0 {
		limit = 5
	}

	var origins []string
	for _, o := range strings.Split(cfg.Contact.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &Handler{
		service:        service,
		verifier:       verifier,
		cfg:            cfg,
		log:            log,
		limiter:        newSubmissionLimiter(limit),
		allowedOrigins: origins,
	}
}

// RegisterRoutes registers the contact API routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	h.log.Info("Registering contact routes")

	r.Route("/api/contact", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(h.corsMiddleware)
			r.Use(h.rateLimitMiddleware)
			r.Post("/", h.HandleSubmit)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Get("/messages", h.HandleListMessages)
			r.Get("/messages/{id}", h.HandleGetMessage)
			r.Post("/messages/{id}/read", h.HandleMarkRead)
			r.Delete("/messages/{id}", h.HandleDeleteMessage)
		})
	})
}

// requireAuth protects the admin message API with the same token the page
// gate verifies.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := middleware.BearerOrCookieToken(r)
		if token == "" {
			h.jsonResponse(w, http.StatusUnauthorized, map[string]string{"message": "authentication token required"})
			return
		}
		if _, _, _, err := h.verifier.VerifyToken(token); err != nil {
			h.log.Debugf("Rejected API token: %v", err)
			h.jsonResponse(w, http.StatusUnauthorized, map[string]string{"message": "invalid token"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// HandleSubmit processes a contact form submission from the public site.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.jsonResponse(w, http.StatusBadRequest, map[string]string{"error": "invalid form data"})
		return
	}

	// Honeypot check
	if r.FormValue("_honeypot") != "" {
		// Silently accept to fool bots
		h.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	locale := r.FormValue("_locale")
	if !i18n.IsSupported(locale) {
		locale = i18n.DefaultLocale
	}

	sub := NewSubmission(
		r.FormValue("name"),
		r.FormValue("email"),
		r.FormValue("subject"),
		r.FormValue("message"),
		locale,
	)

	if errs := sub.Validate(); errs.HasErrors() {
		h.jsonResponse(w, http.StatusBadRequest, map[string]any{"error": "validation failed", "fields": errs.FieldMap()})
		return
	}

	sub.IPAddress = extractIP(r)
	sub.UserAgent = r.UserAgent()

	if err := h.service.Submit(r.Context(), sub); err != nil {
		h.log.Errorf("Cannot accept submission: %v", err)
		h.jsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- Admin message API ---

// HandleListMessages returns all submissions, newest first.
func (h *Handler) HandleListMessages(w http.ResponseWriter, r *http.Request) {
	subs, err := h.service.ListSubmissions(r.Context())
	if err != nil {
		h.log.Errorf("Cannot list submissions: %v", err)
		h.jsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	unread, err := h.service.CountUnread(r.Context())
	if err != nil {
		h.log.Errorf("Cannot count unread submissions: %v", err)
	}

	h.jsonResponse(w, http.StatusOK, map[string]any{"messages": subs, "unread": unread})
}

// HandleGetMessage returns a single submission.
func (h *Handler) HandleGetMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	sub, err := h.service.GetSubmission(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrSubmissionNotFound) {
			h.jsonResponse(w, http.StatusNotFound, map[string]string{"error": "message not found"})
			return
		}
		h.log.Errorf("Cannot get submission: %v", err)
		h.jsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.jsonResponse(w, http.StatusOK, sub)
}

// HandleMarkRead marks a submission as read.
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.MarkRead(r.Context(), id); err != nil {
		h.log.Errorf("Cannot mark submission read: %v", err)
		h.jsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandleDeleteMessage deletes a submission.
func (h *Handler) HandleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteSubmission(r.Context(), id); err != nil {
		h.log.Errorf("Cannot delete submission: %v", err)
		h.jsonResponse(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.jsonResponse(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Errorf("Cannot encode response: %v", err)
	}
}
