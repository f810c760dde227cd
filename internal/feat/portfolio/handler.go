package portfolio

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/peperuizdev/portfolio/internal/i18n"
	"github.com/peperuizdev/portfolio/pkg/pf/config"
	"github.com/peperuizdev/portfolio/pkg/pf/logger"
	"github.com/peperuizdev/portfolio/pkg/pf/middleware"
	"github.com/peperuizdev/portfolio/pkg/pf/render"
)

const templatesPath = "assets/templates"

// MessageCounter reports pending contact messages for the dashboard.
type MessageCounter interface {
	CountUnread(ctx context.Context) (int64, error)
}

// Handler renders the site pages for every locale.
type Handler struct {
	service  Service
	messages MessageCounter
	cfg      *config.Config
	log      logger.Logger
	assetsFS embed.FS
	tmpl     *template.Template
}

// NewHandler creates a new page handler.
func NewHandler(service Service, messages MessageCounter, assetsFS embed.FS, cfg *config.Config, log logger.Logger) *Handler {
	return &Handler{
		service:  service,
		messages: messages,
		cfg:      cfg,
		log:      log,
		assetsFS: assetsFS,
	}
}

// Start parses the page templates from the embedded filesystem.
func (h *Handler) Start(ctx context.Context) error {
	tmpl, err := template.New("").Funcs(render.FuncMap()).ParseFS(h.assetsFS,
		templatesPath+"/*.html",
	)
	if err != nil {
		return fmt.Errorf("cannot parse page templates: %w", err)
	}
	h.tmpl = tmpl
	h.log.Info("Page templates parsed")
	return nil
}

// RegisterRoutes registers the localized page routes. Each locale gets its
// own spelling of the mapped segments.
func (h *Handler) RegisterRoutes(r chi.Router) {
	h.log.Info("Registering page routes")

	r.Get("/", h.HandleRoot)

	for _, locale := range i18n.Locales() {
		base := "/" + locale
		r.Get(base, h.HandleHome)
		r.Get(base+"/"+i18n.PathSegment(locale, "about"), h.HandleAbout)
		r.Get(base+"/"+i18n.PathSegment(locale, "contact"), h.HandleContact)
		r.Get(base+"/"+i18n.PathSegment(locale, "projects")+"/{slug}", h.HandleProject)
		r.Get(base+"/admin/login", h.HandleAdminLogin)
		r.Get(base+"/admin", h.HandleAdminDashboard)
	}
}

// pageData is the payload every page template receives.
type pageData struct {
	Locale    string
	AltLocale string
	AltPath   string
	T         map[string]string
	SiteName  string
	Nav       navLinks
	// ProjectsBase is the locale-prefixed base of the project detail
	// routes, e.g. "/es/proyectos".
	ProjectsBase string
	Year         int

	Projects    []*Project
	Project     *Project
	SkillGroups []SkillGroup
	UnreadCount int64
}

type navLinks struct {
	Home     string
	About    string
	Projects string
	Contact  string
}

func (h *Handler) newPageData(r *http.Request) pageData {
	locale := middleware.GetLocale(r.Context())
	if !i18n.IsSupported(locale) {
		locale = i18n.DefaultLocale
	}

	alt := i18n.EN
	if locale == i18n.EN {
		alt = i18n.ES
	}

	base := "/" + locale
	return pageData{
		Locale:    locale,
		AltLocale: alt,
		AltPath:   i18n.LocalizedPath(r.URL.Path, locale, alt),
		T:         i18n.Bundle(locale),
		SiteName:  h.cfg.Site.Name,
		Nav: navLinks{
			Home:     base,
			About:    base + "/" + i18n.PathSegment(locale, "about"),
			Projects: base + "#projects",
			Contact:  base + "/" + i18n.PathSegment(locale, "contact"),
		},
		ProjectsBase: base + "/" + i18n.PathSegment(locale, "projects"),
		Year:         time.Now().Year(),
	}
}

// HandleRoot serves "/" for clients that skipped the locale redirect.
func (h *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	locale := middleware.GetLocale(r.Context())
	if !i18n.IsSupported(locale) {
		locale = i18n.DefaultLocale
	}
	http.Redirect(w, r, "/"+locale, http.StatusTemporaryRedirect)
}

// HandleHome renders the home page with the featured projects.
func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	data := h.newPageData(r)

	projects, err := h.service.ListFeaturedProjects(r.Context())
	if err != nil {
		h.log.Errorf("Cannot load featured projects: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	data.Projects = projects

	h.renderPage(w, "home", data)
}

// HandleAbout renders the about page with the skill groups.
func (h *Handler) HandleAbout(w http.ResponseWriter, r *http.Request) {
	data := h.newPageData(r)
	data.SkillGroups = SkillsByCategory()
	h.renderPage(w, "about", data)
}

// HandleContact renders the contact form page.
func (h *Handler) HandleContact(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, "contact", h.newPageData(r))
}

// HandleProject renders a project detail page. Unknown slugs get the
// localized not-found page.
func (h *Handler) HandleProject(w http.ResponseWriter, r *http.Request) {
	data := h.newPageData(r)

	project, err := h.service.GetProjectBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			h.renderNotFound(w, r)
			return
		}
		h.log.Errorf("Cannot load project: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	data.Project = project

	h.renderPage(w, "project", data)
}

// HandleAdminLogin renders the login page. The route gate leaves it open.
func (h *Handler) HandleAdminLogin(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, "admin_login", h.newPageData(r))
}

// HandleAdminDashboard renders the dashboard. The route gate has already
// verified the token by the time this runs.
func (h *Handler) HandleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	data := h.newPageData(r)

	projects, err := h.service.ListProjects(r.Context())
	if err != nil {
		h.log.Errorf("Cannot load projects: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	data.Projects = projects

	if h.messages != nil {
		unread, err := h.messages.CountUnread(r.Context())
		if err != nil {
			h.log.Errorf("Cannot count unread messages: %v", err)
		}
		data.UnreadCount = unread
	}

	h.renderPage(w, "admin_dashboard", data)
}

// HandleNotFound renders the localized not-found page. Wired as the
// router's NotFound handler.
func (h *Handler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	h.renderNotFound(w, r)
}

func (h *Handler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	data := h.newPageData(r)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := h.tmpl.ExecuteTemplate(w, "not_found", data); err != nil {
		h.log.Errorf("Cannot render not-found page: %v", err)
	}
}

func (h *Handler) renderPage(w http.ResponseWriter, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		h.log.Errorf("Cannot render %s page: %v", name, err)
	}
}
