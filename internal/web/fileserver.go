package web

import (
	"bytes"
	"embed"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/peperuizdev/portfolio/pkg/pf/logger"
)

const (
	staticAssetsPath = "assets/static"
	staticURLPrefix  = "/static"
)

type FileServer struct {
	assetsFS embed.FS
	log      logger.Logger
}

func NewFileServer(assetsFS embed.FS, log logger.Logger) *FileServer {
	return &FileServer{
		assetsFS: assetsFS,
		log:      log,
	}
}

func (s *FileServer) RegisterRoutes(r chi.Router) {
	s.log.Infof("Registering file server: %s -> %s", staticURLPrefix, staticAssetsPath)

	staticFS, err := fs.Sub(s.assetsFS, staticAssetsPath)
	if err != nil {
		s.log.Errorf("Error creating static files sub-filesystem: %v", err)
		return
	}

	handler := http.StripPrefix(staticURLPrefix+"/", http.FileServer(http.FS(staticFS)))
	r.Handle(staticURLPrefix+"/*", handler)

	// Well-known root files live outside the locale prefix.
	r.Get("/robots.txt", s.serveRootFile(staticFS, "robots.txt"))
	r.Get("/favicon.ico", s.serveRootFile(staticFS, "favicon.ico"))

	s.log.Info("File server registered successfully")
}

func (s *FileServer) serveRootFile(staticFS fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(staticFS, name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(data))
	}
}
