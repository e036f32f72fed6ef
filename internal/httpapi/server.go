package httpapi

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/text/message"

	"github.com/DoyleJ11/map-veto/internal/engine"
	"github.com/DoyleJ11/map-veto/internal/i18n"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = []string{"entry", "maps", "sides"}

// Server renders the three wizard screens and the JSON API. It holds no
// per-session state; everything comes from the request.
type Server struct {
	logger    *zap.Logger
	tr        *i18n.Translator
	coin      engine.Coin
	staticDir string
	views     map[string]*template.Template
}

func NewServer(logger *zap.Logger, tr *i18n.Translator, coin engine.Coin, staticDir string) (*Server, error) {
	views := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		views[name] = t
	}

	return &Server{
		logger:    logger,
		tr:        tr,
		coin:      coin,
		staticDir: staticDir,
		views:     views,
	}, nil
}

// page is embedded in every view model.
type page struct {
	T    *message.Printer
	Lang string
}

func (s *Server) page(r *http.Request) page {
	accept := r.Header.Get("Accept-Language")
	return page{T: s.tr.Printer(accept), Lang: s.tr.Lang(accept).String()}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	// Render into a buffer so a template error never leaves half a page.
	var buf bytes.Buffer
	if err := s.views[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		s.logger.Error("render failed", zap.String("view", name), zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Debug("write failed", zap.Error(err))
	}
}
