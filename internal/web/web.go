package web

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/docstyle/pkg/httpserver"
	"github.com/dmitrymomot/docstyle/pkg/logger"
	"github.com/dmitrymomot/docstyle/pkg/requestid"
	"github.com/dmitrymomot/docstyle/pkg/strsearch"
	"github.com/dmitrymomot/docstyle/pkg/stylesheet"
)

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	cfg    Config
	sel    *stylesheet.Selector
	styles fs.FS
	log    *slog.Logger
}

// New validates cfg and prepares the handlers. A nil logger discards.
func New(cfg Config, log *slog.Logger) (*Server, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	styles, err := Styles(cfg.Dir)
	if err != nil {
		return nil, err
	}

	opts := []stylesheet.Option{stylesheet.WithBasePath(cfg.BasePath)}
	if cfg.LegacySearch {
		opts = append(opts, stylesheet.WithMatcher(strsearch.LegacyIndex))
	}

	return &Server{
		cfg:    cfg,
		sel:    stylesheet.New(opts...),
		styles: styles,
		log:    log.With(logger.Component("web")),
	}, nil
}

// Selector returns the selector used by the handlers.
func (s *Server) Selector() *stylesheet.Selector {
	return s.sel
}

// Router returns the HTTP routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", httpserver.LivenessHandler())
		r.Get("/ready", httpserver.ReadinessHandler(s.log, httpserver.Check{
			Name: "stylesheets",
			Fn:   s.checkStyles,
		}))
	})

	if prefix := strings.TrimRight(s.cfg.StaticPrefix, "/"); prefix != "" {
		r.Handle(prefix+"/*", http.StripPrefix(prefix+"/", http.FileServerFS(s.styles)))
	}

	r.Group(func(r chi.Router) {
		r.Use(stylesheet.Middleware(s.sel))
		r.Get("/", s.handlePage)
		r.Get("/stylesheet", s.handleLink)
		r.Get("/stylesheet.json", s.handleJSON)
	})

	return r
}

func (s *Server) checkStyles(context.Context) error {
	return checkStyles(s.styles)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.DebugContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}
