package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/docstyle/pkg/logger"
	"github.com/dmitrymomot/docstyle/pkg/stylesheet"
	"github.com/dmitrymomot/docstyle/pkg/useragent"
)

func (s *Server) decision(w http.ResponseWriter, r *http.Request) (stylesheet.Decision, bool) {
	d, ok := stylesheet.FromContext(r.Context())
	if !ok {
		s.log.ErrorContext(r.Context(), "stylesheet middleware not installed", logger.Error(ErrNoDecision))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return d, false
	}

	info, _ := useragent.Parse(d.UserAgent)
	s.log.DebugContext(r.Context(), "stylesheet selected",
		logger.Vendor(d.Vendor),
		logger.Stylesheet(string(d.Name)),
		logger.Client(info.ShortIdentifier()),
	)
	return d, true
}

// render writes c in full or, on failure, a 500 with nothing of c.
func (s *Server) render(w http.ResponseWriter, r *http.Request, c templ.Component, handler string) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		s.log.ErrorContext(r.Context(), "render failed", logger.Handler(handler), logger.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	d, ok := s.decision(w, r)
	if !ok {
		return
	}
	s.render(w, r, Page(d), "page")
}

func (s *Server) handleLink(w http.ResponseWriter, r *http.Request) {
	d, ok := s.decision(w, r)
	if !ok {
		return
	}

	if !isDataStar(r) {
		s.render(w, r, stylesheet.LinkFor(d), "link")
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(stylesheet.LinkFor(d),
		datastar.WithSelector("#"+stylesheet.LinkID),
		datastar.WithMode(datastar.ElementPatchModeOuter),
	); err != nil {
		s.log.ErrorContext(r.Context(), "element patch failed", logger.Handler("link"), logger.Error(err))
	}
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	d, ok := s.decision(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(d); err != nil {
		s.log.ErrorContext(r.Context(), "encode failed", logger.Handler("json"), logger.Error(err))
	}
}

// isDataStar reports whether r was issued by the DataStar client, which
// expects an event stream.
func isDataStar(r *http.Request) bool {
	if r.Header.Get("Datastar-Request") == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		return true
	}
	return r.URL.Query().Has("datastar")
}
