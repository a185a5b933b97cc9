package site

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/draftml-dev/draftml/internal/config"
)

// Server serves a set of pages over HTTP for preview, with live
// reload, Prometheus metrics, and per-render OpenTelemetry spans.
// Every request renders the page tree fresh; there is no caching.
type Server struct {
	cfg      *config.Config
	pages    []Page
	reload   *ReloadHub
	metrics  *Metrics
	registry *prometheus.Registry
}

// NewServer creates a preview server for the given pages.
func NewServer(cfg *config.Config, pages ...Page) *Server {
	if cfg == nil {
		cfg = config.Default()
	}

	registry := prometheus.NewRegistry()
	return &Server{
		cfg:      cfg,
		pages:    pages,
		reload:   NewReloadHub(),
		metrics:  NewMetrics(registry),
		registry: registry,
	}
}

// Reload exposes the live-reload hub, so build tooling can notify
// connected browsers after regenerating content.
func (s *Server) Reload() *ReloadHub {
	return s.reload
}

// Handler returns the HTTP handler tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	r.Get("/_reload", s.reload.HandleWebSocket)

	for _, p := range s.pages {
		r.Get(p.Path, s.pageHandler(p))
	}

	return r
}

// pageHandler renders one page per request, instrumented with metrics
// and a trace span.
func (s *Server) pageHandler(p Page) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()

		var buf bytes.Buffer
		err := traceRender(req.Context(), p.Path, func(context.Context) (int, error) {
			if err := p.Render(&buf); err != nil {
				return 0, err
			}
			return buf.Len(), nil
		})
		s.metrics.ObserveRender(p.Path, time.Since(start), buf.Len(), err)

		if err != nil {
			s.reload.NotifyError(err.Error())
			http.Error(w, "render failed: "+err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(buf.Bytes())
	}
}

// ListenAndServe runs the server until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}
