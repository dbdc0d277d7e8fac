package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"golang.org/x/net/netutil"

	"github.com/pibulus/cosmic-horoscope-sub001/internal/app/generate"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/app/output"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/config"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/effect"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/frame"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/glyph"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/logging"
	"github.com/pibulus/cosmic-horoscope-sub001/internal/version"
)

const (
	defaultPageText = "cosmic"
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	glyphs   glyph.Renderer
	settings atomic.Pointer[config.Settings]
	metrics  *Metrics
}

func New(glyphs glyph.Renderer, settings config.Settings) *Server {
	s := &Server{glyphs: glyphs, metrics: &Metrics{}}
	s.SetSettings(settings)
	return s
}

// SetSettings swaps the settings used by subsequent requests.
func (s *Server) SetSettings(settings config.Settings) {
	s.settings.Store(&settings)
}

func (s *Server) Settings() config.Settings {
	return *s.settings.Load()
}

func (s *Server) Metrics() *Metrics {
	return s.metrics
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/render", s.handleRender)
	mux.HandleFunc("GET /api/effects", s.handleEffects)
	mux.HandleFunc("GET /api/fonts", s.handleFonts)
	mux.HandleFunc("GET /api/borders", s.handleBorders)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /metricz", s.handleMetrics)
	return s.metrics.Middleware(withServerHeader(mux))
}

// ListenAndServe listens on the configured address and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	settings := s.Settings()
	ln, err := net.Listen("tcp", settings.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", settings.ListenAddr, err)
	}
	if settings.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, settings.MaxConnections)
	}
	return s.Serve(ctx, ln)
}

// Serve handles connections from ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) generator() *generate.Generator {
	return generate.New(s.glyphs, s.Settings())
}

func requestFromQuery(r *http.Request) generate.Request {
	q := r.URL.Query()
	strict, _ := strconv.ParseBool(q.Get("strict"))
	return generate.Request{
		Text:   q.Get("text"),
		Font:   q.Get("font"),
		Effect: q.Get("effect"),
		Border: q.Get("border"),
		Color:  q.Get("color"),
		Strict: strict,
	}
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	res, err := s.generator().Generate(requestFromQuery(r))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, output.NewJSONResult(res))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	req := requestFromQuery(r)
	if req.Text == "" {
		req.Text = defaultPageText
	}
	res, err := s.generator().Generate(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data := output.NewPageData(req.Text, res)
	data.Effects = effectNames()
	data.Fonts = s.glyphs.Fonts()
	data.Borders = frame.Styles()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := output.WriteHTMLDocument(w, data); err != nil {
		logging.WithError(err, "write page")
	}
}

func (s *Server) handleEffects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, effectNames())
}

func (s *Server) handleFonts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.glyphs.Fonts())
}

func (s *Server) handleBorders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, frame.Styles())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	requests, errs, total := s.metrics.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"requests":          requests,
		"errors":            errs,
		"request_time_ms":   total.Milliseconds(),
		"request_time_text": total.String(),
	})
}

func effectNames() []string {
	names := effect.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}

func withServerHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", version.ServerHeader())
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.WithError(err, "encode response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
