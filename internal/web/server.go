package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"pulse/internal/initdata"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const DefaultMaxBodyBytes = 8192

type Server struct {
	Addr         string
	MaxBodyBytes int64

	verifier *initdata.Verifier
}

func NewServer(v *initdata.Verifier, addr string, maxBody int64) *Server {
	if addr == "" {
		addr = ":4000"
	}
	if maxBody <= 0 {
		maxBody = DefaultMaxBodyBytes
	}
	return &Server{Addr: addr, MaxBodyBytes: maxBody, verifier: v}
}

// Handler wires all routes. Exposed separately from Serve for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/validate-init", s.handleValidateInit)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.Handle("/api/context", s.authMiddleware(http.HandlerFunc(s.handleContext)))
	mux.Handle("/metrics", promhttp.Handler())
	return withRequestID(withCORS(withMetrics(mux)))
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.Addr).Msg("web: listening")
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
