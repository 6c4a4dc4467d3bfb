package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"
	"sync"

	"inventory_management/internal/config"
)

// Server wraps an *http.Server to provide start/shutdown lifecycle.
type Server struct {
	mu         sync.Mutex
	httpServer *http.Server
	closed     bool
	cfg        config.ServerConfig
}

const maxHeaderBytes = 1 << 20 // 1 MB

// New returns a Server using the timeouts from cfg.
func New(cfg config.ServerConfig) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		WriteTimeout:      s.cfg.WriteTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
	}
}

// normalizeAddr accepts "8080", ":8080" or "host:8080".
func normalizeAddr(port string) string {
	if port == "" || strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

// Run listens on the configured port and serves handler until Shutdown.
// A clean shutdown returns nil.
func (s *Server) Run(handler http.Handler) error {
	ln, err := net.Listen("tcp", normalizeAddr(s.cfg.Port))
	if err != nil {
		return err
	}
	return s.Serve(ln, handler)
}

// Serve runs the server on an existing listener. If Shutdown was already
// called, the listener is closed and Serve returns nil without serving.
func (s *Server) Serve(ln net.Listener, handler http.Handler) error {
	hs := s.newHTTPServer(ln.Addr().String(), handler)
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = ln.Close()
		return nil
	}
	s.httpServer = hs
	s.mu.Unlock()

	if err := hs.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, allowing in-flight requests to
// complete. It also prevents a later Run or Serve from starting.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	hs := s.httpServer
	s.mu.Unlock()
	if hs == nil {
		return nil
	}
	return hs.Shutdown(ctx)
}
