package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/dnimmo/bestretro/internal/config"
	"go.uber.org/zap"
)

// State is the lifecycle state of a Server.
type State int

const (
	StateStopped State = iota
	StateListening
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateListening:
		return "listening"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	// ErrBind is returned by Listen when the address cannot be bound.
	ErrBind = errors.New("bind failed")

	ErrAlreadyListening = errors.New("server already listening")
	ErrNotListening     = errors.New("server not listening")
)

// Server owns the listening socket and the http.Server serving on it. A
// Server is single-use: once shut down it cannot listen again.
type Server struct {
	addr            string
	shutdownTimeout time.Duration
	srv             *http.Server
	log             *zap.SugaredLogger

	mu     sync.Mutex
	ln     net.Listener
	state  State
	closed bool
}

// NewServer prepares a Server for cfg's listen address. Nothing is bound
// until Listen is called.
func NewServer(cfg *config.Config, h http.Handler, log *zap.SugaredLogger) *Server {
	return &Server{
		addr:            cfg.ListenAddr(),
		shutdownTimeout: cfg.Server.ShutdownTimeout,
		srv: &http.Server{
			Handler:     h,
			ReadTimeout: cfg.Server.ReadTimeout,
			IdleTimeout: cfg.Server.IdleTimeout,
		},
		log: log,
	}
}

// Listen binds the configured address. Failures wrap ErrBind and are not
// retried.
func (s *Server) Listen() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return http.ErrServerClosed
	}
	if s.state == StateListening {
		return ErrAlreadyListening
	}

	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrBind, s.addr, err)
	}
	s.ln = ln
	s.state = StateListening
	s.log.Infow("listening", "addr", ln.Addr().String())
	return nil
}

// Serve handles connections until Shutdown. It returns nil after a clean
// shutdown.
func (s *Server) Serve() error {
	s.mu.Lock()
	ln, state, closed := s.ln, s.state, s.closed
	s.mu.Unlock()

	if closed {
		return nil
	}
	if state != StateListening {
		return ErrNotListening
	}
	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	ln := s.ln
	wasListening := s.state == StateListening
	s.state = StateStopped
	s.ln = nil
	s.mu.Unlock()

	if !wasListening {
		return nil
	}
	err := s.srv.Shutdown(ctx)
	// Serve may never have run, in which case http.Server does not own ln.
	_ = ln.Close()
	return err
}

// Run binds, serves until ctx is cancelled or serving fails, then shuts
// down gracefully within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve()
	}()

	select {
	case err := <-errCh:
		_ = s.Shutdown(context.Background())
		return err
	case <-ctx.Done():
	}

	s.log.Infow("shutting down", "timeout", s.shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return <-errCh
}

// Addr returns the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.addr
}

// State reports the current lifecycle state.
func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
