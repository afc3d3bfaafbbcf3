package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/devconf/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer binds address and prepares the admin server around router.
// The listener is opened immediately, so a busy or invalid address is
// reported here rather than after start-up.
func NewServer(router http.Handler, address string, logger *logger.Logger) (Server, error) {
	if address == "" {
		return nil, errNoAddress
	}

	logger.Info().Str("address", address).Msg("creating admin server...")
	h, err := newHTTPServer(router, address, logger)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", address, err)
	}

	return &server{httpServer: h, logger: logger}, nil
}

func (s *server) RunServer() {
	if err := s.run(context.Background()); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until parent is cancelled or a stop signal arrives.
func (s *server) run(parent context.Context) error {
	ctx, stop := signal.NotifyContext(
		parent,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	served := make(chan struct{})
	s.logger.Info().Stringer("address", s.httpServer.Addr()).Msg("launching admin HTTP server")
	go func() {
		s.httpServer.RunServer()
		close(served)
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-served
	case <-served:
		return fmt.Errorf("admin server stopped unexpectedly")
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) addr() net.Addr {
	return s.httpServer.Addr()
}
