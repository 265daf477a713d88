package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-user-api/internal/config"
	"github.com/MKhiriev/go-user-api/internal/handler"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	closers    []io.Closer
	logger     *logger.Logger
}

// NewServer assembles the transport server from the HTTP handler, the
// background workers, and the resources that must be closed on shutdown
// (database and optional Redis connections).
func NewServer(handlers *handler.Handlers, wrk *workers.Workers, cfg config.Server, logger *logger.Logger, closers ...io.Closer) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.workers = wrk
	servers.closers = closers
	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() error {
	if err := s.run(); err != nil {
		s.logger.Error().Msgf("error running server: %v", err)
		return err
	}

	return nil
}

// Shutdown stops the HTTP server and closes every registered resource. All
// failures are collected so that one broken resource does not hide another.
func (s *server) Shutdown() error {
	var errs []error

	if s.httpServer != nil {
		errs = append(errs, s.httpServer.Shutdown())
	}

	for _, closer := range s.closers {
		if err := closer.Close(); err != nil {
			s.logger.Error().Msgf("closing resource: %v", err)
			errs = append(errs, fmt.Errorf("closing resource: %w", err))
		}
	}

	return errors.Join(errs...)
}

func (s *server) run() error {
	if s.httpServer == nil {
		return errNoServersAreCreated
	}

	shutdownDone := make(chan error, 1)
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		// drain in-flight requests, then release resources
		shutdownDone <- s.Shutdown()
	}()

	if s.workers != nil {
		s.logger.Info().Msg("launching background workers")
		s.workers.Run(ctx)
	}

	s.logger.Info().Msg("launching HTTP server")
	go s.httpServer.RunServer()

	shutdownErr := <-shutdownDone

	if s.workers != nil {
		s.workers.Wait()
	}

	if shutdownErr != nil {
		return fmt.Errorf("shutdown did not complete cleanly: %w", shutdownErr)
	}

	s.logger.Info().Msg("server shut down gracefully")

	return nil
}
