// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakekph

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-kph-client/internal/logger"
)

const shutdownTimeout = 5 * time.Second

// Server runs a [Handler] on a listen address until it receives a stop
// signal.
type Server struct {
	server *http.Server
	logger *logger.Logger
}

// NewServer returns a Server serving handler on address.
func NewServer(handler http.Handler, address string, logger *logger.Logger) *Server {
	logger.Info().Str("address", address).Msg("creating new fakekph server...")
	return &Server{
		server: &http.Server{
			Addr:              address,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Run serves until SIGTERM, SIGINT or SIGQUIT arrives or ctx is
// cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", s.server.Addr).Msg("launching HTTP server")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}
