// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-kph-client/internal/logger"
	"github.com/MKhiriev/go-kph-client/internal/store"
	"github.com/MKhiriev/go-kph-client/models"
)

type sessionService struct {
	protocol ProtocolService
	repo     store.SessionRepository
	endpoint string

	logger *logger.Logger
}

// NewSessionService returns a [SessionService] bound to endpoint.
func NewSessionService(protocol ProtocolService, repo store.SessionRepository, endpoint string, logger *logger.Logger) SessionService {
	return &sessionService{protocol: protocol, repo: repo, endpoint: endpoint, logger: logger}
}

// Ensure implements [SessionService]. A stored session is reused only if
// test-associate succeeds; otherwise a new association replaces it. A new
// config is persisted only after the service accepted it, so the store
// never holds a half-finished association.
func (s *sessionService) Ensure(ctx context.Context) (models.SessionConfig, error) {
	stored, err := s.repo.Load(ctx, s.endpoint)
	switch {
	case errors.Is(err, store.ErrSessionNotFound):
		s.logger.Info().
			Str("func", "sessionService.Ensure").
			Str("endpoint", s.endpoint).
			Msg("no stored association, associating")
		return s.Associate(ctx)
	case err != nil:
		return models.SessionConfig{}, fmt.Errorf("load session: %w", err)
	}

	ok, err := s.protocol.TestAssociate(ctx, stored.Config)
	if err != nil && !errors.Is(err, ErrInvalidSession) {
		return models.SessionConfig{}, fmt.Errorf("test association: %w", err)
	}
	if ok {
		return stored.Config, nil
	}

	s.logger.Info().
		Str("func", "sessionService.Ensure").
		Str("endpoint", s.endpoint).
		Str("client_id", stored.Config.ID).
		Msg("stored association rejected, associating again")
	return s.Associate(ctx)
}

// Associate implements [SessionService].
func (s *sessionService) Associate(ctx context.Context) (models.SessionConfig, error) {
	cfg, err := s.protocol.Associate(ctx)
	if err != nil {
		return models.SessionConfig{}, err
	}

	if err = s.repo.Save(ctx, s.endpoint, cfg); err != nil {
		return models.SessionConfig{}, fmt.Errorf("save session: %w", err)
	}
	return cfg, nil
}

// Test implements [SessionService].
func (s *sessionService) Test(ctx context.Context) (bool, error) {
	stored, err := s.repo.Load(ctx, s.endpoint)
	if err != nil {
		return false, err
	}
	return s.protocol.TestAssociate(ctx, stored.Config)
}

// Forget implements [SessionService].
func (s *sessionService) Forget(ctx context.Context) error {
	return s.repo.Delete(ctx, s.endpoint)
}
