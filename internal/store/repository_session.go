// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-kph-client/internal/logger"
	"github.com/MKhiriev/go-kph-client/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger

	now func() time.Time
}

// NewSessionRepository returns the SQLite-backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *sessionRepository) Load(ctx context.Context, endpoint string) (models.StoredSession, error) {
	query, args, err := loadSessionQuery(endpoint)
	if err != nil {
		return models.StoredSession{}, fmt.Errorf("build load session query: %w", err)
	}

	stored := models.StoredSession{Endpoint: endpoint}
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(
		&stored.Config.ID,
		&stored.Config.Key,
		&stored.CreatedAt,
		&stored.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredSession{}, ErrSessionNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.Load").
			Str("endpoint", endpoint).
			Msg("failed to query stored session")
		return models.StoredSession{}, fmt.Errorf("failed to load session: %w", err)
	}

	return stored, nil
}

func (s *sessionRepository) Save(ctx context.Context, endpoint string, cfg models.SessionConfig) error {
	if cfg.Key == "" || cfg.ID == "" {
		return ErrIncompleteSession
	}

	query, args, err := saveSessionQuery(endpoint, cfg.ID, cfg.Key, s.now())
	if err != nil {
		return fmt.Errorf("build save session query: %w", err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.Save").
			Str("endpoint", endpoint).
			Str("client_id", cfg.ID).
			Msg("failed to upsert session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Debug().
		Str("func", "sessionRepository.Save").
		Str("endpoint", endpoint).
		Str("client_id", cfg.ID).
		Msg("session saved")
	return nil
}

func (s *sessionRepository) Delete(ctx context.Context, endpoint string) error {
	query, args, err := deleteSessionQuery(endpoint)
	if err != nil {
		return fmt.Errorf("build delete session query: %w", err)
	}

	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.Delete").
			Str("endpoint", endpoint).
			Msg("failed to delete session")
		return fmt.Errorf("failed to delete session: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}
	return nil
}
