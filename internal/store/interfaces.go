// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-kph-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists associations, one per KeePassHTTP endpoint.
//
// The stored key text is returned exactly as it was saved; the repository
// never decodes or re-encodes it.
type SessionRepository interface {
	// Load returns the association stored for endpoint, or
	// [ErrSessionNotFound].
	Load(ctx context.Context, endpoint string) (models.StoredSession, error)

	// Save stores cfg for endpoint, replacing any previous association.
	// Both cfg.Key and cfg.ID must be non-empty.
	Save(ctx context.Context, endpoint string, cfg models.SessionConfig) error

	// Delete removes the association for endpoint. Deleting a missing
	// association returns [ErrSessionNotFound].
	Delete(ctx context.Context, endpoint string) error
}
