package service

import (
	"context"

	"github.com/MKhiriev/go-kph-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ProtocolService performs the KeePassHTTP operations. Implementations
// hold no per-call state, so one value may be shared by concurrent
// callers.
type ProtocolService interface {
	// TestAssociate reports whether the service still trusts cfg.
	TestAssociate(ctx context.Context, cfg models.SessionConfig) (bool, error)

	// Associate generates a new key, registers it with the service and
	// returns the resulting session config. Returns
	// [ErrAssociationDeclined] if the service refuses.
	Associate(ctx context.Context) (models.SessionConfig, error)

	// GetLogins returns the decrypted entries matching url in the order the
	// service sent them. Returns a [*LookupError] if the service reports
	// failure.
	GetLogins(ctx context.Context, cfg models.SessionConfig, url string) ([]models.Entry, error)
}

// SessionService manages the association with the configured endpoint.
type SessionService interface {
	// Ensure returns a session config the service currently trusts,
	// associating and persisting a new one when none is stored or the
	// stored one is rejected.
	Ensure(ctx context.Context) (models.SessionConfig, error)

	// Associate unconditionally performs a new association and persists it.
	Associate(ctx context.Context) (models.SessionConfig, error)

	// Test checks the stored association without modifying it. Returns
	// [store.ErrSessionNotFound] if nothing is stored.
	Test(ctx context.Context) (bool, error)

	// Forget deletes the stored association.
	Forget(ctx context.Context) error
}
