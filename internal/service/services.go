package service

import (
	"github.com/MKhiriev/go-kph-client/internal/adapter"
	"github.com/MKhiriev/go-kph-client/internal/crypto"
	"github.com/MKhiriev/go-kph-client/internal/logger"
	"github.com/MKhiriev/go-kph-client/internal/store"
)

// ClientServices groups the services used by the client application.
type ClientServices struct {
	ProtocolService ProtocolService
	SessionService  SessionService
}

// NewClientServices wires the services on top of the given transport and
// storages, drawing randomness from the OS CSPRNG.
func NewClientServices(storages *store.ClientStorages, transport adapter.Transport, logger *logger.Logger) *ClientServices {
	protocol := NewProtocolService(transport, crypto.NewRandomSource(), logger)

	return &ClientServices{
		ProtocolService: protocol,
		SessionService:  NewSessionService(protocol, storages.SessionRepository, transport.Endpoint(), logger),
	}
}
