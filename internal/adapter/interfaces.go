// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used to reach the KeePassHTTP
// service.
//
// The primary abstraction is [Transport], which decouples the protocol
// service from HTTP. The package ships a resty-based implementation
// ([NewHTTPTransport]) that issues exactly one JSON POST per call and never
// retries.
//
// Failures are reported as errors wrapping [ErrTransport]; callers can
// tell a service that could not be reached ([ErrServiceUnreachable]) from
// one that answered with a non-OK status ([ErrServiceStatus]) using
// [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-kph-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport delivers a single request to the KeePassHTTP service.
type Transport interface {
	// Send serialises req as JSON, POSTs it to the service endpoint and
	// returns the raw body of a 200 OK reply. Any other outcome is an
	// error wrapping [ErrTransport].
	Send(ctx context.Context, req models.Request) ([]byte, error)

	// Endpoint returns the normalised service URL the transport talks to.
	Endpoint() string
}
