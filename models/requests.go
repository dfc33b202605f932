// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Request is implemented by every request sent to the service. Type lets
// the transport and logging layers tag a request without a type switch.
type Request interface {
	Type() RequestType
}

// TestAssociateRequest asks the service whether the association identified
// by ID is still trusted.
type TestAssociateRequest struct {
	// RequestType is always [RequestTestAssociate].
	RequestType RequestType `json:"RequestType"`

	// ID is the client identity issued during association.
	ID string `json:"Id"`

	// Nonce is the base64 request nonce.
	Nonce string `json:"Nonce"`

	// Verifier proves possession of the key for Nonce.
	Verifier string `json:"Verifier"`
}

// Type implements [Request].
func (r TestAssociateRequest) Type() RequestType { return RequestTestAssociate }

// AssociateRequest offers a freshly generated key to the service.
type AssociateRequest struct {
	// RequestType is always [RequestAssociate].
	RequestType RequestType `json:"RequestType"`

	// Key is the base64 encoded 256-bit key being registered.
	Key string `json:"Key"`

	// Nonce is the base64 request nonce.
	Nonce string `json:"Nonce"`

	// Verifier is computed with Key, proving the client holds it.
	Verifier string `json:"Verifier"`
}

// Type implements [Request].
func (r AssociateRequest) Type() RequestType { return RequestAssociate }

// GetLoginsRequest looks up entries matching Url.
type GetLoginsRequest struct {
	// RequestType is always [RequestGetLogins].
	RequestType RequestType `json:"RequestType"`

	// ID is the client identity issued during association.
	ID string `json:"Id"`

	// Nonce is the base64 request nonce, also the IV for URL.
	Nonce string `json:"Nonce"`

	// Verifier proves possession of the key for Nonce.
	Verifier string `json:"Verifier"`

	// URL is the lookup URL, encrypted under (key, Nonce) and base64
	// encoded.
	URL string `json:"Url"`
}

// Type implements [Request].
func (r GetLoginsRequest) Type() RequestType { return RequestGetLogins }
