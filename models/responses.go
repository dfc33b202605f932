// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the envelope common to every reply. KeePassHTTP servers
// also send Version, Hash and the echoed RequestType; the client decodes
// them for logging but never acts on them.
type Response struct {
	RequestType string `json:"RequestType,omitempty"`
	Success     bool   `json:"Success"`
	Error       string `json:"Error,omitempty"`
	Version     string `json:"Version,omitempty"`
	Hash        string `json:"Hash,omitempty"`
}

// TestAssociateResponse is the reply to a [TestAssociateRequest].
type TestAssociateResponse struct {
	Response
}

// AssociateResponse is the reply to an [AssociateRequest]. ID is set only
// when Success is true.
type AssociateResponse struct {
	Response

	ID string `json:"Id,omitempty"`
}

// GetLoginsResponse is the reply to a [GetLoginsRequest].
type GetLoginsResponse struct {
	Response

	// Count is the number of entries the service reports. It is
	// informational; Entries is authoritative.
	Count int `json:"Count"`

	// Entries holds the matching entries in service order, each field
	// encrypted under (key, Nonce).
	Entries []RawEntry `json:"Entries"`

	// Nonce is the server-chosen base64 IV for every field in Entries. It
	// is distinct from the request nonce.
	Nonce string `json:"Nonce"`

	// Verifier is the server's proof over Nonce.
	Verifier string `json:"Verifier,omitempty"`
}
