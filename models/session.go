// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SessionConfig is the persisted result of a successful association.
//
// Key holds the base64 text of the shared key exactly as it was sent in
// the associate request; it must be stored and reloaded without
// re-encoding. ID is the identifier the service issued for that key. The
// two are only ever written together.
type SessionConfig struct {
	Key string `json:"key"`
	ID  string `json:"id"`
}

// IsZero reports whether no association is present.
func (c SessionConfig) IsZero() bool {
	return c.Key == "" && c.ID == ""
}

// StoredSession is a [SessionConfig] as kept by the session repository,
// bound to the service endpoint it was negotiated with.
type StoredSession struct {
	Endpoint  string
	Config    SessionConfig
	CreatedAt time.Time
	UpdatedAt time.Time
}
