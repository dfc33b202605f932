// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models contains the wire shapes of the KeePassHTTP protocol and
// the plaintext values handed back to callers.
//
// The types in this package are passive containers. Field-level encryption
// and nonce handling are performed by the service layer; JSON tags here
// only fix the field names the KeePassHTTP service expects.
package models
