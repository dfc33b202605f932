// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the KeePassHTTP protocol on top of an
// [adapter.Transport].
//
// [ProtocolService] covers the three protocol operations. Each call builds
// a request with a fresh nonce and verifier, performs exactly one round
// trip, validates the reply and, for get-logins, decrypts the returned
// entries. [SessionService] adds association bootstrap on top: it loads
// the stored session, checks it with test-associate and associates anew
// when needed.
//
// Nothing in this package terminates the process; every failure is
// returned as an error that can be classified with [errors.Is] or
// [errors.As].
package service
