// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the primitives of the KeePassHTTP exchange.
//
// Every encrypted field on the wire is AES-256-CBC with PKCS#7 padding,
// encoded as standard base64. Each request carries a fresh 16-byte nonce
// that serves both as the IV for that request's fields and as the input to
// the verifier, which proves that the client holds the shared key.
//
// Errors from this package wrap either [ErrCrypto] or [ErrDecode] so that
// callers can classify them with [errors.Is].
package crypto
