// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

const (
	// KeySize is the size of the shared AES-256 association key in bytes.
	KeySize = 32
	// NonceSize is the size of a request or response nonce in bytes. The
	// nonce doubles as the CBC initialization vector, so it equals the AES
	// block size.
	NonceSize = 16
	// BlockSize is the AES block size in bytes.
	BlockSize = 16
)
