// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// RandomSource supplies the random bytes used for nonces and keys. It is
// passed to the protocol service explicitly so tests can substitute a
// deterministic reader.
type RandomSource = io.Reader

// NewRandomSource returns the operating system CSPRNG.
func NewRandomSource() RandomSource {
	return rand.Reader
}

// NewNonce reads a fresh NonceSize-byte nonce from r.
func NewNonce(r RandomSource) ([]byte, error) {
	return readRandom(r, NonceSize)
}

// NewKey reads a fresh KeySize-byte association key from r.
func NewKey(r RandomSource) ([]byte, error) {
	return readRandom(r, KeySize)
}

func readRandom(r RandomSource, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return buf, nil
}
