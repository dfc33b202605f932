// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrCrypto is the root of every cipher failure. Concrete errors below
	// wrap it so callers can match either the family or the exact cause.
	ErrCrypto = errors.New("crypto error")

	// ErrInvalidKeySize is returned when the key is not KeySize bytes long.
	ErrInvalidKeySize = fmt.Errorf("%w: invalid key size", ErrCrypto)

	// ErrInvalidIVSize is returned when the IV is not NonceSize bytes long.
	ErrInvalidIVSize = fmt.Errorf("%w: invalid iv size", ErrCrypto)

	// ErrInvalidCiphertextSize is returned when the ciphertext is empty or
	// not a whole number of blocks.
	ErrInvalidCiphertextSize = fmt.Errorf("%w: invalid ciphertext size", ErrCrypto)

	// ErrInvalidPadding is returned when PKCS#7 padding fails validation
	// after decryption.
	ErrInvalidPadding = fmt.Errorf("%w: invalid padding", ErrCrypto)

	// ErrRandomSource is returned when the random source cannot supply
	// enough bytes.
	ErrRandomSource = fmt.Errorf("%w: random source failure", ErrCrypto)

	// ErrVerifierMismatch is returned by CheckVerifier when the verifier was
	// not produced with the expected key and nonce.
	ErrVerifierMismatch = fmt.Errorf("%w: verifier mismatch", ErrCrypto)

	// ErrDecode is returned when text is not valid standard base64.
	ErrDecode = errors.New("decode error")
)
