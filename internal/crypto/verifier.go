// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/subtle"
	"fmt"
)

// Verifier proves possession of key for a single request. It is the
// base64 text of the nonce, encrypted under key with the nonce itself as
// the IV, then base64 encoded:
//
//	Verifier = base64(AES-CBC(key, iv=nonce, base64(nonce)))
//
// The result depends only on key and nonce. It does not cover the rest of
// the request.
func Verifier(key, nonce []byte) (string, error) {
	ciphertext, err := Encrypt([]byte(Encode(nonce)), key, nonce)
	if err != nil {
		return "", fmt.Errorf("build verifier: %w", err)
	}
	return Encode(ciphertext), nil
}

// EncryptField encrypts a text field under (key, iv) and returns it in
// wire form.
func EncryptField(plaintext string, key, iv []byte) (string, error) {
	ciphertext, err := Encrypt([]byte(plaintext), key, iv)
	if err != nil {
		return "", err
	}
	return Encode(ciphertext), nil
}

// DecryptField decodes and decrypts a wire-form field under (key, iv).
// The plaintext bytes are returned as is; callers decide how to interpret
// them as text.
func DecryptField(field string, key, iv []byte) ([]byte, error) {
	ciphertext, err := Decode(field)
	if err != nil {
		return nil, err
	}
	return Decrypt(ciphertext, key, iv)
}

// CheckVerifier is the receiving side of [Verifier]: it decodes the
// nonce, recomputes the verifier and compares in constant time.
func CheckVerifier(key []byte, nonceB64, verifier string) error {
	nonce, err := Decode(nonceB64)
	if err != nil {
		return fmt.Errorf("decode nonce: %w", err)
	}

	want, err := Verifier(key, nonce)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(want), []byte(verifier)) != 1 {
		return ErrVerifierMismatch
	}
	return nil
}
