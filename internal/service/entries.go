// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-kph-client/internal/crypto"
	"github.com/MKhiriev/go-kph-client/models"
)

// DecryptEntry decrypts the four fields of raw under (key, responseNonce).
//
// Every field is decoded and decrypted independently. Plaintext bytes that
// are not valid UTF-8 are replaced with U+FFFD rather than rejected. If any
// field is malformed the whole entry fails and a zero Entry is returned
// with an error wrapping [crypto.ErrCrypto] or [crypto.ErrDecode].
func DecryptEntry(raw models.RawEntry, key, responseNonce []byte) (models.Entry, error) {
	var entry models.Entry
	fields := []struct {
		name  string
		value string
		dst   *string
	}{
		{"Login", raw.Login, &entry.Login},
		{"Name", raw.Name, &entry.Name},
		{"Password", raw.Password, &entry.Password},
		{"Uuid", raw.UUID, &entry.UUID},
	}

	for _, f := range fields {
		plaintext, err := crypto.DecryptField(f.value, key, responseNonce)
		if err != nil {
			return models.Entry{}, fmt.Errorf("decrypt %s: %w", f.name, err)
		}
		*f.dst = strings.ToValidUTF8(string(plaintext), "\uFFFD")
	}

	return entry, nil
}

// decryptEntries decrypts entries in order; the first failure aborts the
// whole batch.
func decryptEntries(raw []models.RawEntry, key, responseNonce []byte) ([]models.Entry, error) {
	entries := make([]models.Entry, 0, len(raw))
	for i, r := range raw {
		entry, err := DecryptEntry(r, key, responseNonce)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
