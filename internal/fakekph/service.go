// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fakekph

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-kph-client/internal/crypto"
	"github.com/MKhiriev/go-kph-client/internal/utils"
	"github.com/MKhiriev/go-kph-client/models"
)

// Version is reported in every response, like the KeePass plugin does.
const Version = "1.8.4.2"

// Options controls how the fake service answers.
type Options struct {
	// DeclineAssociate makes every associate request fail, as if the user
	// had cancelled the KeePass prompt.
	DeclineAssociate bool

	// LockedMessage, when non-empty, makes get-logins fail with this text.
	LockedMessage string
}

// Service holds the associations and entries of the fake KeePassHTTP
// service. It is safe for concurrent use.
type Service struct {
	mu      sync.RWMutex
	clients map[string][]byte
	entries map[string][]models.Entry

	random  crypto.RandomSource
	ids     *utils.UUIDGenerator
	options Options
}

// NewService returns an empty Service drawing response nonces from random.
func NewService(random crypto.RandomSource, options Options) *Service {
	return &Service{
		clients: make(map[string][]byte),
		entries: make(map[string][]models.Entry),
		random:  random,
		ids:     utils.NewUUIDGenerator(),
		options: options,
	}
}

// AddEntries registers entries to be returned for lookups matching rawURL.
func (s *Service) AddEntries(rawURL string, entries ...models.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	host := hostOf(rawURL)
	s.entries[host] = append(s.entries[host], entries...)
}

// Register adds an association directly, bypassing the associate exchange.
func (s *Service) Register(id string, key []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[id] = key
}

// Revoke removes the association with id.
func (s *Service) Revoke(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, id)
}

// Associations returns the number of known clients.
func (s *Service) Associations() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// associate registers the offered key under a new Id once the verifier
// proves the client holds it.
func (s *Service) associate(req request) models.AssociateResponse {
	resp := models.AssociateResponse{Response: s.envelope(models.RequestAssociate)}

	if s.options.DeclineAssociate {
		return resp
	}

	key, err := crypto.Decode(req.Key)
	if err != nil || len(key) != crypto.KeySize {
		resp.Error = "invalid key"
		return resp
	}
	if err = crypto.CheckVerifier(key, req.Nonce, req.Verifier); err != nil {
		resp.Error = errVerificationFailed.Error()
		return resp
	}

	id := s.ids.Generate()
	s.Register(id, key)

	resp.Success = true
	resp.ID = id
	return resp
}

// testAssociate reports whether the client is known and its verifier
// matches.
func (s *Service) testAssociate(req request) models.TestAssociateResponse {
	resp := models.TestAssociateResponse{Response: s.envelope(models.RequestTestAssociate)}

	if _, err := s.verify(req); err != nil {
		return resp
	}

	resp.Success = true
	return resp
}

// getLogins decrypts the requested URL and returns the matching entries
// encrypted under a fresh response nonce.
func (s *Service) getLogins(req request) (models.GetLoginsResponse, error) {
	resp := models.GetLoginsResponse{Response: s.envelope(models.RequestGetLogins), Entries: []models.RawEntry{}}

	key, err := s.verify(req)
	if err != nil {
		resp.Error = err.Error()
		return resp, nil
	}
	if s.options.LockedMessage != "" {
		resp.Error = s.options.LockedMessage
		return resp, nil
	}

	requestNonce, err := crypto.Decode(req.Nonce)
	if err != nil {
		return resp, err
	}
	lookupURL, err := crypto.DecryptField(req.URL, key, requestNonce)
	if err != nil {
		resp.Error = "cannot decrypt url"
		return resp, nil
	}

	responseNonce, err := crypto.NewNonce(s.random)
	if err != nil {
		return resp, fmt.Errorf("response nonce: %w", err)
	}
	verifier, err := crypto.Verifier(key, responseNonce)
	if err != nil {
		return resp, err
	}

	s.mu.RLock()
	matches := append([]models.Entry(nil), s.entries[hostOf(string(lookupURL))]...)
	s.mu.RUnlock()

	for _, e := range matches {
		raw, err := encryptEntry(e, key, responseNonce)
		if err != nil {
			return resp, err
		}
		resp.Entries = append(resp.Entries, raw)
	}

	resp.Success = true
	resp.Count = len(resp.Entries)
	resp.Nonce = crypto.Encode(responseNonce)
	resp.Verifier = verifier
	return resp, nil
}

// verify looks up the client key and checks the request verifier.
func (s *Service) verify(req request) ([]byte, error) {
	s.mu.RLock()
	key, ok := s.clients[req.ID]
	s.mu.RUnlock()
	if !ok {
		return nil, errUnknownClient
	}

	if err := crypto.CheckVerifier(key, req.Nonce, req.Verifier); err != nil {
		return nil, errVerificationFailed
	}
	return key, nil
}

func (s *Service) envelope(t models.RequestType) models.Response {
	return models.Response{RequestType: t.String(), Version: Version}
}

func encryptEntry(e models.Entry, key, nonce []byte) (models.RawEntry, error) {
	var raw models.RawEntry
	fields := []struct {
		plain string
		dst   *string
	}{
		{e.Login, &raw.Login},
		{e.Name, &raw.Name},
		{e.Password, &raw.Password},
		{e.UUID, &raw.UUID},
	}

	for _, f := range fields {
		enc, err := crypto.EncryptField(f.plain, key, nonce)
		if err != nil {
			return models.RawEntry{}, err
		}
		*f.dst = enc
	}
	return raw, nil
}

// hostOf reduces a URL to its lower-cased host so that lookups for any page
// of a site find the site's entries. Strings that do not parse as a URL
// with a host are used as is.
func hostOf(rawURL string) string {
	s := strings.TrimSpace(rawURL)
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil || u.Hostname() == "" {
		return strings.ToLower(strings.TrimSpace(rawURL))
	}
	return strings.ToLower(u.Hostname())
}
