// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-kph-client/internal/adapter"
	"github.com/MKhiriev/go-kph-client/internal/crypto"
	"github.com/MKhiriev/go-kph-client/internal/logger"
	"github.com/MKhiriev/go-kph-client/models"
)

type protocolService struct {
	transport adapter.Transport
	random    crypto.RandomSource

	logger *logger.Logger
}

// NewProtocolService returns a [ProtocolService] that sends requests
// through transport and draws nonces and keys from random.
func NewProtocolService(transport adapter.Transport, random crypto.RandomSource, logger *logger.Logger) ProtocolService {
	return &protocolService{transport: transport, random: random, logger: logger}
}

// TestAssociate implements [ProtocolService].
func (p *protocolService) TestAssociate(ctx context.Context, cfg models.SessionConfig) (bool, error) {
	key, err := sessionKey(cfg)
	if err != nil {
		return false, err
	}

	nonce, verifier, err := p.newNonce(key)
	if err != nil {
		return false, err
	}

	req := models.TestAssociateRequest{
		RequestType: models.RequestTestAssociate,
		ID:          cfg.ID,
		Nonce:       crypto.Encode(nonce),
		Verifier:    verifier,
	}

	var resp models.TestAssociateResponse
	if err = p.roundTrip(ctx, req, &resp); err != nil {
		return false, err
	}

	p.logger.Debug().
		Str("func", "protocolService.TestAssociate").
		Str("client_id", cfg.ID).
		Bool("success", resp.Success).
		Msg("test-associate completed")

	return resp.Success, nil
}

// Associate implements [ProtocolService]. The generated key is sent to the
// service encoded; the same encoded text becomes the Key of the returned
// config, so it is never re-encoded afterwards.
func (p *protocolService) Associate(ctx context.Context) (models.SessionConfig, error) {
	key, err := crypto.NewKey(p.random)
	if err != nil {
		return models.SessionConfig{}, fmt.Errorf("generate key: %w", err)
	}

	nonce, verifier, err := p.newNonce(key)
	if err != nil {
		return models.SessionConfig{}, err
	}

	req := models.AssociateRequest{
		RequestType: models.RequestAssociate,
		Key:         crypto.Encode(key),
		Nonce:       crypto.Encode(nonce),
		Verifier:    verifier,
	}

	var resp models.AssociateResponse
	if err = p.roundTrip(ctx, req, &resp); err != nil {
		return models.SessionConfig{}, err
	}

	if !resp.Success {
		p.logger.Warn().
			Str("func", "protocolService.Associate").
			Str("service_error", resp.Error).
			Msg("association declined")
		if resp.Error != "" {
			return models.SessionConfig{}, fmt.Errorf("%w: %s", ErrAssociationDeclined, resp.Error)
		}
		return models.SessionConfig{}, ErrAssociationDeclined
	}
	if resp.ID == "" {
		return models.SessionConfig{}, fmt.Errorf("%w: associate succeeded without Id", ErrMalformedResponse)
	}

	p.logger.Info().
		Str("func", "protocolService.Associate").
		Str("client_id", resp.ID).
		Msg("associated with KeePassHttp")

	return models.SessionConfig{Key: req.Key, ID: resp.ID}, nil
}

// GetLogins implements [ProtocolService].
func (p *protocolService) GetLogins(ctx context.Context, cfg models.SessionConfig, url string) ([]models.Entry, error) {
	key, err := sessionKey(cfg)
	if err != nil {
		return nil, err
	}

	nonce, verifier, err := p.newNonce(key)
	if err != nil {
		return nil, err
	}

	encryptedURL, err := crypto.EncryptField(url, key, nonce)
	if err != nil {
		return nil, fmt.Errorf("encrypt url: %w", err)
	}

	req := models.GetLoginsRequest{
		RequestType: models.RequestGetLogins,
		ID:          cfg.ID,
		Nonce:       crypto.Encode(nonce),
		Verifier:    verifier,
		URL:         encryptedURL,
	}

	var resp models.GetLoginsResponse
	if err = p.roundTrip(ctx, req, &resp); err != nil {
		return nil, err
	}

	if !resp.Success {
		p.logger.Debug().
			Str("func", "protocolService.GetLogins").
			Str("service_error", resp.Error).
			Msg("get-logins reported failure")
		return nil, &LookupError{Message: resp.Error}
	}

	responseNonce, err := crypto.Decode(resp.Nonce)
	if err != nil {
		return nil, fmt.Errorf("decode response nonce: %w", err)
	}

	entries, err := decryptEntries(resp.Entries, key, responseNonce)
	if err != nil {
		p.logger.Err(err).
			Str("func", "protocolService.GetLogins").
			Int("count", resp.Count).
			Msg("failed to decrypt entries")
		return nil, fmt.Errorf("decrypt entries: %w", err)
	}

	if resp.Count != len(entries) {
		p.logger.Debug().
			Str("func", "protocolService.GetLogins").
			Int("count", resp.Count).
			Int("entries", len(entries)).
			Msg("entry count differs from reported Count")
	}

	return entries, nil
}

// newNonce draws a request nonce and computes its verifier under key. The
// nonce is local to one request and never reused.
func (p *protocolService) newNonce(key []byte) ([]byte, string, error) {
	nonce, err := crypto.NewNonce(p.random)
	if err != nil {
		return nil, "", fmt.Errorf("generate nonce: %w", err)
	}

	verifier, err := crypto.Verifier(key, nonce)
	if err != nil {
		return nil, "", err
	}
	return nonce, verifier, nil
}

// roundTrip sends req once and decodes the JSON reply into resp.
func (p *protocolService) roundTrip(ctx context.Context, req models.Request, resp any) error {
	body, err := p.transport.Send(ctx, req)
	if err != nil {
		return err
	}

	if err = json.Unmarshal(body, resp); err != nil {
		p.logger.Err(err).
			Str("func", "protocolService.roundTrip").
			Str("request_type", req.Type().String()).
			Msg("failed to decode response")
		return fmt.Errorf("%w: %s response: %v", ErrMalformedResponse, req.Type(), err)
	}
	return nil
}

// sessionKey validates cfg and returns the raw key bytes.
func sessionKey(cfg models.SessionConfig) ([]byte, error) {
	if cfg.ID == "" || cfg.Key == "" {
		return nil, fmt.Errorf("%w: missing key or id", ErrInvalidSession)
	}

	key, err := crypto.Decode(cfg.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSession, err)
	}
	if len(key) != crypto.KeySize {
		return nil, fmt.Errorf("%w: key is %d bytes, want %d", ErrInvalidSession, len(key), crypto.KeySize)
	}
	return key, nil
}
