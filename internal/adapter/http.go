// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-kph-client/internal/config"
	"github.com/MKhiriev/go-kph-client/internal/logger"
	"github.com/MKhiriev/go-kph-client/models"
)

// DefaultEndpoint is where KeePassHTTP listens unless configured otherwise.
const DefaultEndpoint = "http://localhost:19455"

type httpTransport struct {
	client   *resty.Client
	endpoint string

	logger *logger.Logger
}

// NewHTTPTransport constructs the resty implementation of [Transport]. It
// normalises and validates adapterCfg.HTTPAddress (an empty address falls
// back to [DefaultEndpoint]) and applies adapterCfg.RequestTimeout when it
// is positive. Automatic retries stay disabled: one call, one attempt.
//
// Returns an error if the address cannot be parsed as a valid URL.
func NewHTTPTransport(adapterCfg config.ClientAdapter, logger *logger.Logger) (Transport, error) {
	address := adapterCfg.HTTPAddress
	if strings.TrimSpace(address) == "" {
		address = DefaultEndpoint
	}

	endpoint, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(endpoint).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	return &httpTransport{client: client, endpoint: endpoint, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Endpoint implements [Transport].
func (h *httpTransport) Endpoint() string {
	return h.endpoint
}

// Send implements [Transport]. It POSTs req to the service root. Request
// bodies carry key material during association, so only the request type
// and the response status are logged.
func (h *httpTransport) Send(ctx context.Context, req models.Request) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/")
	if err != nil {
		h.logger.Err(err).
			Str("func", "httpTransport.Send").
			Str("request_type", req.Type().String()).
			Str("endpoint", h.endpoint).
			Msg("request to KeePassHttp failed")
		return nil, fmt.Errorf("%w: %s request: %v", ErrServiceUnreachable, req.Type(), err)
	}

	h.logger.Debug().
		Str("func", "httpTransport.Send").
		Str("request_type", req.Type().String()).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("KeePassHttp responded")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
