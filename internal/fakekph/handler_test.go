package fakekph

import (
	"context"
	"crypto/rand"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-kph-client/internal/adapter"
	"github.com/MKhiriev/go-kph-client/internal/config"
	"github.com/MKhiriev/go-kph-client/internal/crypto"
	"github.com/MKhiriev/go-kph-client/internal/logger"
	"github.com/MKhiriev/go-kph-client/internal/service"
	"github.com/MKhiriev/go-kph-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, options Options) (*Service, service.ProtocolService) {
	t.Helper()

	svc := NewService(rand.Reader, options)
	srv := httptest.NewServer(NewHandler(svc, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	transport, err := adapter.NewHTTPTransport(config.ClientAdapter{HTTPAddress: srv.URL}, logger.Nop())
	require.NoError(t, err)

	return svc, service.NewProtocolService(transport, crypto.NewRandomSource(), logger.Nop())
}

func TestHandler_FullExchange(t *testing.T) {
	ctx := context.Background()
	fake, protocol := newTestServer(t, Options{})

	want := []models.Entry{
		{Login: "alice", Name: "example.com", Password: "p@ss", UUID: "u-1"},
		{Login: "bob", Name: "example.com", Password: "пароль", UUID: "u-2"},
	}
	fake.AddEntries("https://example.com", want...)

	cfg, err := protocol.Associate(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.ID)

	ok, err := protocol.TestAssociate(ctx, cfg)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := protocol.GetLogins(ctx, cfg, "https://example.com/login")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestHandler_RevokedAssociation(t *testing.T) {
	ctx := context.Background()
	fake, protocol := newTestServer(t, Options{})

	cfg, err := protocol.Associate(ctx)
	require.NoError(t, err)

	fake.Revoke(cfg.ID)

	ok, err := protocol.TestAssociate(ctx, cfg)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHandler_Declined(t *testing.T) {
	_, protocol := newTestServer(t, Options{DeclineAssociate: true})

	_, err := protocol.Associate(context.Background())
	require.ErrorIs(t, err, service.ErrAssociationDeclined)
}

func TestHandler_Locked(t *testing.T) {
	ctx := context.Background()
	_, protocol := newTestServer(t, Options{LockedMessage: "database is locked"})

	cfg, err := protocol.Associate(ctx)
	require.NoError(t, err)

	_, err = protocol.GetLogins(ctx, cfg, "https://example.com")
	var lookupErr *service.LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, "database is locked", lookupErr.Message)
}

func TestHandler_BadRequests(t *testing.T) {
	srv := httptest.NewServer(NewHandler(NewService(rand.Reader, Options{}), logger.Nop()).Init())
	defer srv.Close()

	tests := []struct {
		name   string
		method string
		body   string
		status int
	}{
		{name: "invalid json", method: http.MethodPost, body: `{`, status: http.StatusBadRequest},
		{name: "unknown request type", method: http.MethodPost, body: `{"RequestType":"set-login"}`, status: http.StatusBadRequest},
		{name: "wrong method", method: http.MethodGet, status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, srv.URL+"/", strings.NewReader(tt.body))
			require.NoError(t, err)

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.NotEmpty(t, resp.Header.Get(traceIDHeader))
		})
	}
}

func TestHandler_TraceIDIsEchoed(t *testing.T) {
	srv := httptest.NewServer(NewHandler(NewService(rand.Reader, Options{}), logger.Nop()).Init())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/", strings.NewReader(`{"RequestType":"test-associate"}`))
	require.NoError(t, err)
	req.Header.Set(traceIDHeader, "trace-123")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "trace-123", resp.Header.Get(traceIDHeader))
}
