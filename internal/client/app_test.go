package client

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-kph-client/internal/adapter"
	"github.com/MKhiriev/go-kph-client/internal/config"
	"github.com/MKhiriev/go-kph-client/internal/logger"
	"github.com/MKhiriev/go-kph-client/internal/mock"
	"github.com/MKhiriev/go-kph-client/internal/service"
	"github.com/MKhiriev/go-kph-client/internal/store"
	"github.com/MKhiriev/go-kph-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testCfg = models.SessionConfig{Key: "a2V5", ID: "abc123"}

type testApp struct {
	app      *App
	out      *bytes.Buffer
	session  *mock.MockSessionService
	protocol *mock.MockProtocolService
	copied   []string
}

func newTestApp(t *testing.T, settings config.ClientApp) *testApp {
	t.Helper()
	ctrl := gomock.NewController(t)

	ta := &testApp{
		out:      new(bytes.Buffer),
		session:  mock.NewMockSessionService(ctrl),
		protocol: mock.NewMockProtocolService(ctrl),
	}

	services := &service.ClientServices{ProtocolService: ta.protocol, SessionService: ta.session}
	a, err := NewApp(services, settings, ta.out, logger.Nop())
	require.NoError(t, err)

	a.copyToClipboard = func(s string) error {
		ta.copied = append(ta.copied, s)
		return nil
	}
	ta.app = a
	return ta
}

func TestNewApp_NilServices(t *testing.T) {
	_, err := NewApp(nil, config.ClientApp{}, new(bytes.Buffer), logger.Nop())
	require.Error(t, err)

	_, err = NewApp(&service.ClientServices{}, config.ClientApp{}, new(bytes.Buffer), logger.Nop())
	require.Error(t, err)
}

func TestApp_Run_Usage(t *testing.T) {
	ta := newTestApp(t, config.ClientApp{})
	ctx := context.Background()

	require.ErrorIs(t, ta.app.Run(ctx, nil), ErrUsage)
	require.ErrorIs(t, ta.app.Run(ctx, []string{"sync"}), ErrUsage)
	require.ErrorIs(t, ta.app.Run(ctx, []string{"get"}), ErrUsage)
	require.ErrorIs(t, ta.app.Run(ctx, []string{"get", "a", "b"}), ErrUsage)
}

func TestApp_Associate(t *testing.T) {
	ta := newTestApp(t, config.ClientApp{})
	ctx := context.Background()

	ta.session.EXPECT().Associate(ctx).Return(testCfg, nil)

	require.NoError(t, ta.app.Run(ctx, []string{"associate"}))
	assert.Contains(t, ta.out.String(), `"abc123"`)
}

func TestApp_Associate_Declined(t *testing.T) {
	ta := newTestApp(t, config.ClientApp{})
	ctx := context.Background()

	ta.session.EXPECT().Associate(ctx).Return(models.SessionConfig{}, service.ErrAssociationDeclined)

	require.ErrorIs(t, ta.app.Run(ctx, []string{"associate"}), service.ErrAssociationDeclined)
	assert.Empty(t, ta.out.String())
}

func TestApp_Test(t *testing.T) {
	tests := []struct {
		name    string
		ok      bool
		err     error
		wantErr error
		wantOut string
	}{
		{name: "valid", ok: true, wantOut: "association is valid"},
		{name: "rejected", ok: false, wantOut: "rejected"},
		{name: "not associated", err: store.ErrSessionNotFound, wantErr: ErrNotAssociated},
		{name: "unreachable", err: adapter.ErrServiceUnreachable, wantErr: adapter.ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, config.ClientApp{})
			ctx := context.Background()

			ta.session.EXPECT().Test(ctx).Return(tt.ok, tt.err)

			err := ta.app.Run(ctx, []string{"test"})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, ta.out.String(), tt.wantOut)
		})
	}
}

func TestApp_Get_MasksPasswords(t *testing.T) {
	ta := newTestApp(t, config.ClientApp{})
	ctx := context.Background()

	entries := []models.Entry{{Login: "alice", Name: "example.com", Password: "p@ss", UUID: "u-1"}}
	gomock.InOrder(
		ta.session.EXPECT().Ensure(ctx).Return(testCfg, nil),
		ta.protocol.EXPECT().GetLogins(ctx, testCfg, "https://example.com").Return(entries, nil),
	)

	require.NoError(t, ta.app.Run(ctx, []string{"get", "https://example.com"}))

	out := ta.out.String()
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "example.com")
	assert.Contains(t, out, "u-1")
	assert.Contains(t, out, passwordMask)
	assert.NotContains(t, out, "p@ss")
	assert.Empty(t, ta.copied)
}

func TestApp_Get_ShowAndCopy(t *testing.T) {
	ta := newTestApp(t, config.ClientApp{ShowPasswords: true, CopyPassword: true})
	ctx := context.Background()

	entries := []models.Entry{
		{Login: "alice", Name: "first", Password: "p@ss", UUID: "u-1"},
		{Login: "bob", Name: "second", Password: "hunter2", UUID: "u-2"},
	}
	ta.session.EXPECT().Ensure(ctx).Return(testCfg, nil)
	ta.protocol.EXPECT().GetLogins(ctx, testCfg, "example.com").Return(entries, nil)

	require.NoError(t, ta.app.Run(ctx, []string{"get", "example.com"}))

	out := ta.out.String()
	assert.Contains(t, out, "p@ss")
	assert.Contains(t, out, "hunter2")
	assert.Contains(t, out, "copied to clipboard")
	assert.Equal(t, []string{"p@ss"}, ta.copied)
}

func TestApp_Get_CopyFails(t *testing.T) {
	ta := newTestApp(t, config.ClientApp{CopyPassword: true})
	ctx := context.Background()

	clipErr := errors.New("no clipboard utilities available")
	ta.app.copyToClipboard = func(string) error { return clipErr }

	ta.session.EXPECT().Ensure(ctx).Return(testCfg, nil)
	ta.protocol.EXPECT().GetLogins(ctx, testCfg, "example.com").
		Return([]models.Entry{{Name: "n", Password: "p"}}, nil)

	require.ErrorIs(t, ta.app.Run(ctx, []string{"get", "example.com"}), clipErr)
}

func TestApp_Get_NoEntries(t *testing.T) {
	ta := newTestApp(t, config.ClientApp{CopyPassword: true})
	ctx := context.Background()

	ta.session.EXPECT().Ensure(ctx).Return(testCfg, nil)
	ta.protocol.EXPECT().GetLogins(ctx, testCfg, "example.com").Return([]models.Entry{}, nil)

	require.NoError(t, ta.app.Run(ctx, []string{"get", "example.com"}))
	assert.Contains(t, ta.out.String(), "no entries found for example.com")
	assert.Empty(t, ta.copied)
}

func TestApp_Get_Errors(t *testing.T) {
	t.Run("ensure fails", func(t *testing.T) {
		ta := newTestApp(t, config.ClientApp{})
		ctx := context.Background()

		ta.session.EXPECT().Ensure(ctx).Return(models.SessionConfig{}, adapter.ErrServiceUnreachable)

		require.ErrorIs(t, ta.app.Run(ctx, []string{"get", "example.com"}), adapter.ErrServiceUnreachable)
	})

	t.Run("lookup fails", func(t *testing.T) {
		ta := newTestApp(t, config.ClientApp{})
		ctx := context.Background()

		ta.session.EXPECT().Ensure(ctx).Return(testCfg, nil)
		ta.protocol.EXPECT().GetLogins(ctx, testCfg, "example.com").Return(nil, &service.LookupError{Message: "locked"})

		err := ta.app.Run(ctx, []string{"get", "example.com"})
		var lookupErr *service.LookupError
		require.True(t, errors.As(err, &lookupErr))
		assert.Equal(t, "locked", lookupErr.Message)
	})
}

func TestApp_Forget(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
		wantOut string
	}{
		{name: "removed", wantOut: "association removed"},
		{name: "nothing stored", err: store.ErrSessionNotFound, wantOut: "no association stored"},
		{name: "db error", err: errors.New("disk I/O error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, config.ClientApp{})
			ctx := context.Background()

			ta.session.EXPECT().Forget(ctx).Return(tt.err)

			err := ta.app.Run(ctx, []string{"forget"})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, ta.out.String(), tt.wantOut)
		})
	}
}

func TestRenderEntry(t *testing.T) {
	e := models.Entry{Login: "alice", Name: "example.com", Password: "p@ss", UUID: "u-1"}

	masked := renderEntry(e, false)
	assert.Contains(t, masked, passwordMask)
	assert.NotContains(t, masked, "p@ss")
	assert.Equal(t, 3, countSeparators(masked))

	shown := renderEntry(e, true)
	assert.Contains(t, shown, "p@ss")
	assert.NotContains(t, shown, passwordMask)
}

func countSeparators(s string) int {
	return bytes.Count([]byte(s), []byte(fieldSeparator))
}
