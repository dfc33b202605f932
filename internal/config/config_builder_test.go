package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Nil(t, b.defaults)
	assert.Nil(t, b.json)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_Precedence verifies defaults < JSON < env < flags.
func TestBuild_Precedence(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.json = &StructuredConfig{
		Adapter: Adapter{HTTPAddress: "http://json:1", RequestTimeout: time.Minute},
		Storage: Storage{DB: DB{DSN: "/json.db"}},
	}
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://env:2"}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "http://flag:3"}, Args: []string{"test"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "http://flag:3", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, []string{"test"}, cfg.Args)
}

func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, defaultHTTPAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.NotEmpty(t, cfg.Storage.DB.DSN)
}

func TestBuild_NegativeTimeoutRejected(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_LoadsPathFromLastSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"http_address": "http://from-json:19455"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/does/not/exist.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.NotNil(t, b.json)
	assert.Equal(t, "http://from-json:19455", b.json.Adapter.HTTPAddress)
}

func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Nil(t, b.json)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_AppendsConfig(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "http://env:19455")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://env:19455", b.configs[0].Adapter.HTTPAddress)
}

// ── ClientConfig ──────────────────────────────────────────────────────────────

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return newClientConfig(&StructuredConfig{
			Adapter: Adapter{HTTPAddress: "http://localhost:19455", RequestTimeout: time.Second},
			Storage: Storage{DB: DB{DSN: "/tmp/kph.db"}},
		})
	}

	assert.NoError(t, valid().validate())

	cfg := valid()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Storage.DB.DSN = ":memory:"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Adapter.HTTPAddress = "  "
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		App:     App{ShowPasswords: true, CopyPassword: true},
		Adapter: Adapter{HTTPAddress: "http://localhost:19455", RequestTimeout: 3 * time.Second},
		Storage: Storage{DB: DB{DSN: "/tmp/kph.db"}},
		Args:    []string{"get", "https://example.com"},
	})

	assert.True(t, cfg.App.ShowPasswords)
	assert.True(t, cfg.App.CopyPassword)
	assert.Equal(t, "http://localhost:19455", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/kph.db", cfg.Storage.DB.DSN)
	assert.Equal(t, []string{"get", "https://example.com"}, cfg.Args)
}
