package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-kph-client/internal/config"
	"github.com/MKhiriev/go-kph-client/internal/logger"
	"github.com/MKhiriev/go-kph-client/models"
)

// TestClientStorages_SQLiteRoundTrip runs the repository against a real
// SQLite file to check the schema and the upsert clause.
func TestClientStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "kph.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	info, err := os.Stat(dsn)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	repo := storages.SessionRepository

	_, err = repo.Load(ctx, testEndpoint)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	first := models.SessionConfig{Key: "AAECAwQFBgcICQoLDA0ODxAREhMUFRYXGBkaGxwdHh8=", ID: "first"}
	require.NoError(t, repo.Save(ctx, testEndpoint, first))

	got, err := repo.Load(ctx, testEndpoint)
	require.NoError(t, err)
	assert.Equal(t, first, got.Config)
	assert.False(t, got.CreatedAt.IsZero())

	second := models.SessionConfig{Key: "/////////////////////////////////////////w==", ID: "second"}
	require.NoError(t, repo.Save(ctx, testEndpoint, second))

	got, err = repo.Load(ctx, testEndpoint)
	require.NoError(t, err)
	assert.Equal(t, second, got.Config, "key text must round-trip byte for byte")

	_, err = repo.Load(ctx, "http://other:19455")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, repo.Delete(ctx, testEndpoint))
	_, err = repo.Load(ctx, testEndpoint)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestClientStorages_CloseNil(t *testing.T) {
	assert.NoError(t, (&ClientStorages{}).Close())
}
