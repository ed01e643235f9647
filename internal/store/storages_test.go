package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"github.com/MKhiriev/go-rest-facade/internal/config"
	"github.com/MKhiriev/go-rest-facade/internal/logger"
)

func TestNewKeyValueStore(t *testing.T) {
	keyring.MockInit()
	dir := t.TempDir()

	tests := []struct {
		name string
		cfg  config.ClientStorage
		want any
	}{
		{name: "memory", cfg: config.ClientStorage{Backend: config.BackendMemory}, want: &MemoryStore{}},
		{name: "file", cfg: config.ClientStorage{Backend: config.BackendFile, Dir: filepath.Join(dir, "files")}, want: &FileStore{}},
		{name: "keyring", cfg: config.ClientStorage{Backend: config.BackendKeyring, KeyringService: "test"}, want: &KeyringStore{}},
		{name: "sqlite", cfg: config.ClientStorage{Backend: config.BackendSQLite, DSN: filepath.Join(dir, "db", "kv.db")}, want: &SQLiteStore{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv, err := NewKeyValueStore(context.Background(), tt.cfg, logger.Nop())
			require.NoError(t, err)
			assert.IsType(t, tt.want, kv)
			exerciseKeyValueStore(t, kv)
		})
	}
}

func TestNewKeyValueStore_UnknownBackend(t *testing.T) {
	kv, err := NewKeyValueStore(context.Background(), config.ClientStorage{Backend: "etcd"}, logger.Nop())
	require.ErrorIs(t, err, ErrUnknownBackend)
	assert.Nil(t, kv)
}

func TestNewKeyValueStore_SQLiteReopen(t *testing.T) {
	cfg := config.ClientStorage{Backend: config.BackendSQLite, DSN: filepath.Join(t.TempDir(), "kv.db")}

	first, err := NewKeyValueStore(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Set("API_TOKEN", []byte("persisted")))

	second, err := NewKeyValueStore(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	got, err := second.Get("API_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "persisted", string(got))
}
