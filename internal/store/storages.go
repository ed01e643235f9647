package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rest-facade/internal/config"
	"github.com/MKhiriev/go-rest-facade/internal/logger"
)

// NewKeyValueStore initialises the durable key-value backend selected by
// cfg.Backend. For sqlite it opens the database file and runs migrations.
func NewKeyValueStore(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (KeyValueStore, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating key-value store...")

	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendFile:
		return NewFileStore(cfg.Dir)
	case config.BackendKeyring:
		return NewKeyringStore(cfg.KeyringService)
	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLiteStore(db, log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
