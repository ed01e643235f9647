package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-rest-facade/internal/logger"
)

const kvTable = "kv"

// SQLiteStore is a [KeyValueStore] backed by the kv table of a sqlite
// database.
type SQLiteStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

var _ KeyValueStore = (*SQLiteStore)(nil)

// NewSQLiteStore returns a store over an already migrated database.
func NewSQLiteStore(db *DB, log *logger.Logger) *SQLiteStore {
	return &SQLiteStore{db: db, logger: log, now: time.Now}
}

// Get implements [KeyValueStore].
func (s *SQLiteStore) Get(key string) ([]byte, error) {
	query, args, err := sq.Select("value").From(kvTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = s.db.QueryRow(query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchKey, key)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "SQLiteStore.Get").Str("key", key).Msg("failed to read key")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

// Set implements [KeyValueStore].
func (s *SQLiteStore) Set(key string, value []byte) error {
	query, args, err := sq.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, s.now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.Exec(query, args...); err != nil {
		s.logger.Err(err).Str("func", "SQLiteStore.Set").Str("key", key).Msg("failed to upsert key")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Delete implements [KeyValueStore].
func (s *SQLiteStore) Delete(key string) error {
	query, args, err := sq.Delete(kvTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.Exec(query, args...); err != nil {
		s.logger.Err(err).Str("func", "SQLiteStore.Delete").Str("key", key).Msg("failed to delete key")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
