// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/practice-drill/backend/internal/domain/performance"
)

// ErrCorruptPerformance is returned together with an empty map when the
// stored blob cannot be decoded.
var ErrCorruptPerformance = errors.New("stored performance data is corrupt")

const schema = `
CREATE TABLE IF NOT EXISTS kv_store (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// SQLiteStore keeps the performance map as a single JSON value under a
// fixed key.
type SQLiteStore struct {
	db  *sql.DB
	key string
}

// Compile-time check: *SQLiteStore satisfies PerformanceStore.
var _ PerformanceStore = (*SQLiteStore)(nil)

func NewSQLite(dbPath string, key string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{
		db:  db,
		key: key,
	}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// LoadPerformance reads the performance map. A missing value yields an
// empty map and no error; an unreadable one yields an empty map and the
// error, so callers can log it and carry on.
func (s *SQLiteStore) LoadPerformance(ctx context.Context) (performance.Map, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE key = ?", s.key).Scan(&value)
	if err == sql.ErrNoRows {
		return performance.Map{}, nil
	}
	if err != nil {
		return performance.Map{}, err
	}

	m, err := performance.Decode([]byte(value))
	if err != nil {
		return performance.Map{}, fmt.Errorf("%w: %v", ErrCorruptPerformance, err)
	}
	return m, nil
}

// SavePerformance overwrites the stored map.
func (s *SQLiteStore) SavePerformance(ctx context.Context, m performance.Map) error {
	data, err := m.Encode()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, s.key, string(data), time.Now().UnixMilli())
	return err
}
