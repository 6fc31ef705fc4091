package keystore

import (
	"context"
	"database/sql"
	"fmt"
)

const amkName = "amk"

// SQLiteStore is the cross-device tier: a single-row name/value table in the
// client database, so the AMK lives next to the synced content it protects.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// InitDatabase opens (creating if needed) the client sqlite database and
// ensures the keystore schema exists.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS keystore (
			name  TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to init keystore schema: %w", err)
	}

	return db, nil
}

func (s *SQLiteStore) Get(ctx context.Context) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM keystore WHERE name = ?`, amkName).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get key[%s]: %w", amkName, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO keystore (name, value) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value
	`, amkName, key)
	if err != nil {
		return fmt.Errorf("failed to set key[%s]: %w", amkName, err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM keystore WHERE name = ?`, amkName)
	if err != nil {
		return fmt.Errorf("failed to clear key[%s]: %w", amkName, err)
	}
	return nil
}

func (s *SQLiteStore) Tier() Tier { return TierCrossDevice }
