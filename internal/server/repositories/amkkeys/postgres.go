package amkkeys

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/onronder/durunotes-keys/internal/common"
	"github.com/onronder/durunotes-keys/internal/dbx"
	"github.com/onronder/durunotes-keys/internal/server/models"
)

// PostgresRepository implements AMK record persistence over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new AMK record. A duplicate (user_id, scheme) pair yields
// common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, key *models.AmkKey) (*models.AmkKey, error) {
	query := `
		INSERT INTO amk_keys (user_id, scheme, wrapped_key, kdf_salt)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		key.UserID, string(key.Scheme), key.WrappedKey, key.KdfSalt).Scan(&key.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return key, nil
}

// Exists checks for a record without touching the wrapped material.
func (r *PostgresRepository) Exists(ctx context.Context, userID string, scheme models.KeyScheme) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM amk_keys
			WHERE user_id = $1 AND scheme = $2
		)
	`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, string(scheme)).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

// Get returns the full record, wrapped material included.
// If not found, it returns common.ErrorNotFound.
func (r *PostgresRepository) Get(ctx context.Context, userID string, scheme models.KeyScheme) (*models.AmkKey, error) {
	query := `
		SELECT id, wrapped_key, kdf_salt
		FROM amk_keys
		WHERE user_id = $1 AND scheme = $2
	`
	key := &models.AmkKey{UserID: userID, Scheme: scheme}
	err := r.db.QueryRowContext(ctx, query, userID, string(scheme)).Scan(&key.ID, &key.WrappedKey, &key.KdfSalt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return key, nil
}
