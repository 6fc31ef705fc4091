package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/onronder/durunotes-keys/internal/common"
	"github.com/onronder/durunotes-keys/internal/server/models"
	"github.com/onronder/durunotes-keys/internal/server/repositories/repomanager"
)

// KeyService manages server-side AMK records: registration of the wrapped
// key, existence checks for the gate, and retrieval for unlock. The
// plaintext AMK never appears here.
type KeyService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewKeyService constructs a KeyService over the given database handle.
func NewKeyService(db *sql.DB, m repomanager.RepositoryManager) *KeyService {
	return &KeyService{db: db, repomanager: m}
}

// RegisterKey stores a wrapped AMK under the current scheme. Registering a
// second key for the same user yields common.ErrorAlreadyExists; the record
// is immutable once written.
func (s *KeyService) RegisterKey(ctx context.Context, userID string, wrappedKey, kdfSalt []byte) (*models.AmkKey, error) {
	if len(wrappedKey) == 0 || len(kdfSalt) == 0 {
		return nil, fmt.Errorf("empty key material: %w", common.ErrorInternal)
	}

	key := &models.AmkKey{
		UserID:     userID,
		Scheme:     models.KeySchemeCurrent,
		WrappedKey: wrappedKey,
		KdfSalt:    kdfSalt,
	}

	repo := s.repomanager.AmkKeys(s.db)
	k, err := repo.Create(ctx, key)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating key record: %v", err)
	}
	return k, nil
}

// Exists reports whether a record of the given scheme is registered for the
// user. The wrapped material is never read.
func (s *KeyService) Exists(ctx context.Context, userID string, scheme models.KeyScheme) (bool, error) {
	repo := s.repomanager.AmkKeys(s.db)
	exists, err := repo.Exists(ctx, userID, scheme)
	if err != nil {
		return false, common.ErrorInternal
	}
	return exists, nil
}

// GetWrappedKey returns the user's wrapped AMK and KDF salt for unlock.
// The current scheme is preferred; a legacy record is served only if it
// actually carries wrapped material.
func (s *KeyService) GetWrappedKey(ctx context.Context, userID string) (*models.AmkKey, error) {
	repo := s.repomanager.AmkKeys(s.db)

	key, err := repo.Get(ctx, userID, models.KeySchemeCurrent)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	key, err = repo.Get(ctx, userID, models.KeySchemeLegacy)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	if len(key.WrappedKey) == 0 {
		// imported existence-only record, nothing to unwrap
		return nil, common.ErrorNotFound
	}
	return key, nil
}
