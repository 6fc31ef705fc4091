// Package amkkeys declares the server-side repository contract for account
// master key records.
package amkkeys

import (
	"context"

	"github.com/onronder/durunotes-keys/internal/server/models"
)

// Repository defines operations over AMK records.
type Repository interface {
	// Create stores a new key record. A record already present for the same
	// user and scheme yields common.ErrorAlreadyExists.
	Create(ctx context.Context, key *models.AmkKey) (*models.AmkKey, error)

	// Exists reports whether a record of the given scheme is registered for
	// the user. It must not read the wrapped material.
	Exists(ctx context.Context, userID string, scheme models.KeyScheme) (bool, error)

	// Get returns the record of the given scheme for the user, or
	// common.ErrorNotFound.
	Get(ctx context.Context, userID string, scheme models.KeyScheme) (*models.AmkKey, error)
}
