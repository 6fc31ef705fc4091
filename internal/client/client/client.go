package client

import "context"

// KeyClient is the remote API surface of the key server, as seen by the
// client. Existence checks return a boolean only; the only key material
// crossing this interface is the passphrase-wrapped blob.
type KeyClient interface {
	Close() error
	ClearSession()
	Register(ctx context.Context, username string, salt []byte, verifier []byte) error
	GetSalt(ctx context.Context, username string) ([]byte, error)
	Login(ctx context.Context, username string, verifier []byte) (string, error)
	Ping(ctx context.Context) error
	KeyExists(ctx context.Context, userID string) (bool, error)
	LegacyKeyExists(ctx context.Context, userID string) (bool, error)
	RegisterKey(ctx context.Context, userID string, wrappedKey []byte, kdfSalt []byte) error
	GetWrappedKey(ctx context.Context, userID string) ([]byte, []byte, error)
}
