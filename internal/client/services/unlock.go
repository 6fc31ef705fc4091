package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/onronder/durunotes-keys/internal/client/client"
	"github.com/onronder/durunotes-keys/internal/client/keystore"
	"github.com/onronder/durunotes-keys/internal/common"
	"github.com/onronder/durunotes-keys/internal/cryptox"
)

// ErrWrongPassphrase is returned by Unlock when the wrapped key cannot be
// opened with the key derived from the supplied passphrase.
var ErrWrongPassphrase = errors.New("wrong passphrase")

// UnlockService recovers the AMK on a device that has none locally: fetch
// the wrapped blob and KDF salt from the server, unwrap with the
// passphrase-derived KEK, and persist the result in the primary tier.
type UnlockService interface {
	Unlock(ctx context.Context, userID string, passphrase []byte) error
}

type unlockService struct {
	client  client.KeyClient
	primary keystore.Store
}

// NewUnlockService constructs an UnlockService writing to the given primary
// key tier.
func NewUnlockService(client client.KeyClient, primary keystore.Store) UnlockService {
	return &unlockService{client: client, primary: primary}
}

func (u *unlockService) Unlock(ctx context.Context, userID string, passphrase []byte) error {
	wrapped, kdfSalt, err := u.client.GetWrappedKey(ctx, userID)
	if err != nil {
		return fmt.Errorf("fetching wrapped key: %w", err)
	}

	kek := cryptox.DeriveKek(passphrase, kdfSalt)
	defer common.WipeByteArray(kek)

	amk, err := cryptox.UnwrapKey(wrapped, kek)
	if err != nil {
		if errors.Is(err, cryptox.ErrDecrypt) {
			return ErrWrongPassphrase
		}
		return fmt.Errorf("unwrapping key: %w", err)
	}
	defer common.WipeByteArray(amk)

	if err := u.primary.Set(ctx, amk); err != nil {
		return fmt.Errorf("persisting key to %s tier: %w", u.primary.Tier(), err)
	}
	return nil
}
