package services

import (
	"context"
	"fmt"

	"github.com/onronder/durunotes-keys/internal/client/client"
	"github.com/onronder/durunotes-keys/internal/client/keystore"
	"github.com/onronder/durunotes-keys/internal/common"
	"github.com/onronder/durunotes-keys/internal/cryptox"
)

// EnrollmentService performs first-time key setup for an account: generate
// the AMK, wrap it under a passphrase-derived KEK, register the wrapped
// blob on the server, and persist the plaintext AMK in the primary local
// tier.
type EnrollmentService interface {
	Enroll(ctx context.Context, userID string, passphrase []byte) error
}

type enrollmentService struct {
	client  client.KeyClient
	primary keystore.Store
}

// NewEnrollmentService constructs an EnrollmentService writing to the given
// primary key tier.
func NewEnrollmentService(client client.KeyClient, primary keystore.Store) EnrollmentService {
	return &enrollmentService{client: client, primary: primary}
}

// Enroll registers the key remotely before persisting it locally, so a
// failure leaves no local key without a matching server record.
func (e *enrollmentService) Enroll(ctx context.Context, userID string, passphrase []byte) error {
	amk := common.GenerateRandByteArray(common.AmkSize)
	defer common.WipeByteArray(amk)

	kdfSalt := common.GenerateRandByteArray(common.KdfSaltSize)

	kek := cryptox.DeriveKek(passphrase, kdfSalt)
	defer common.WipeByteArray(kek)

	wrapped, err := cryptox.WrapKey(amk, kek)
	if err != nil {
		return fmt.Errorf("wrapping key: %w", err)
	}

	if err := e.client.RegisterKey(ctx, userID, wrapped, kdfSalt); err != nil {
		return fmt.Errorf("registering key: %w", err)
	}

	if err := e.primary.Set(ctx, amk); err != nil {
		return fmt.Errorf("persisting key to %s tier: %w", e.primary.Tier(), err)
	}
	return nil
}
