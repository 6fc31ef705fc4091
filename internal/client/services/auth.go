// Package services contains application services for the key client:
// authentication, first-time key enrollment, and passphrase unlock.
package services

import (
	"context"
	"fmt"

	"github.com/onronder/durunotes-keys/internal/client/client"
	"github.com/onronder/durunotes-keys/internal/client/keystore"
	"github.com/onronder/durunotes-keys/internal/common"
	"github.com/onronder/durunotes-keys/internal/cryptox"
)

// AuthService defines account-level operations for the CLI.
//
// Contract:
//   - Register: create a new account on the server.
//   - Login: authenticate and return the server-assigned user ID.
//   - Logout: drop the session and wipe every local key tier.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, username string, passphrase []byte) error
	Login(ctx context.Context, username string, passphrase []byte) (string, error)
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by the remote KeyClient
// and the local key tiers it must wipe on logout.
type authService struct {
	client client.KeyClient
	stores []keystore.Store
}

// NewAuthService constructs an AuthService bound to the given API client and
// local key tiers.
func NewAuthService(client client.KeyClient, stores []keystore.Store) AuthService {
	return &authService{client: client, stores: stores}
}

// Register creates a new account on the server. It generates a random salt,
// derives a key from the passphrase, computes a verifier, and sends
// salt/verifier to the server. The passphrase itself never leaves the device.
func (a *authService) Register(ctx context.Context, username string, passphrase []byte) error {
	salt := common.GenerateRandByteArray(common.KdfSaltSize)
	key := cryptox.DeriveKek(passphrase, salt)
	defer common.WipeByteArray(key)
	verifier := cryptox.MakeVerifier(key)

	return a.client.Register(ctx, username, salt, verifier)
}

// Login fetches the account salt, re-derives the verifier from the
// passphrase, and authenticates. Returns the user ID on success.
func (a *authService) Login(ctx context.Context, username string, passphrase []byte) (string, error) {
	salt, err := a.client.GetSalt(ctx, username)
	if err != nil {
		return "", fmt.Errorf("get salt error: %w", err)
	}

	key := cryptox.DeriveKek(passphrase, salt)
	defer common.WipeByteArray(key)
	verifier := cryptox.MakeVerifier(key)

	userID, err := a.client.Login(ctx, username, verifier)
	if err != nil {
		return "", fmt.Errorf("login error: %w", err)
	}
	return userID, nil
}

// Logout clears the session tokens and wipes the AMK from every local tier,
// so a later login as a different account cannot pick up stale key material.
func (a *authService) Logout(ctx context.Context) error {
	a.client.ClearSession()

	for _, st := range a.stores {
		if err := st.Clear(ctx); err != nil {
			return fmt.Errorf("clearing %s tier: %w", st.Tier(), err)
		}
	}
	return nil
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
