package services

import (
	"context"

	"github.com/onronder/durunotes-keys/internal/client/keystore"
)

// fakeKeyClient records arguments of the last call to every method and
// returns canned results.
type fakeKeyClient struct {
	Salt       []byte
	UserID     string
	Wrapped    []byte
	KdfSalt    []byte
	Exists     bool
	LegacyHits bool

	GetSaltErr       error
	LoginErr         error
	RegisterErr      error
	RegisterKeyErr   error
	GetWrappedKeyErr error
	PingErr          error

	LastUsername   string
	LastSalt       []byte
	LastVerifier   []byte
	LastUserID     string
	LastWrapped    []byte
	LastKdfSalt    []byte
	SessionCleared bool
	Closed         bool
}

func (f *fakeKeyClient) Close() error {
	f.Closed = true
	return nil
}

func (f *fakeKeyClient) ClearSession() {
	f.SessionCleared = true
}

func (f *fakeKeyClient) Register(ctx context.Context, username string, salt []byte, verifier []byte) error {
	f.LastUsername = username
	f.LastSalt = salt
	f.LastVerifier = verifier
	return f.RegisterErr
}

func (f *fakeKeyClient) GetSalt(ctx context.Context, username string) ([]byte, error) {
	f.LastUsername = username
	if f.GetSaltErr != nil {
		return nil, f.GetSaltErr
	}
	return f.Salt, nil
}

func (f *fakeKeyClient) Login(ctx context.Context, username string, verifier []byte) (string, error) {
	f.LastUsername = username
	f.LastVerifier = verifier
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	return f.UserID, nil
}

func (f *fakeKeyClient) Ping(ctx context.Context) error {
	return f.PingErr
}

func (f *fakeKeyClient) KeyExists(ctx context.Context, userID string) (bool, error) {
	f.LastUserID = userID
	return f.Exists, nil
}

func (f *fakeKeyClient) LegacyKeyExists(ctx context.Context, userID string) (bool, error) {
	f.LastUserID = userID
	return f.LegacyHits, nil
}

func (f *fakeKeyClient) RegisterKey(ctx context.Context, userID string, wrappedKey []byte, kdfSalt []byte) error {
	f.LastUserID = userID
	f.LastWrapped = append([]byte(nil), wrappedKey...)
	f.LastKdfSalt = append([]byte(nil), kdfSalt...)
	return f.RegisterKeyErr
}

func (f *fakeKeyClient) GetWrappedKey(ctx context.Context, userID string) ([]byte, []byte, error) {
	f.LastUserID = userID
	if f.GetWrappedKeyErr != nil {
		return nil, nil, f.GetWrappedKeyErr
	}
	return f.Wrapped, f.KdfSalt, nil
}

// fakeStore is an in-memory key tier. It copies on Set because real tiers
// persist a copy and callers wipe their buffer afterwards.
type fakeStore struct {
	tier   keystore.Tier
	value  []byte
	SetErr error
}

func (f *fakeStore) Get(ctx context.Context) ([]byte, error) {
	return f.value, nil
}

func (f *fakeStore) Set(ctx context.Context, key []byte) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	f.value = append([]byte(nil), key...)
	return nil
}

func (f *fakeStore) Clear(ctx context.Context) error {
	f.value = nil
	return nil
}

func (f *fakeStore) Tier() keystore.Tier {
	return f.tier
}
