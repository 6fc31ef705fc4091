package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onronder/durunotes-keys/internal/client/keystore"
	"github.com/onronder/durunotes-keys/internal/common"
	"github.com/onronder/durunotes-keys/internal/cryptox"
)

func TestAuthService_Register(t *testing.T) {
	fc := &fakeKeyClient{}
	svc := NewAuthService(fc, nil)

	passphrase := []byte("correct horse")
	err := svc.Register(context.Background(), "alice", passphrase)
	require.NoError(t, err)

	require.Equal(t, "alice", fc.LastUsername)
	require.Len(t, fc.LastSalt, common.KdfSaltSize)

	// the verifier must be reproducible from passphrase and sent salt
	key := cryptox.DeriveKek(passphrase, fc.LastSalt)
	require.Equal(t, cryptox.MakeVerifier(key), fc.LastVerifier)
}

func TestAuthService_Register_Error(t *testing.T) {
	fc := &fakeKeyClient{RegisterErr: errors.New("boom")}
	svc := NewAuthService(fc, nil)

	err := svc.Register(context.Background(), "alice", []byte("pw"))
	require.Error(t, err)
}

func TestAuthService_Login(t *testing.T) {
	salt := common.GenerateRandByteArray(common.KdfSaltSize)
	fc := &fakeKeyClient{Salt: salt, UserID: "user-1"}
	svc := NewAuthService(fc, nil)

	passphrase := []byte("correct horse")
	userID, err := svc.Login(context.Background(), "alice", passphrase)
	require.NoError(t, err)
	require.Equal(t, "user-1", userID)

	key := cryptox.DeriveKek(passphrase, salt)
	require.Equal(t, cryptox.MakeVerifier(key), fc.LastVerifier)
}

func TestAuthService_Login_GetSaltError(t *testing.T) {
	fc := &fakeKeyClient{GetSaltErr: errors.New("unreachable")}
	svc := NewAuthService(fc, nil)

	_, err := svc.Login(context.Background(), "alice", []byte("pw"))
	require.Error(t, err)
	require.Empty(t, fc.LastVerifier)
}

func TestAuthService_Login_BadVerifier(t *testing.T) {
	fc := &fakeKeyClient{Salt: []byte("salt"), LoginErr: errors.New("unauthorized")}
	svc := NewAuthService(fc, nil)

	_, err := svc.Login(context.Background(), "alice", []byte("wrong"))
	require.Error(t, err)
}

func TestAuthService_Logout(t *testing.T) {
	fc := &fakeKeyClient{}
	primary := &fakeStore{tier: keystore.TierCrossDevice, value: []byte("amk")}
	legacy := &fakeStore{tier: keystore.TierLegacy, value: []byte("amk")}
	svc := NewAuthService(fc, []keystore.Store{primary, legacy})

	err := svc.Logout(context.Background())
	require.NoError(t, err)

	require.True(t, fc.SessionCleared)
	require.Nil(t, primary.value)
	require.Nil(t, legacy.value)
}

func TestAuthService_PingAndClose(t *testing.T) {
	fc := &fakeKeyClient{}
	svc := NewAuthService(fc, nil)

	require.NoError(t, svc.Ping(context.Background()))
	require.NoError(t, svc.Close(context.Background()))
	require.True(t, fc.Closed)

	fc.PingErr = errors.New("down")
	require.Error(t, svc.Ping(context.Background()))
}
