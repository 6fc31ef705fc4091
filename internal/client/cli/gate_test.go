package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onronder/durunotes-keys/internal/client/services"
)

func TestApp_ResolveGate_NotLoggedIn(t *testing.T) {
	app, _, _, _ := newTestApp(nil, false)

	err := app.ResolveGate(context.Background())
	require.NoError(t, err)
}

func TestApp_Setup(t *testing.T) {
	app, _, fe, _ := newTestApp(nil, false)
	app.userID = "user-1"
	restore := stubInput("", "pass123", "pass123")
	defer restore()

	err := app.Setup(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "user-1", fe.LastUserID)
	assert.Equal(t, []byte("pass123"), fe.LastPassphrase)
}

func TestApp_Setup_PassphraseMismatch(t *testing.T) {
	app, _, fe, _ := newTestApp(nil, false)
	app.userID = "user-1"
	restore := stubInput("", "pass123", "other")
	defer restore()

	err := app.Setup(context.Background())
	require.Error(t, err)
	assert.Empty(t, fe.LastUserID)
}

func TestApp_Unlock(t *testing.T) {
	app, _, _, fu := newTestApp(nil, true)
	app.userID = "user-1"
	restore := stubInput("", "pass123")
	defer restore()

	err := app.Unlock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "user-1", fu.LastUserID)
}

func TestApp_Unlock_WrongPassphrase(t *testing.T) {
	app, _, _, fu := newTestApp(nil, true)
	app.userID = "user-1"
	fu.Err = services.ErrWrongPassphrase
	restore := stubInput("", "bad")
	defer restore()

	err := app.Unlock(context.Background())
	require.ErrorIs(t, err, services.ErrWrongPassphrase)
}

func TestApp_Unlock_OtherError(t *testing.T) {
	app, _, _, fu := newTestApp(nil, true)
	app.userID = "user-1"
	fu.Err = errors.New("server gone")
	restore := stubInput("", "pass123")
	defer restore()

	err := app.Unlock(context.Background())
	require.Error(t, err)
}
