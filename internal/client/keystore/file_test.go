package keystore

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStore_GetMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "amk.bin"))

	got, err := s.Get(context.Background())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestFileStore_SetGetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "amk.bin")
	s := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, []byte("key-material")))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, []byte("key-material"), got)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestFileStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "amk.bin")
	s := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, []byte("key")))
	require.NoError(t, s.Clear(ctx))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Nil(t, got)

	// idempotent
	require.NoError(t, s.Clear(ctx))
}

func TestFileStore_Tier(t *testing.T) {
	require.Equal(t, TierLegacy, NewFileStore("x").Tier())
}
