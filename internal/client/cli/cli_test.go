package cli

import (
	"bufio"
	"context"
	"io"

	"github.com/onronder/durunotes-keys/internal/client/gate"
	"github.com/onronder/durunotes-keys/internal/client/keystore"
)

type fakeAuthService struct {
	UserID      string
	LoginErr    error
	RegisterErr error

	LastUsername   string
	LastPassphrase []byte
	LoggedOut      bool
	Closed         bool
}

func (f *fakeAuthService) Register(ctx context.Context, username string, passphrase []byte) error {
	f.LastUsername = username
	f.LastPassphrase = append([]byte(nil), passphrase...)
	return f.RegisterErr
}

func (f *fakeAuthService) Login(ctx context.Context, username string, passphrase []byte) (string, error) {
	f.LastUsername = username
	f.LastPassphrase = append([]byte(nil), passphrase...)
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	return f.UserID, nil
}

func (f *fakeAuthService) Logout(ctx context.Context) error {
	f.LoggedOut = true
	return nil
}

func (f *fakeAuthService) Ping(ctx context.Context) error { return nil }

func (f *fakeAuthService) Close(ctx context.Context) error {
	f.Closed = true
	return nil
}

type fakeEnrollmentService struct {
	Err            error
	LastUserID     string
	LastPassphrase []byte
}

func (f *fakeEnrollmentService) Enroll(ctx context.Context, userID string, passphrase []byte) error {
	f.LastUserID = userID
	f.LastPassphrase = append([]byte(nil), passphrase...)
	return f.Err
}

type fakeUnlockService struct {
	Err        error
	LastUserID string
}

func (f *fakeUnlockService) Unlock(ctx context.Context, userID string, passphrase []byte) error {
	f.LastUserID = userID
	return f.Err
}

type memStore struct {
	value []byte
}

func (m *memStore) Get(ctx context.Context) ([]byte, error) { return m.value, nil }
func (m *memStore) Set(ctx context.Context, key []byte) error {
	m.value = append([]byte(nil), key...)
	return nil
}
func (m *memStore) Clear(ctx context.Context) error { m.value = nil; return nil }
func (m *memStore) Tier() keystore.Tier             { return keystore.TierCrossDevice }

type staticLookup struct {
	exists bool
}

func (s *staticLookup) KeyExists(ctx context.Context, userID string) (bool, error) {
	return s.exists, nil
}

func (s *staticLookup) LegacyKeyExists(ctx context.Context, userID string) (bool, error) {
	return false, nil
}

// newTestApp builds an App whose gate sees the given local key material and
// remote record, with input seams already pointing at canned answers.
func newTestApp(local []byte, remoteExists bool) (*App, *fakeAuthService, *fakeEnrollmentService, *fakeUnlockService) {
	fa := &fakeAuthService{UserID: "user-1"}
	fe := &fakeEnrollmentService{}
	fu := &fakeUnlockService{}

	store := &memStore{value: local}
	app := &App{
		authService:       fa,
		enrollmentService: fe,
		unlockService:     fu,
		reader:            bufio.NewReader(io.LimitReader(nil, 0)),
	}
	cfg := gate.DefaultConfig()
	cfg.RetryDelay = 1
	app.gate = gate.NewController(cfg, []keystore.Store{store}, &staticLookup{exists: remoteExists}, app, nil)
	return app, fa, fe, fu
}

// CurrentUserID lets the App under test serve as its own identity provider,
// mirroring the production wiring where the API client does this.
func (a *App) CurrentUserID() string { return a.userID }

func stubInput(username string, passphrases ...string) func() {
	origText := getSimpleText
	origPw := getPassword

	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return username, nil
	}
	i := 0
	getPassword = func(w io.Writer, prompt string) ([]byte, error) {
		p := passphrases[i%len(passphrases)]
		i++
		return []byte(p), nil
	}

	return func() {
		getSimpleText = origText
		getPassword = origPw
	}
}
