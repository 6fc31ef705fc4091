package grpc

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/onronder/durunotes-keys/internal/common"
	"github.com/onronder/durunotes-keys/internal/logging"
	pb "github.com/onronder/durunotes-keys/internal/proto"
	"github.com/onronder/durunotes-keys/internal/server/models"
	"github.com/onronder/durunotes-keys/internal/server/services"
)

// ---- test logger ----

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- fakes ----

type fakeUser struct {
	regResp *models.User
	regErr  error

	saltResp []byte
	saltErr  error

	loginUser *models.User
	loginResp *services.TokenPair
	loginErr  error

	refreshResp *services.TokenPair
	refreshErr  error
}

func (f *fakeUser) Register(ctx context.Context, username string, salt []byte, verifier []byte) (*models.User, error) {
	return f.regResp, f.regErr
}

func (f *fakeUser) GetSalt(ctx context.Context, username string) ([]byte, error) {
	return f.saltResp, f.saltErr
}

func (f *fakeUser) Login(ctx context.Context, username string, verifierCandidate []byte) (*models.User, *services.TokenPair, error) {
	return f.loginUser, f.loginResp, f.loginErr
}

func (f *fakeUser) RefreshToken(ctx context.Context, refresh string) (*services.TokenPair, error) {
	return f.refreshResp, f.refreshErr
}

type fakeKey struct {
	regResp *models.AmkKey
	regErr  error

	existsResp map[models.KeyScheme]bool
	existsErr  error

	getResp *models.AmkKey
	getErr  error

	lastScheme models.KeyScheme
}

func (f *fakeKey) RegisterKey(ctx context.Context, userID string, wrappedKey, kdfSalt []byte) (*models.AmkKey, error) {
	return f.regResp, f.regErr
}

func (f *fakeKey) Exists(ctx context.Context, userID string, scheme models.KeyScheme) (bool, error) {
	f.lastScheme = scheme
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.existsResp[scheme], nil
}

func (f *fakeKey) GetWrappedKey(ctx context.Context, userID string) (*models.AmkKey, error) {
	return f.getResp, f.getErr
}

// ---- helpers ----

func newServer(u userSvc, k keySvc) *GRPCServer {
	return &GRPCServer{
		address:   "127.0.0.1:0",
		users:     u,
		keys:      k,
		logger:    nopLogger{},
		jwtSecret: []byte("k"),
	}
}

// authedCtx simulates what the interceptor does for protected methods.
func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), userIDKey, userID)
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	st, ok := status.FromError(err)
	if !ok {
		t.Fatalf("not a status error: %v", err)
	}
	if st.Code() != code {
		t.Fatalf("want code %v, got %v (%v)", code, st.Code(), err)
	}
}

// ---- tests ----

func TestPing_OK(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeKey{})
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.GetStatus() != "OK" {
		t.Fatalf("unexpected status: %q", resp.GetStatus())
	}
}

func TestRegisterUser_OK(t *testing.T) {
	u := &fakeUser{regResp: &models.User{ID: "u1"}}
	s := newServer(u, &fakeKey{})

	resp, err := s.RegisterUser(context.Background(), &pb.RegisterUserRequest{Username: "alice", Salt: []byte("s"), Verifier: []byte("v")})
	if err != nil {
		t.Fatalf("RegisterUser error: %v", err)
	}
	if resp.GetUserId() != "u1" {
		t.Fatalf("unexpected user id: %q", resp.GetUserId())
	}
}

func TestRegisterUser_Duplicate(t *testing.T) {
	u := &fakeUser{regErr: common.ErrorAlreadyExists}
	s := newServer(u, &fakeKey{})

	_, err := s.RegisterUser(context.Background(), &pb.RegisterUserRequest{Username: "alice"})
	wantCode(t, err, codes.AlreadyExists)
}

func TestGetSalt_OK(t *testing.T) {
	u := &fakeUser{saltResp: []byte("salt")}
	s := newServer(u, &fakeKey{})

	resp, err := s.GetSalt(context.Background(), &pb.GetSaltRequest{Username: "alice"})
	if err != nil {
		t.Fatalf("GetSalt error: %v", err)
	}
	if !bytes.Equal(resp.GetSalt(), []byte("salt")) {
		t.Fatalf("unexpected salt: %q", resp.GetSalt())
	}
}

func TestLogin_OK(t *testing.T) {
	u := &fakeUser{
		loginUser: &models.User{ID: "u1"},
		loginResp: &services.TokenPair{AccessToken: "a", RefreshToken: "r"},
	}
	s := newServer(u, &fakeKey{})

	resp, err := s.Login(context.Background(), &pb.LoginRequest{Username: "alice", VerifierCandidate: []byte("v")})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.GetAccessToken() != "a" || resp.GetRefreshToken() != "r" || resp.GetUserId() != "u1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestLogin_Unauthorized(t *testing.T) {
	u := &fakeUser{loginErr: common.ErrorUnauthorized}
	s := newServer(u, &fakeKey{})

	_, err := s.Login(context.Background(), &pb.LoginRequest{Username: "alice"})
	wantCode(t, err, codes.Unauthenticated)
}

func TestRefreshToken_OK(t *testing.T) {
	u := &fakeUser{refreshResp: &services.TokenPair{AccessToken: "a", RefreshToken: "r"}}
	s := newServer(u, &fakeKey{})

	resp, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "r0"})
	if err != nil {
		t.Fatalf("RefreshToken error: %v", err)
	}
	if resp.GetAccessToken() != "a" || resp.GetRefreshToken() != "r" {
		t.Fatalf("unexpected tokens: %+v", resp)
	}
}

func TestRefreshToken_Expired(t *testing.T) {
	u := &fakeUser{refreshErr: common.ErrRefreshTokenExpired}
	s := newServer(u, &fakeKey{})

	_, err := s.RefreshToken(context.Background(), &pb.RefreshTokenRequest{RefreshToken: "old"})
	wantCode(t, err, codes.Unauthenticated)
}

func TestKeyExists_OK(t *testing.T) {
	k := &fakeKey{existsResp: map[models.KeyScheme]bool{models.KeySchemeCurrent: true}}
	s := newServer(&fakeUser{}, k)

	resp, err := s.KeyExists(authedCtx("u1"), &pb.KeyExistsRequest{UserId: "u1"})
	if err != nil {
		t.Fatalf("KeyExists error: %v", err)
	}
	if !resp.GetExists() {
		t.Fatalf("expected exists=true")
	}
	if k.lastScheme != models.KeySchemeCurrent {
		t.Fatalf("unexpected scheme: %q", k.lastScheme)
	}
}

func TestLegacyKeyExists_UsesLegacyScheme(t *testing.T) {
	k := &fakeKey{existsResp: map[models.KeyScheme]bool{models.KeySchemeLegacy: true}}
	s := newServer(&fakeUser{}, k)

	resp, err := s.LegacyKeyExists(authedCtx("u1"), &pb.KeyExistsRequest{UserId: "u1"})
	if err != nil {
		t.Fatalf("LegacyKeyExists error: %v", err)
	}
	if !resp.GetExists() {
		t.Fatalf("expected exists=true")
	}
	if k.lastScheme != models.KeySchemeLegacy {
		t.Fatalf("unexpected scheme: %q", k.lastScheme)
	}
}

func TestKeyExists_UserMismatch(t *testing.T) {
	s := newServer(&fakeUser{}, &fakeKey{})

	_, err := s.KeyExists(authedCtx("u1"), &pb.KeyExistsRequest{UserId: "u2"})
	wantCode(t, err, codes.PermissionDenied)
}

func TestKeyExists_InternalError(t *testing.T) {
	k := &fakeKey{existsErr: errors.New("db down")}
	s := newServer(&fakeUser{}, k)

	_, err := s.KeyExists(authedCtx("u1"), &pb.KeyExistsRequest{UserId: "u1"})
	wantCode(t, err, codes.Internal)
}

func TestRegisterKey_OK(t *testing.T) {
	k := &fakeKey{regResp: &models.AmkKey{ID: "k1"}}
	s := newServer(&fakeUser{}, k)

	_, err := s.RegisterKey(authedCtx("u1"), &pb.RegisterKeyRequest{UserId: "u1", WrappedKey: []byte("w"), KdfSalt: []byte("s")})
	if err != nil {
		t.Fatalf("RegisterKey error: %v", err)
	}
}

func TestRegisterKey_AlreadyExists(t *testing.T) {
	k := &fakeKey{regErr: common.ErrorAlreadyExists}
	s := newServer(&fakeUser{}, k)

	_, err := s.RegisterKey(authedCtx("u1"), &pb.RegisterKeyRequest{UserId: "u1", WrappedKey: []byte("w"), KdfSalt: []byte("s")})
	wantCode(t, err, codes.AlreadyExists)
}

func TestGetWrappedKey_OK(t *testing.T) {
	k := &fakeKey{getResp: &models.AmkKey{WrappedKey: []byte("w"), KdfSalt: []byte("s")}}
	s := newServer(&fakeUser{}, k)

	resp, err := s.GetWrappedKey(authedCtx("u1"), &pb.GetWrappedKeyRequest{UserId: "u1"})
	if err != nil {
		t.Fatalf("GetWrappedKey error: %v", err)
	}
	if !bytes.Equal(resp.GetWrappedKey(), []byte("w")) || !bytes.Equal(resp.GetKdfSalt(), []byte("s")) {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGetWrappedKey_NotFound(t *testing.T) {
	k := &fakeKey{getErr: common.ErrorNotFound}
	s := newServer(&fakeUser{}, k)

	_, err := s.GetWrappedKey(authedCtx("u1"), &pb.GetWrappedKeyRequest{UserId: "u1"})
	wantCode(t, err, codes.NotFound)
}
