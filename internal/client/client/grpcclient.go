package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/onronder/durunotes-keys/internal/common"
	pb "github.com/onronder/durunotes-keys/internal/proto"
)

// GRPCClient implements KeyClient over the KeyService gRPC API. It holds the
// token pair of the current session and refreshes the access token
// transparently when the server reports it expired. It also remembers the
// authenticated user ID, so it doubles as the gate's identity provider.
type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.KeyServiceClient
	accessToken  string
	refreshToken string
	userID       string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	ctx = withAccessToken(ctx, s.accessToken)

	err := invoker(ctx, method, req, reply, cc, opts...)

	if err != nil {

		st, ok := status.FromError(err)
		if !ok {
			return err
		}

		if st.Code() != codes.Unauthenticated {
			return err
		}
		if st.Message() != common.ErrTokenExpired.Error() {
			return err
		}

		if s.refreshToken == "" {
			return err
		}

		refreshTokenResponse, err := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: s.refreshToken})
		if err != nil {
			return err
		}

		s.accessToken = refreshTokenResponse.AccessToken
		s.refreshToken = refreshTokenResponse.RefreshToken

		// tokens refreshed, retry once with the new access token
		ctx = withAccessToken(ctx, s.accessToken)
		return invoker(ctx, method, req, reply, cc, opts...)

	}

	return err
}

// NewKeyServerClient dials the key server endpoint and returns a ready
// client. The connection is lazy; dial errors surface on first use.
func NewKeyServerClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewKeyServiceClient(conn)
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, userName string, salt []byte, verifier []byte) error {

	req := &pb.RegisterUserRequest{Username: userName, Salt: salt, Verifier: verifier}

	if _, err := s.client.RegisterUser(ctx, req); err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) GetSalt(ctx context.Context, userName string) ([]byte, error) {

	ctx, cancel := context.WithTimeout(ctx, 12*time.Second)
	defer cancel()

	req := &pb.GetSaltRequest{Username: userName}

	resp, err := s.client.GetSalt(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Salt, nil
}

// Login authenticates with the derived verifier and stores the session
// tokens and user ID on success.
func (s *GRPCClient) Login(ctx context.Context, userName string, verifier []byte) (string, error) {

	req := &pb.LoginRequest{Username: userName, VerifierCandidate: verifier}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	s.accessToken = resp.AccessToken
	s.refreshToken = resp.RefreshToken
	s.userID = resp.UserId

	return resp.UserId, nil
}

// CurrentUserID returns the authenticated user's ID, or "" when signed out.
func (s *GRPCClient) CurrentUserID() string {
	return s.userID
}

// ClearSession drops tokens and identity, returning the client to the
// pre-login state.
func (s *GRPCClient) ClearSession() {
	s.accessToken = ""
	s.refreshToken = ""
	s.userID = ""
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) KeyExists(ctx context.Context, userID string) (bool, error) {

	resp, err := s.client.KeyExists(ctx, &pb.KeyExistsRequest{UserId: userID})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Exists, nil
}

func (s *GRPCClient) LegacyKeyExists(ctx context.Context, userID string) (bool, error) {

	resp, err := s.client.LegacyKeyExists(ctx, &pb.KeyExistsRequest{UserId: userID})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Exists, nil
}

func (s *GRPCClient) RegisterKey(ctx context.Context, userID string, wrappedKey []byte, kdfSalt []byte) error {

	req := &pb.RegisterKeyRequest{UserId: userID, WrappedKey: wrappedKey, KdfSalt: kdfSalt}

	if _, err := s.client.RegisterKey(ctx, req); err != nil {
		return s.mapError(err)
	}
	return nil
}

// GetWrappedKey fetches the passphrase-wrapped AMK and its KDF salt.
func (s *GRPCClient) GetWrappedKey(ctx context.Context, userID string) ([]byte, []byte, error) {

	resp, err := s.client.GetWrappedKey(ctx, &pb.GetWrappedKeyRequest{UserId: userID})
	if err != nil {
		return nil, nil, s.mapError(err)
	}
	return resp.WrappedKey, resp.KdfSalt, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.NotFound:
		return ErrNotFound
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
