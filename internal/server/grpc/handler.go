package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/onronder/durunotes-keys/internal/common"
	pb "github.com/onronder/durunotes-keys/internal/proto"
	"github.com/onronder/durunotes-keys/internal/server/models"
)

func (s *GRPCServer) RegisterUser(ctx context.Context, req *pb.RegisterUserRequest) (*pb.RegisterUserResponse, error) {

	s.logger.Info(ctx, "Registration request")

	result, err := s.users.Register(ctx, req.Username, req.Salt, req.Verifier)

	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, status.Error(codes.AlreadyExists, "username taken")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &pb.RegisterUserResponse{UserId: result.ID}, nil
}

func (s *GRPCServer) GetSalt(ctx context.Context, req *pb.GetSaltRequest) (*pb.GetSaltResponse, error) {

	result, err := s.users.GetSalt(ctx, req.Username)

	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.GetSaltResponse{Salt: result}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	user, tokens, err := s.users.Login(ctx, req.Username, req.VerifierCandidate)

	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return nil, status.Error(codes.Unauthenticated, "unauthorized")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.LoginResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		UserId:       user.ID,
	}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)

	if err != nil {
		if errors.Is(err, common.ErrRefreshTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil
}

// checkOwnership rejects requests targeting a user other than the one the
// access token was issued for.
func checkOwnership(ctx context.Context, requestedUserID string) error {
	if authenticatedUserID(ctx) != requestedUserID {
		return status.Error(codes.PermissionDenied, "user mismatch")
	}
	return nil
}

func (s *GRPCServer) KeyExists(ctx context.Context, req *pb.KeyExistsRequest) (*pb.KeyExistsResponse, error) {

	if err := checkOwnership(ctx, req.UserId); err != nil {
		return nil, err
	}

	exists, err := s.keys.Exists(ctx, req.UserId, models.KeySchemeCurrent)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.KeyExistsResponse{Exists: exists}, nil
}

func (s *GRPCServer) LegacyKeyExists(ctx context.Context, req *pb.KeyExistsRequest) (*pb.KeyExistsResponse, error) {

	if err := checkOwnership(ctx, req.UserId); err != nil {
		return nil, err
	}

	exists, err := s.keys.Exists(ctx, req.UserId, models.KeySchemeLegacy)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.KeyExistsResponse{Exists: exists}, nil
}

func (s *GRPCServer) RegisterKey(ctx context.Context, req *pb.RegisterKeyRequest) (*pb.RegisterKeyResponse, error) {

	if err := checkOwnership(ctx, req.UserId); err != nil {
		return nil, err
	}

	key, err := s.keys.RegisterKey(ctx, req.UserId, req.WrappedKey, req.KdfSalt)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, status.Error(codes.AlreadyExists, "key already registered")
		}
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "Key registered", "user_id", req.UserId, "key_id", key.ID)
	return &pb.RegisterKeyResponse{}, nil
}

func (s *GRPCServer) GetWrappedKey(ctx context.Context, req *pb.GetWrappedKeyRequest) (*pb.GetWrappedKeyResponse, error) {

	if err := checkOwnership(ctx, req.UserId); err != nil {
		return nil, err
	}

	key, err := s.keys.GetWrappedKey(ctx, req.UserId)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, status.Error(codes.NotFound, "no wrapped key")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &pb.GetWrappedKeyResponse{WrappedKey: key.WrappedKey, KdfSalt: key.KdfSalt}, nil
}
