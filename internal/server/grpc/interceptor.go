package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/onronder/durunotes-keys/internal/common"
	pb "github.com/onronder/durunotes-keys/internal/proto"
	"github.com/onronder/durunotes-keys/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// protectedMethods are the key RPCs; everything else (registration, login,
// salt, ping, refresh) is reachable without an access token.
var protectedMethods = map[string]struct{}{
	pb.KeyService_KeyExists_FullMethodName:       {},
	pb.KeyService_LegacyKeyExists_FullMethodName: {},
	pb.KeyService_RegisterKey_FullMethodName:     {},
	pb.KeyService_GetWrappedKey_FullMethodName:   {},
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	s.logger.Debug(ctx, "request", "method", info.FullMethod, "request_id", uuid.NewString())

	if _, ok := protectedMethods[info.FullMethod]; ok {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				// the exact message is the client's cue to refresh and retry
				return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
			}
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, userIDKey, userID)
	}

	return handler(ctx, req)
}

// authenticatedUserID returns the user ID placed in the context by the
// interceptor, or "" for unprotected methods.
func authenticatedUserID(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}
