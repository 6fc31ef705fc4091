package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/onronder/durunotes-keys/internal/logging"
	pb "github.com/onronder/durunotes-keys/internal/proto"
	"github.com/onronder/durunotes-keys/internal/server/models"
	"github.com/onronder/durunotes-keys/internal/server/services"
)

// userSvc is the slice of UserService the transport needs.
type userSvc interface {
	Register(ctx context.Context, username string, salt, verifier []byte) (*models.User, error)
	GetSalt(ctx context.Context, userName string) ([]byte, error)
	Login(ctx context.Context, userName string, verifierCandidate []byte) (*models.User, *services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

// keySvc is the slice of KeyService the transport needs.
type keySvc interface {
	RegisterKey(ctx context.Context, userID string, wrappedKey, kdfSalt []byte) (*models.AmkKey, error)
	Exists(ctx context.Context, userID string, scheme models.KeyScheme) (bool, error)
	GetWrappedKey(ctx context.Context, userID string) (*models.AmkKey, error)
}

type GRPCServer struct {
	pb.UnimplementedKeyServiceServer
	address   string
	users     userSvc
	keys      keySvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, us userSvc, ks keySvc, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		keys:      ks,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	pb.RegisterKeyServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
