// Package grpc exposes the record-store services over gRPC.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/t4gged/t4gged/internal/logging"
	pb "github.com/t4gged/t4gged/internal/proto"
	"github.com/t4gged/t4gged/internal/server/models"
)

// UserService is the part of services.UserService the transport uses.
type UserService interface {
	GetOrCreateUser(ctx context.Context, identityRef, displayName string, overrideUsername *string) (*models.User, error)
	DiscoverDisplayName(ctx context.Context, ref string) (string, error)
}

type InviteService interface {
	SendInvite(ctx context.Context, from, to string) (*models.FriendInvite, error)
	RespondToInvite(ctx context.Context, responder, inviteID string, accept bool) (*models.FriendInvite, *models.Friendship, error)
	ListInvites(ctx context.Context, user string, direction models.Direction, status *models.InviteStatus) ([]*models.FriendInvite, error)
	ListFriendships(ctx context.Context, user string) ([]*models.Friendship, error)
}

type AvatarService interface {
	PresignAvatarUpload(ctx context.Context, user string) (string, string, error)
}

type GRPCServer struct {
	pb.UnimplementedRecordStoreServer

	address   string
	users     UserService
	invites   InviteService
	avatars   AvatarService
	logger    logging.Logger
	jwtSecret []byte
	limiter   *InviteLimiter
	metrics   *Metrics
}

// NewGRPCServer wires the services behind the RecordStore service. A nil
// limiter disables invite rate limiting; nil metrics disables recording.
func NewGRPCServer(a string, l logging.Logger, secretKey string, us UserService, is InviteService, as AvatarService, limiter *InviteLimiter, metrics *Metrics) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		users:     us,
		invites:   is,
		avatars:   as,
		jwtSecret: []byte(secretKey),
		limiter:   limiter,
		metrics:   metrics,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.metricsInterceptor,
		s.identityInterceptor,
		s.rateLimitInterceptor,
	))
	pb.RegisterRecordStoreServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve serves on lis until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
