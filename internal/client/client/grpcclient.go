package client

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/t4gged/t4gged/internal/client/models"
	"github.com/t4gged/t4gged/internal/common"
	"github.com/t4gged/t4gged/internal/logging"
	pb "github.com/t4gged/t4gged/internal/proto"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.RecordStoreClient
	tokens      TokenSource
	breaker     *gobreaker.CircuitBreaker
	timeout     time.Duration
	logger      logging.Logger
}

func withIdentityToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.IdentityTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// identityTokenInterceptor attaches the current identity token. With no
// identity the call goes out bare and the server decides.
func (s *GRPCClient) identityTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	token, err := s.tokens.Token(ctx)
	switch {
	case err == nil:
		ctx = withIdentityToken(ctx, token)
	case errors.Is(err, common.ErrNoIdentity):
		// Ping needs no identity
	default:
		return common.ErrIdentityUnavailable
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

// transportFailure reports whether err says the server could not be reached.
// Only those count against the breaker.
func transportFailure(err error) bool {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return true
	}
	return false
}

func newBreaker(logger logging.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "record-store",
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !transportFailure(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn(context.Background(), "circuit breaker state change",
				"name", name, "from", from.String(), "to", to.String())
		},
	})
}

func breakerInterceptor(cb *gobreaker.CircuitBreaker) grpc.UnaryClientInterceptor {
	return func(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
		_, err := cb.Execute(func() (any, error) {
			return nil, invoker(ctx, method, req, reply, cc, opts...)
		})

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return status.Errorf(codes.Unavailable, "circuit breaker [%s] is open", cb.Name())
		}
		return err
	}
}

// NewGRPCClient prepares a client for endpointURL. The connection is lazy,
// so an unreachable server surfaces on the first call. Extra dial options
// are appended after the defaults.
func NewGRPCClient(endpointURL string, tokens TokenSource, timeout time.Duration, logger logging.Logger, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{
		endpointURL: endpointURL,
		tokens:      tokens,
		timeout:     timeout,
		logger:      logger.With("module", "grpc_client"),
	}
	c.breaker = newBreaker(c.logger)

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithChainUnaryInterceptor(c.identityTokenInterceptor, breakerInterceptor(c.breaker)),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewRecordStoreClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return mapError("ping", err)
	}
	if resp.GetStatus() != "OK" {
		return common.NewStoreError("ping", ErrUnavailable)
	}
	return nil
}

func (s *GRPCClient) GetOrCreateUser(ctx context.Context, displayName string, overrideUsername *string) (*models.User, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.GetOrCreateUser(ctx, &pb.GetOrCreateUserRequest{
		DisplayName:      displayName,
		OverrideUsername: deref(overrideUsername),
	})
	if err != nil {
		return nil, mapError("get or create user", err)
	}
	return fromProtoUser(resp.GetUser()), nil
}

// DiscoverDisplayName asks the identity directory for ref's given name.
func (s *GRPCClient) DiscoverDisplayName(ctx context.Context, ref string) (string, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.DiscoverIdentity(ctx, &pb.DiscoverIdentityRequest{IdentityRef: ref})
	if err != nil {
		return "", mapError("discover identity", err)
	}
	return resp.GetGivenName(), nil
}

func (s *GRPCClient) SendInvite(ctx context.Context, toUser string) (*models.Invite, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.SendInvite(ctx, &pb.SendInviteRequest{ToUser: toUser})
	if err != nil {
		return nil, mapError("send invite", err)
	}
	return fromProtoInvite(resp.GetInvite()), nil
}

func (s *GRPCClient) RespondToInvite(ctx context.Context, inviteID string, accept bool) (*models.Invite, *models.Friendship, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.RespondToInvite(ctx, &pb.RespondToInviteRequest{InviteId: inviteID, Accept: accept})
	if err != nil {
		return nil, nil, mapError("respond to invite", err)
	}
	return fromProtoInvite(resp.GetInvite()), fromProtoFriendship(resp.GetFriendship()), nil
}

func (s *GRPCClient) ListInvites(ctx context.Context, direction, inviteStatus string) ([]*models.Invite, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ListInvites(ctx, &pb.ListInvitesRequest{Direction: direction, Status: inviteStatus})
	if err != nil {
		return nil, mapError("list invites", err)
	}
	out := make([]*models.Invite, 0, len(resp.GetInvites()))
	for _, inv := range resp.GetInvites() {
		out = append(out, fromProtoInvite(inv))
	}
	return out, nil
}

func (s *GRPCClient) ListFriends(ctx context.Context) ([]*models.Friendship, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.ListFriends(ctx, &pb.ListFriendsRequest{})
	if err != nil {
		return nil, mapError("list friends", err)
	}
	out := make([]*models.Friendship, 0, len(resp.GetFriendships()))
	for _, f := range resp.GetFriendships() {
		out = append(out, fromProtoFriendship(f))
	}
	return out, nil
}

func (s *GRPCClient) PresignAvatarUpload(ctx context.Context) (string, string, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.PresignAvatarUpload(ctx, &pb.PresignAvatarUploadRequest{})
	if err != nil {
		return "", "", mapError("presign avatar", err)
	}
	return resp.GetUploadUrl(), resp.GetAvatarUrl(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fromProtoUser(u *pb.User) *models.User {
	out := &models.User{ID: u.GetId(), Username: u.GetUsername(), CreatedAt: u.GetCreatedAt().AsTime()}
	if v := u.GetAvatarUrl(); v != "" {
		out.AvatarURL = &v
	}
	return out
}

func fromProtoInvite(i *pb.Invite) *models.Invite {
	return &models.Invite{
		ID:       i.GetId(),
		FromUser: i.GetFromUser(),
		ToUser:   i.GetToUser(),
		Status:   i.GetStatus(),
		SentAt:   i.GetSentAt().AsTime(),
	}
}

// fromProtoFriendship returns nil for a nil friendship, as on a declined invite.
func fromProtoFriendship(f *pb.Friendship) *models.Friendship {
	if f == nil {
		return nil
	}
	return &models.Friendship{ID: f.GetId(), UserA: f.GetUserA(), UserB: f.GetUserB(), Since: f.GetSince().AsTime()}
}
