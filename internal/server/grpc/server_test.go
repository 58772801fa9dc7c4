package grpc

import (
	"context"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	"github.com/t4gged/t4gged/internal/common"
	"github.com/t4gged/t4gged/internal/logging"
	pb "github.com/t4gged/t4gged/internal/proto"
	"github.com/t4gged/t4gged/internal/server/auth"
	"github.com/t4gged/t4gged/internal/server/models"
)

const testSecret = "secret"

func nopLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type fakeUsers struct {
	gotRef      string
	gotName     string
	gotOverride *string
	err         error
	givenName   string
	discoverErr error
	discovered  string
}

func (f *fakeUsers) GetOrCreateUser(_ context.Context, ref, name string, override *string) (*models.User, error) {
	f.gotRef, f.gotName, f.gotOverride = ref, name, override
	if f.err != nil {
		return nil, f.err
	}
	return &models.User{ID: ref, Username: name}, nil
}

func (f *fakeUsers) DiscoverDisplayName(_ context.Context, ref string) (string, error) {
	f.discovered = ref
	if f.discoverErr != nil {
		return "", f.discoverErr
	}
	return f.givenName, nil
}

type fakeInvites struct {
	sendErr      error
	respondErr   error
	gotFrom      string
	gotTo        string
	gotResponder string
	gotDirection models.Direction
	gotStatus    *models.InviteStatus
	list         []*models.FriendInvite
	friends      []*models.Friendship
}

func (f *fakeInvites) SendInvite(_ context.Context, from, to string) (*models.FriendInvite, error) {
	f.gotFrom, f.gotTo = from, to
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return &models.FriendInvite{ID: "i1", FromUser: from, ToUser: to, Status: models.InviteStatusPending}, nil
}

func (f *fakeInvites) RespondToInvite(_ context.Context, responder, id string, accept bool) (*models.FriendInvite, *models.Friendship, error) {
	f.gotResponder = responder
	if f.respondErr != nil {
		return nil, nil, f.respondErr
	}
	inv := &models.FriendInvite{ID: id, FromUser: "u1", ToUser: responder, Status: models.InviteStatusDeclined}
	if !accept {
		return inv, nil, nil
	}
	inv.Status = models.InviteStatusAccepted
	return inv, models.NewFriendship("f1", "u1", responder, time.Now()), nil
}

func (f *fakeInvites) ListInvites(_ context.Context, user string, d models.Direction, st *models.InviteStatus) ([]*models.FriendInvite, error) {
	f.gotDirection, f.gotStatus = d, st
	return f.list, nil
}

func (f *fakeInvites) ListFriendships(context.Context, string) ([]*models.Friendship, error) {
	return f.friends, nil
}

type fakeAvatars struct{ err error }

func (f *fakeAvatars) PresignAvatarUpload(_ context.Context, user string) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	return "http://put/" + user, "http://get/" + user, nil
}

type testEnv struct {
	client  pb.RecordStoreClient
	users   *fakeUsers
	invites *fakeInvites
	avatars *fakeAvatars
	metrics *Metrics
}

func startTestServer(t *testing.T, limiter *InviteLimiter) *testEnv {
	t.Helper()

	env := &testEnv{
		users:   &fakeUsers{givenName: "Dominique"},
		invites: &fakeInvites{},
		avatars: &fakeAvatars{},
		metrics: NewMetrics(prometheus.NewRegistry()),
	}
	s := NewGRPCServer("bufnet", nopLogger(), testSecret, env.users, env.invites, env.avatars, limiter, env.metrics)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = s.Serve(ctx, lis)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	env.client = pb.NewRecordStoreClient(conn)
	return env
}

func authed(t *testing.T, ref string) context.Context {
	t.Helper()
	tok, err := auth.GenerateIdentityToken(ref, "", []byte(testSecret), time.Hour)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), common.IdentityTokenHeaderName, tok)
}

func TestRun_BadAddress(t *testing.T) {
	s := NewGRPCServer("127.0.0.1:99999", nopLogger(), testSecret, &fakeUsers{}, &fakeInvites{}, &fakeAvatars{}, nil, nil)
	assert.Error(t, s.Run(context.Background()))
}

func TestRun_StopsOnCancel(t *testing.T) {
	s := NewGRPCServer("127.0.0.1:0", nopLogger(), testSecret, &fakeUsers{}, &fakeInvites{}, &fakeAvatars{}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}
