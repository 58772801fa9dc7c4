package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t4gged/t4gged/internal/client/client"
	"github.com/t4gged/t4gged/internal/client/config"
	"github.com/t4gged/t4gged/internal/client/models"
	"github.com/t4gged/t4gged/internal/common"
	"github.com/t4gged/t4gged/internal/logging"
)

type fakeProvider struct {
	ref string
	err error
}

func (f *fakeProvider) CurrentIdentityRef(context.Context) (string, error) {
	return f.ref, f.err
}

type fakeStore struct {
	mu        sync.Mutex
	ref       string
	username  string
	pingErr   error
	sendErr   error
	friends   []*models.Friendship
	invites   []*models.Invite
	closed    bool
	lastQuery []string
}

func (f *fakeStore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeStore) Ping(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pingErr
}

func (f *fakeStore) GetOrCreateUser(_ context.Context, displayName string, override *string) (*models.User, error) {
	if f.username == "" {
		f.username = displayName
		if override != nil {
			f.username = *override
		}
	}
	return &models.User{ID: f.ref, Username: f.username}, nil
}

func (f *fakeStore) DiscoverDisplayName(context.Context, string) (string, error) {
	return "Dominique", nil
}

func (f *fakeStore) SendInvite(_ context.Context, to string) (*models.Invite, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	return &models.Invite{ID: "inv-9", FromUser: f.ref, ToUser: to, Status: "pending"}, nil
}

func (f *fakeStore) RespondToInvite(_ context.Context, id string, accept bool) (*models.Invite, *models.Friendship, error) {
	if !accept {
		return &models.Invite{ID: id, Status: "declined"}, nil, nil
	}
	return &models.Invite{ID: id, Status: "accepted"}, &models.Friendship{ID: "fr-1"}, nil
}

func (f *fakeStore) ListInvites(_ context.Context, direction, status string) ([]*models.Invite, error) {
	f.lastQuery = []string{direction, status}
	return f.invites, nil
}

func (f *fakeStore) ListFriends(context.Context) ([]*models.Friendship, error) {
	return f.friends, nil
}

func (f *fakeStore) PresignAvatarUpload(context.Context) (string, string, error) {
	return "", "", client.ErrUnavailable
}

func newTestApp(t *testing.T, input string) (*App, *fakeStore, *bytes.Buffer) {
	t.Helper()
	return newTestAppWithProvider(t, input, &fakeProvider{ref: "rec-1"})
}

func newTestAppWithProvider(t *testing.T, input string, p *fakeProvider) (*App, *fakeStore, *bytes.Buffer) {
	t.Helper()
	db, err := client.OpenDatabase(context.Background(), ":memory:")
	require.NoError(t, err)

	store := &fakeStore{ref: "rec-1"}
	out := &bytes.Buffer{}
	a := newApp(&config.Config{}, db, store, p, logging.NewTextLogger(&bytes.Buffer{}, 0), strings.NewReader(input), out)
	t.Cleanup(func() {
		a.writer.Close()
		_ = db.Close()
	})
	return a, store, out
}

func TestApp_SignInAndWhoAmI(t *testing.T) {
	a, _, out := newTestApp(t, "")
	ctx := context.Background()

	require.NoError(t, a.SignIn(ctx, []string{"Dom", "R"}))
	assert.True(t, a.isSignedIn())
	assert.Contains(t, out.String(), "Signed in as Dom R")

	require.NoError(t, a.Email(ctx, []string{"d@example.com"}))
	require.NoError(t, a.WhoAmI(ctx))
	assert.Contains(t, out.String(), "Record:   rec-1")
	assert.Contains(t, out.String(), "Email:    d@example.com")
	assert.Equal(t, "(Dom R)", a.status())
}

func TestApp_CommandsNeedSignIn(t *testing.T) {
	a, _, out := newTestApp(t, "")
	ctx := context.Background()

	assert.ErrorIs(t, a.Invite(ctx, "rec-2"), common.ErrNotSignedIn)
	assert.ErrorIs(t, a.Friends(ctx), common.ErrNotSignedIn)
	assert.ErrorIs(t, a.WhoAmI(ctx), common.ErrNotSignedIn)
	assert.Contains(t, out.String(), "Not signed in")
}

func TestApp_SignInWithoutIdentity(t *testing.T) {
	a, _, out := newTestAppWithProvider(t, "", &fakeProvider{err: common.ErrNoIdentity})

	err := a.SignIn(context.Background(), nil)
	assert.ErrorIs(t, err, common.ErrNoIdentity)
	assert.Contains(t, out.String(), "No identity on this device")
	assert.False(t, a.isSignedIn())
}

func TestApp_Invites(t *testing.T) {
	a, store, out := newTestApp(t, "")
	ctx := context.Background()
	require.NoError(t, a.SignIn(ctx, nil))

	require.NoError(t, a.Invite(ctx, "rec-2"))
	assert.Contains(t, out.String(), "Invite inv-9 sent to rec-2")

	assert.ErrorIs(t, a.Invite(ctx, "rec-1"), common.ErrSelfInvite)

	store.sendErr = common.ErrDuplicatePending
	assert.ErrorIs(t, a.Invite(ctx, "rec-2"), common.ErrDuplicatePending)
	assert.Contains(t, out.String(), "You already have a pending invite with this user.")

	require.NoError(t, a.Invites(ctx, []string{"pending", "out"}))
	assert.Equal(t, []string{"outgoing", "pending"}, store.lastQuery)
	assert.Contains(t, out.String(), "No invites")

	store.invites = []*models.Invite{{ID: "inv-1", FromUser: "rec-2", ToUser: "rec-1", Status: "pending", SentAt: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)}}
	require.NoError(t, a.Invites(ctx, nil))
	assert.Equal(t, []string{"incoming", ""}, store.lastQuery)
	assert.Contains(t, out.String(), "inv-1  rec-2 -> rec-1  pending  2026-01-02 03:04")

	require.NoError(t, a.Accept(ctx, "inv-1"))
	assert.Contains(t, out.String(), "Accepted, friendship fr-1")
	require.NoError(t, a.Decline(ctx, "inv-2"))
	assert.Contains(t, out.String(), "Declined invite inv-2")

	require.NoError(t, a.Friends(ctx))
	assert.Contains(t, out.String(), "No friends yet")
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"already resolved", common.ErrAlreadyResolved, "Invite already handled."},
		{"duplicate pending", common.ErrDuplicatePending, "You already have a pending invite with this user."},
		{"self invite", common.ErrSelfInvite, "You cannot invite yourself."},
		{"not recipient", common.ErrNotRecipient, "Only the invited user can respond to this invite."},
		{"rate limited", common.ErrRateLimited, "Too many invites, wait a moment and try again."},
		{"wrapped", fmt.Errorf("respond: %w", common.ErrAlreadyResolved), "Invite already handled."},
		{"unknown", errors.New("boom"), "Error: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.err))
		})
	}
}

func TestApp_PasscodeLockAndUnlock(t *testing.T) {
	a, _, out := newTestApp(t, "")
	ctx := context.Background()
	require.NoError(t, a.SignIn(ctx, nil))

	stubPasswords(t, "1234", "1234", "0000", "1234")
	require.NoError(t, a.Passcode(ctx))

	a.locked = true
	assert.ErrorIs(t, a.Email(ctx, []string{"x@example.com"}), errLocked)
	assert.ErrorIs(t, a.Unlock(ctx), common.ErrWrongPasscode)
	require.NoError(t, a.Unlock(ctx))
	assert.False(t, a.locked)
	assert.Contains(t, out.String(), "Unlocked")
}

func TestApp_AvatarErrors(t *testing.T) {
	a, _, out := newTestApp(t, "")
	ctx := context.Background()
	require.NoError(t, a.SignIn(ctx, nil))

	a.readFile = func(string) ([]byte, error) { return nil, os.ErrNotExist }
	assert.ErrorIs(t, a.Avatar(ctx, "missing.png"), os.ErrNotExist)

	a.readFile = func(string) ([]byte, error) { return []byte("GIF89a"), nil }
	assert.ErrorIs(t, a.Avatar(ctx, "me.gif"), client.ErrUnavailable)
	assert.Contains(t, out.String(), "Server unavailable")
}

func TestApp_SignOut(t *testing.T) {
	a, _, out := newTestApp(t, "")
	ctx := context.Background()

	assert.ErrorIs(t, a.SignOut(ctx), common.ErrNotSignedIn)
	require.NoError(t, a.SignIn(ctx, nil))
	require.NoError(t, a.SignOut(ctx))
	assert.False(t, a.isSignedIn())
	assert.Contains(t, out.String(), "Signed out")
}

func TestApp_RunSignsInAndCloses(t *testing.T) {
	captureOutput(t)
	a, store, _ := newTestApp(t, "signin\nexit\n")
	store.pingErr = errors.New("down")

	a.Run(context.Background())
	assert.True(t, store.closed)
	assert.Equal(t, "Dominique", store.username)
}

func TestApp_CheckOnline(t *testing.T) {
	a, store, out := newTestApp(t, "")
	ctx := context.Background()

	a.checkOnline(ctx)
	assert.Equal(t, ModeOnline, a.mode)

	store.mu.Lock()
	store.pingErr = errors.New("down")
	store.mu.Unlock()
	a.checkOnline(ctx)
	assert.Equal(t, ModeOffline, a.mode)
	assert.Contains(t, out.String(), "Switched to offline mode")
}
