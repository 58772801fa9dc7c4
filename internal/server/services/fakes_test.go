package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/t4gged/t4gged/internal/common"
	"github.com/t4gged/t4gged/internal/dbx"
	"github.com/t4gged/t4gged/internal/logging"
	"github.com/t4gged/t4gged/internal/server/models"
	"github.com/t4gged/t4gged/internal/server/repositories/friendships"
	"github.com/t4gged/t4gged/internal/server/repositories/identities"
	"github.com/t4gged/t4gged/internal/server/repositories/invites"
	"github.com/t4gged/t4gged/internal/server/repositories/users"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func nopLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// memStore backs every fake repository. The *Err fields force failures.
type memStore struct {
	mu sync.Mutex

	users       map[string]*models.User
	identities  map[string]*models.Identity
	invites     map[string]*models.FriendInvite
	friendships map[[2]string]*models.Friendship

	userCreates int
	// raceOnCreate makes Users.Create behave as if another caller inserted
	// a record named "winner" just before.
	raceOnCreate bool

	usersGetErr     error
	usersCreateErr  error
	setAvatarErr    error
	identityGetErr  error
	identityPutErr  error
	findPendingErr  error
	inviteCreateErr error
	getForUpdateErr error
	resolveErr      error
	inviteListErr   error
	friendCreateErr error
	friendListErr   error
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[string]*models.User{},
		identities:  map[string]*models.Identity{},
		invites:     map[string]*models.FriendInvite{},
		friendships: map[[2]string]*models.Friendship{},
	}
}

func (m *memStore) addUsers(ids ...string) {
	for _, id := range ids {
		m.users[id] = &models.User{ID: id, Username: id}
	}
}

type fakeUsers struct{ *memStore }

func (f fakeUsers) Get(_ context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.usersGetErr != nil {
		return nil, f.usersGetErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.usersCreateErr != nil {
		return nil, f.usersCreateErr
	}
	if f.raceOnCreate {
		f.users[u.ID] = &models.User{ID: u.ID, Username: "winner"}
		return nil, common.ErrAlreadyExists
	}
	if _, ok := f.users[u.ID]; ok {
		return nil, common.ErrAlreadyExists
	}
	f.userCreates++
	cp := *u
	f.users[u.ID] = &cp
	return u, nil
}

func (f fakeUsers) SetAvatarURL(_ context.Context, id, url string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setAvatarErr != nil {
		return f.setAvatarErr
	}
	u, ok := f.users[id]
	if !ok {
		return common.ErrNotFound
	}
	u.AvatarURL = &url
	return nil
}

type fakeIdentities struct{ *memStore }

func (f fakeIdentities) Get(_ context.Context, ref string) (*models.Identity, error) {
	if f.identityGetErr != nil {
		return nil, f.identityGetErr
	}
	i, ok := f.identities[ref]
	if !ok {
		return nil, common.ErrNotFound
	}
	return i, nil
}

func (f fakeIdentities) Upsert(_ context.Context, identity *models.Identity) error {
	if f.identityPutErr != nil {
		return f.identityPutErr
	}
	f.identities[identity.Ref] = identity
	return nil
}

type fakeInvites struct{ *memStore }

func (f fakeInvites) Create(_ context.Context, inv *models.FriendInvite) error {
	if f.inviteCreateErr != nil {
		return f.inviteCreateErr
	}
	for _, existing := range f.invites {
		if existing.FromUser == inv.FromUser && existing.ToUser == inv.ToUser && existing.Status == models.InviteStatusPending {
			return common.ErrDuplicatePending
		}
	}
	cp := *inv
	f.invites[inv.ID] = &cp
	return nil
}

func (f fakeInvites) Get(_ context.Context, id string) (*models.FriendInvite, error) {
	inv, ok := f.invites[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *inv
	return &cp, nil
}

func (f fakeInvites) GetForUpdate(ctx context.Context, id string) (*models.FriendInvite, error) {
	if f.getForUpdateErr != nil {
		return nil, f.getForUpdateErr
	}
	return f.Get(ctx, id)
}

func (f fakeInvites) FindPending(_ context.Context, from, to string) (*models.FriendInvite, error) {
	if f.findPendingErr != nil {
		return nil, f.findPendingErr
	}
	for _, inv := range f.invites {
		if inv.FromUser == from && inv.ToUser == to && inv.Status == models.InviteStatusPending {
			return inv, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f fakeInvites) Resolve(_ context.Context, id string, status models.InviteStatus) error {
	if f.resolveErr != nil {
		return f.resolveErr
	}
	inv, ok := f.invites[id]
	if !ok || inv.Status != models.InviteStatusPending {
		return common.ErrAlreadyResolved
	}
	inv.Status = status
	return nil
}

func (f fakeInvites) List(_ context.Context, user string, direction models.Direction, status *models.InviteStatus) ([]*models.FriendInvite, error) {
	if f.inviteListErr != nil {
		return nil, f.inviteListErr
	}
	var out []*models.FriendInvite
	for _, inv := range f.invites {
		side := inv.ToUser
		if direction == models.DirectionOutgoing {
			side = inv.FromUser
		}
		if side != user {
			continue
		}
		if status != nil && inv.Status != *status {
			continue
		}
		out = append(out, inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SentAt.Before(out[j].SentAt) })
	return out, nil
}

type fakeFriendships struct{ *memStore }

func (f fakeFriendships) Create(_ context.Context, fr *models.Friendship) (*models.Friendship, error) {
	if f.friendCreateErr != nil {
		return nil, f.friendCreateErr
	}
	a, b := models.CanonicalPair(fr.UserA, fr.UserB)
	if _, ok := f.friendships[[2]string{a, b}]; ok {
		return nil, common.ErrAlreadyExists
	}
	cp := *fr
	cp.UserA, cp.UserB = a, b
	f.friendships[[2]string{a, b}] = &cp
	return &cp, nil
}

func (f fakeFriendships) FindByPair(_ context.Context, a, b string) (*models.Friendship, error) {
	a, b = models.CanonicalPair(a, b)
	fr, ok := f.friendships[[2]string{a, b}]
	if !ok {
		return nil, common.ErrNotFound
	}
	return fr, nil
}

func (f fakeFriendships) ListForUser(_ context.Context, user string) ([]*models.Friendship, error) {
	if f.friendListErr != nil {
		return nil, f.friendListErr
	}
	var out []*models.Friendship
	for _, fr := range f.friendships {
		if fr.UserA == user || fr.UserB == user {
			out = append(out, fr)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Since.Before(out[j].Since) })
	return out, nil
}

type fakeRepoManager struct{ s *memStore }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return fakeUsers{m.s} }
func (m *fakeRepoManager) Identities(dbx.DBTX) identities.Repository    { return fakeIdentities{m.s} }
func (m *fakeRepoManager) Invites(dbx.DBTX) invites.Repository          { return fakeInvites{m.s} }
func (m *fakeRepoManager) Friendships(dbx.DBTX) friendships.Repository  { return fakeFriendships{m.s} }
