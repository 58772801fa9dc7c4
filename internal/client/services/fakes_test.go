package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/t4gged/t4gged/internal/client/client"
	"github.com/t4gged/t4gged/internal/client/identity"
	"github.com/t4gged/t4gged/internal/client/models"
	"github.com/t4gged/t4gged/internal/client/repositories/profiles"
	"github.com/t4gged/t4gged/internal/logging"
)

func nopLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupRepo(t *testing.T) *profiles.SQLiteRepository {
	t.Helper()
	db, err := client.OpenDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return profiles.NewSQLiteRepository(db)
}

func setupWriter(t *testing.T, repo profiles.Repository) *ProfileWriter {
	t.Helper()
	w := NewProfileWriter(repo)
	t.Cleanup(w.Close)
	return w
}

type fakeResolver struct {
	id  *identity.Identity
	err error
}

func (f *fakeResolver) Resolve(context.Context) (*identity.Identity, error) {
	return f.id, f.err
}

// fakeStore is an in-memory client.RecordStore keyed by the fixed caller ref.
type fakeStore struct {
	mu sync.Mutex

	ref      string
	username string

	getOrCreateCalls int
	lastDisplayName  string
	lastOverride     *string
	sent             []string
	responded        map[string]bool
	lastDirection    string
	lastStatus       string
	presignCalls     int

	getOrCreateErr error
	sendErr        error
	respondErr     error
	presignErr     error
}

func newFakeStore(ref string) *fakeStore {
	return &fakeStore{ref: ref, responded: map[string]bool{}}
}

func (f *fakeStore) Close() error                   { return nil }
func (f *fakeStore) Ping(ctx context.Context) error { return nil }

func (f *fakeStore) GetOrCreateUser(_ context.Context, displayName string, override *string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getOrCreateCalls++
	f.lastDisplayName = displayName
	f.lastOverride = override
	if f.getOrCreateErr != nil {
		return nil, f.getOrCreateErr
	}
	if f.username == "" {
		f.username = displayName
		if override != nil && *override != "" {
			f.username = *override
		}
	}
	return &models.User{ID: f.ref, Username: f.username}, nil
}

func (f *fakeStore) DiscoverDisplayName(context.Context, string) (string, error) {
	return "", nil
}

func (f *fakeStore) SendInvite(_ context.Context, to string) (*models.Invite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, to)
	return &models.Invite{ID: "inv-1", FromUser: f.ref, ToUser: to, Status: "pending"}, nil
}

func (f *fakeStore) RespondToInvite(_ context.Context, id string, accept bool) (*models.Invite, *models.Friendship, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.respondErr != nil {
		return nil, nil, f.respondErr
	}
	f.responded[id] = accept
	if !accept {
		return &models.Invite{ID: id, ToUser: f.ref, Status: "declined"}, nil, nil
	}
	return &models.Invite{ID: id, ToUser: f.ref, Status: "accepted"}, &models.Friendship{ID: "fr-1", UserA: "other", UserB: f.ref}, nil
}

func (f *fakeStore) ListInvites(_ context.Context, direction, status string) ([]*models.Invite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastDirection, f.lastStatus = direction, status
	return []*models.Invite{{ID: "inv-1"}}, nil
}

func (f *fakeStore) ListFriends(context.Context) ([]*models.Friendship, error) {
	return []*models.Friendship{{ID: "fr-1"}}, nil
}

func (f *fakeStore) PresignAvatarUpload(context.Context) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.presignCalls++
	if f.presignErr != nil {
		return "", "", f.presignErr
	}
	return "http://upload.test/put", "http://cdn.test/avatars/" + f.ref, nil
}

func strPtr(s string) *string { return &s }
