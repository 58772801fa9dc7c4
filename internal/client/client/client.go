package client

import (
	"context"

	"github.com/t4gged/t4gged/internal/client/models"
)

// RecordStore is the device's view of the remote record store. The acting
// user is always the identity behind the current token.
type RecordStore interface {
	Close() error
	Ping(ctx context.Context) error
	GetOrCreateUser(ctx context.Context, displayName string, overrideUsername *string) (*models.User, error)
	DiscoverDisplayName(ctx context.Context, ref string) (string, error)
	SendInvite(ctx context.Context, toUser string) (*models.Invite, error)
	RespondToInvite(ctx context.Context, inviteID string, accept bool) (*models.Invite, *models.Friendship, error)
	ListInvites(ctx context.Context, direction, status string) ([]*models.Invite, error)
	ListFriends(ctx context.Context) ([]*models.Friendship, error)
	PresignAvatarUpload(ctx context.Context) (uploadURL string, avatarURL string, err error)
}

// TokenSource supplies the identity token attached to outgoing calls.
// It returns common.ErrNoIdentity when nobody is signed in.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}
