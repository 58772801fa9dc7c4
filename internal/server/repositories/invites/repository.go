// Package invites stores friend invites. Invites are never deleted.
package invites

import (
	"context"

	"github.com/t4gged/t4gged/internal/server/models"
)

type Repository interface {
	// Create fails with common.ErrDuplicatePending when a pending invite for
	// the same ordered pair exists and common.ErrNotFound when either user
	// has no record.
	Create(ctx context.Context, invite *models.FriendInvite) error
	Get(ctx context.Context, id string) (*models.FriendInvite, error)
	// GetForUpdate is Get with a row lock; use it inside a transaction.
	GetForUpdate(ctx context.Context, id string) (*models.FriendInvite, error)
	FindPending(ctx context.Context, from, to string) (*models.FriendInvite, error)
	// Resolve moves a pending invite to status. An invite that is no longer
	// pending yields common.ErrAlreadyResolved.
	Resolve(ctx context.Context, id string, status models.InviteStatus) error
	List(ctx context.Context, user string, direction models.Direction, status *models.InviteStatus) ([]*models.FriendInvite, error)
}
