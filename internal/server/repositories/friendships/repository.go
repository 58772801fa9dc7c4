// Package friendships stores friendships, one row per unordered pair.
package friendships

import (
	"context"

	"github.com/t4gged/t4gged/internal/server/models"
)

type Repository interface {
	// Create stores f in canonical order. If the pair is already friends it
	// returns common.ErrAlreadyExists.
	Create(ctx context.Context, f *models.Friendship) (*models.Friendship, error)
	FindByPair(ctx context.Context, a, b string) (*models.Friendship, error)
	ListForUser(ctx context.Context, user string) ([]*models.Friendship, error)
}
