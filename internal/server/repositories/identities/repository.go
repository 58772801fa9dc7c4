// Package identities stores the identity directory used for display name
// discovery.
package identities

import (
	"context"

	"github.com/t4gged/t4gged/internal/server/models"
)

type Repository interface {
	Get(ctx context.Context, ref string) (*models.Identity, error)
	// Upsert registers ref or replaces its given name.
	Upsert(ctx context.Context, identity *models.Identity) error
}
