// Package profiles is the device's local profile store, one SQLite row per
// record name.
package profiles

import (
	"context"

	"github.com/t4gged/t4gged/internal/client/models"
)

type Repository interface {
	// Save inserts the profile or replaces every field of the row with the
	// same record name.
	Save(ctx context.Context, p *models.Profile) error
	// Get returns common.ErrNotFound when no row has this record name.
	Get(ctx context.Context, recordName string) (*models.Profile, error)
	// Current returns the most recently saved profile, or common.ErrNotFound.
	Current(ctx context.Context) (*models.Profile, error)
	// Delete removes the row; deleting an absent row is not an error.
	Delete(ctx context.Context, recordName string) error
}
