// Package users stores remote user records.
package users

import (
	"context"

	"github.com/t4gged/t4gged/internal/server/models"
)

type Repository interface {
	// Get returns common.ErrNotFound when no record has this id.
	Get(ctx context.Context, id string) (*models.User, error)
	// Create inserts user unless a record with the same id exists, in which
	// case it returns common.ErrAlreadyExists and leaves the stored record.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	SetAvatarURL(ctx context.Context, id string, url string) error
}
