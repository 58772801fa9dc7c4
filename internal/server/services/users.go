// Package services contains the record-store business logic: user records,
// the identity directory, friend invites and avatar uploads.
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/t4gged/t4gged/internal/common"
	"github.com/t4gged/t4gged/internal/logging"
	"github.com/t4gged/t4gged/internal/server/models"
	"github.com/t4gged/t4gged/internal/server/repositories/repomanager"
)

// UserService owns remote user records and the identity directory.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	now         func() time.Time
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		logger:      logger.With("module", "users"),
		now:         time.Now,
	}
}

// GetOrCreateUser returns the record keyed by identityRef, creating it on
// first sight. A stored record is returned unchanged, so a second call
// writes nothing. A new record is named after overrideUsername, then
// displayName, then common.DefaultUsername; empty strings count as absent.
//
// When a concurrent call creates the record first, the winner's record is
// returned.
func (s *UserService) GetOrCreateUser(ctx context.Context, identityRef, displayName string, overrideUsername *string) (*models.User, error) {
	if identityRef == "" {
		return nil, common.ErrIdentityUnavailable
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.Get(ctx, identityRef)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, common.NewStoreError("fetch user", err)
	}

	user = &models.User{
		ID:        identityRef,
		Username:  chooseUsername(displayName, overrideUsername),
		CreatedAt: s.now().UTC(),
	}

	created, err := repo.Create(ctx, user)
	if err == nil {
		s.logger.Info(ctx, "user created", "user", created.ID)
		return created, nil
	}
	if !errors.Is(err, common.ErrAlreadyExists) {
		return nil, common.NewStoreError("save user", err)
	}

	s.logger.Debug(ctx, "user created concurrently, re-reading", "user", identityRef)
	winner, err := repo.Get(ctx, identityRef)
	if err != nil {
		return nil, common.NewStoreError("fetch user", err)
	}
	return winner, nil
}

func chooseUsername(displayName string, overrideUsername *string) string {
	if overrideUsername != nil && *overrideUsername != "" {
		return *overrideUsername
	}
	if displayName != "" {
		return displayName
	}
	return common.DefaultUsername
}

// DiscoverDisplayName returns the given name registered for ref.
// Unknown refs yield common.ErrNotFound.
func (s *UserService) DiscoverDisplayName(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return "", common.ErrInvalidArgument
	}

	identity, err := s.repomanager.Identities(s.db).Get(ctx, ref)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrNotFound
		}
		return "", common.NewStoreError("fetch identity", err)
	}
	return identity.GivenName, nil
}

// RegisterIdentity adds ref to the identity directory or renames it.
func (s *UserService) RegisterIdentity(ctx context.Context, ref, givenName string) error {
	if ref == "" {
		return common.ErrInvalidArgument
	}

	identity := &models.Identity{Ref: ref, GivenName: givenName, CreatedAt: s.now().UTC()}
	if err := s.repomanager.Identities(s.db).Upsert(ctx, identity); err != nil {
		return common.NewStoreError("save identity", err)
	}
	return nil
}
