package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/t4gged/t4gged/internal/common"
	"github.com/t4gged/t4gged/internal/dbx"
	"github.com/t4gged/t4gged/internal/logging"
	"github.com/t4gged/t4gged/internal/server/models"
	"github.com/t4gged/t4gged/internal/server/repositories/repomanager"
)

// InviteService runs the friend invite lifecycle:
// pending -> accepted (creating a friendship) or pending -> declined.
type InviteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	now         func() time.Time
	newID       func() string
}

func NewInviteService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *InviteService {
	return &InviteService{
		db:          db,
		repomanager: m,
		logger:      logger.With("module", "invites"),
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// storeErr passes through any of the listed sentinels and wraps everything
// else in a StoreError.
func storeErr(op string, err error, passthrough ...error) error {
	for _, p := range passthrough {
		if errors.Is(err, p) {
			return p
		}
	}
	return common.NewStoreError(op, err)
}

// SendInvite stores a pending invite from -> to.
func (s *InviteService) SendInvite(ctx context.Context, from, to string) (*models.FriendInvite, error) {
	if from == "" || to == "" {
		return nil, common.ErrInvalidArgument
	}
	if from == to {
		return nil, common.ErrSelfInvite
	}

	users := s.repomanager.Users(s.db)
	for _, id := range []string{from, to} {
		if _, err := users.Get(ctx, id); err != nil {
			return nil, storeErr("fetch user", err, common.ErrNotFound)
		}
	}

	repo := s.repomanager.Invites(s.db)

	_, err := repo.FindPending(ctx, from, to)
	if err == nil {
		return nil, common.ErrDuplicatePending
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, common.NewStoreError("fetch invite", err)
	}

	invite := &models.FriendInvite{
		ID:       s.newID(),
		FromUser: from,
		ToUser:   to,
		Status:   models.InviteStatusPending,
		SentAt:   s.now().UTC(),
	}

	if err := repo.Create(ctx, invite); err != nil {
		return nil, storeErr("save invite", err, common.ErrDuplicatePending, common.ErrNotFound)
	}

	s.logger.Info(ctx, "invite sent", "invite", invite.ID, "from", from, "to", to)
	return invite, nil
}

// RespondToInvite accepts or declines an invite addressed to responder.
// The status change and, on accept, the friendship commit together. If
// the two users are already friends the existing friendship is returned.
func (s *InviteService) RespondToInvite(ctx context.Context, responder, inviteID string, accept bool) (*models.FriendInvite, *models.Friendship, error) {
	if inviteID == "" {
		return nil, nil, common.ErrInvalidArgument
	}

	var (
		invite     *models.FriendInvite
		friendship *models.Friendship
	)

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		invites := s.repomanager.Invites(tx)

		inv, err := invites.GetForUpdate(ctx, inviteID)
		if err != nil {
			return storeErr("fetch invite", err, common.ErrNotFound)
		}
		if inv.ToUser != responder {
			return common.ErrNotRecipient
		}
		if inv.Status != models.InviteStatusPending {
			return common.ErrAlreadyResolved
		}

		status := models.InviteStatusDeclined
		if accept {
			status = models.InviteStatusAccepted
		}
		if err := invites.Resolve(ctx, inv.ID, status); err != nil {
			return storeErr("update invite", err, common.ErrAlreadyResolved)
		}
		inv.Status = status
		invite = inv

		if !accept {
			return nil
		}

		friendships := s.repomanager.Friendships(tx)
		f, err := friendships.Create(ctx, models.NewFriendship(s.newID(), inv.FromUser, inv.ToUser, s.now().UTC()))
		if errors.Is(err, common.ErrAlreadyExists) {
			f, err = friendships.FindByPair(ctx, inv.FromUser, inv.ToUser)
		}
		if err != nil {
			return storeErr("save friendship", err)
		}
		friendship = f
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrStore) || isInviteError(err) {
			return nil, nil, err
		}
		// begin or commit failed
		return nil, nil, common.NewStoreError("respond to invite", err)
	}

	s.logger.Info(ctx, "invite resolved", "invite", invite.ID, "status", string(invite.Status))
	return invite, friendship, nil
}

func isInviteError(err error) bool {
	for _, e := range []error{common.ErrNotFound, common.ErrNotRecipient, common.ErrAlreadyResolved} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

// ListInvites returns the user's incoming or outgoing invites, oldest first.
// A nil status lists every status.
func (s *InviteService) ListInvites(ctx context.Context, user string, direction models.Direction, status *models.InviteStatus) ([]*models.FriendInvite, error) {
	if _, err := models.ParseDirection(string(direction)); err != nil {
		return nil, common.ErrInvalidArgument
	}

	list, err := s.repomanager.Invites(s.db).List(ctx, user, direction, status)
	if err != nil {
		return nil, common.NewStoreError("list invites", err)
	}
	return list, nil
}

// ListFriendships returns the user's friendships, oldest first.
func (s *InviteService) ListFriendships(ctx context.Context, user string) ([]*models.Friendship, error) {
	list, err := s.repomanager.Friendships(s.db).ListForUser(ctx, user)
	if err != nil {
		return nil, common.NewStoreError("list friendships", err)
	}
	return list, nil
}
