package services

import (
	"context"
	"strings"

	"github.com/t4gged/t4gged/internal/client/client"
	"github.com/t4gged/t4gged/internal/client/models"
	"github.com/t4gged/t4gged/internal/common"
	"github.com/t4gged/t4gged/internal/logging"
)

// InviteService sends and answers friend invites for the signed-in user.
// Every call needs a local profile; ErrNotSignedIn is returned otherwise.
type InviteService interface {
	Send(ctx context.Context, toUser string) (*models.Invite, error)
	Accept(ctx context.Context, inviteID string) (*models.Invite, *models.Friendship, error)
	Decline(ctx context.Context, inviteID string) (*models.Invite, error)
	List(ctx context.Context, direction, status string) ([]*models.Invite, error)
	Friends(ctx context.Context) ([]*models.Friendship, error)
}

type inviteService struct {
	session SessionService
	store   client.RecordStore
	logger  logging.Logger
}

func NewInviteService(session SessionService, store client.RecordStore, logger logging.Logger) InviteService {
	return &inviteService{session: session, store: store, logger: logger.With("module", "invites")}
}

func (s *inviteService) Send(ctx context.Context, toUser string) (*models.Invite, error) {
	toUser = strings.TrimSpace(toUser)
	if toUser == "" {
		return nil, common.ErrInvalidArgument
	}
	p, err := s.session.Current(ctx)
	if err != nil {
		return nil, err
	}
	if p.RecordName == toUser {
		return nil, common.ErrSelfInvite
	}

	inv, err := s.store.SendInvite(ctx, toUser)
	if err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "invite sent", "invite", inv.ID, "to", toUser)
	return inv, nil
}

func (s *inviteService) respond(ctx context.Context, inviteID string, accept bool) (*models.Invite, *models.Friendship, error) {
	inviteID = strings.TrimSpace(inviteID)
	if inviteID == "" {
		return nil, nil, common.ErrInvalidArgument
	}
	if _, err := s.session.Current(ctx); err != nil {
		return nil, nil, err
	}
	return s.store.RespondToInvite(ctx, inviteID, accept)
}

func (s *inviteService) Accept(ctx context.Context, inviteID string) (*models.Invite, *models.Friendship, error) {
	return s.respond(ctx, inviteID, true)
}

func (s *inviteService) Decline(ctx context.Context, inviteID string) (*models.Invite, error) {
	inv, _, err := s.respond(ctx, inviteID, false)
	return inv, err
}

// List defaults to incoming invites of any status.
func (s *inviteService) List(ctx context.Context, direction, status string) ([]*models.Invite, error) {
	if _, err := s.session.Current(ctx); err != nil {
		return nil, err
	}
	if direction == "" {
		direction = "incoming"
	}
	return s.store.ListInvites(ctx, direction, status)
}

func (s *inviteService) Friends(ctx context.Context) ([]*models.Friendship, error) {
	if _, err := s.session.Current(ctx); err != nil {
		return nil, err
	}
	return s.store.ListFriends(ctx)
}
