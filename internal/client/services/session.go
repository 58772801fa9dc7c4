package services

import (
	"context"
	"errors"
	"time"

	"github.com/t4gged/t4gged/internal/client/client"
	"github.com/t4gged/t4gged/internal/client/identity"
	"github.com/t4gged/t4gged/internal/client/models"
	"github.com/t4gged/t4gged/internal/client/repositories/profiles"
	"github.com/t4gged/t4gged/internal/common"
	"github.com/t4gged/t4gged/internal/logging"
)

var timeNow = time.Now

type IdentityResolver interface {
	Resolve(ctx context.Context) (*identity.Identity, error)
}

// SessionService signs the device user in and keeps the local profile in
// step with the remote user record.
type SessionService interface {
	SignIn(ctx context.Context, overrideUsername *string) (*models.Profile, error)
	Current(ctx context.Context) (*models.Profile, error)
	SignOut(ctx context.Context) error
}

type sessionService struct {
	resolver IdentityResolver
	store    client.RecordStore
	profiles profiles.Repository
	writer   *ProfileWriter
	logger   logging.Logger
}

func NewSessionService(r IdentityResolver, s client.RecordStore, repo profiles.Repository, w *ProfileWriter, logger logging.Logger) SessionService {
	return &sessionService{resolver: r, store: s, profiles: repo, writer: w, logger: logger.With("module", "session")}
}

// SignIn resolves the identity, fetches or creates its user record and
// saves the username into the local profile. Email, avatar and passcode
// already stored for the same record are kept. Resolver failures are
// returned as they are and the record store is never called.
func (s *sessionService) SignIn(ctx context.Context, overrideUsername *string) (*models.Profile, error) {
	id, err := s.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.store.GetOrCreateUser(ctx, id.DisplayName, overrideUsername)
	if err != nil {
		return nil, err
	}

	p, err := s.writer.Update(ctx, user.ID, func(p *models.Profile) error {
		username := user.Username
		p.Username = &username
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "signed in", "record", user.ID, "username", user.Username)
	return p, nil
}

func (s *sessionService) Current(ctx context.Context) (*models.Profile, error) {
	p, err := s.profiles.Current(ctx)
	if errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrNotSignedIn
	}
	if err != nil {
		return nil, wrapLocal("load profile", err)
	}
	return p, nil
}

func (s *sessionService) SignOut(ctx context.Context) error {
	p, err := s.Current(ctx)
	if err != nil {
		return err
	}
	if err := s.writer.Delete(ctx, p.RecordName); err != nil {
		return err
	}
	s.logger.Info(ctx, "signed out", "record", p.RecordName)
	return nil
}
