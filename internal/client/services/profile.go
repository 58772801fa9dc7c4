package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/t4gged/t4gged/internal/client/client"
	"github.com/t4gged/t4gged/internal/client/models"
	"github.com/t4gged/t4gged/internal/common"
	"github.com/t4gged/t4gged/internal/cryptox"
	"github.com/t4gged/t4gged/internal/netx"
)

var (
	newPasscodeVerifier = cryptox.NewPasscodeVerifier
	verifyPasscode      = cryptox.VerifyPasscode
	uploadAvatar        = netx.UploadToPresignedURL
)

// ProfileService edits the signed-in user's local profile.
type ProfileService interface {
	SetEmail(ctx context.Context, email string) (*models.Profile, error)
	SetPasscode(ctx context.Context, passcode []byte) error
	VerifyPasscode(ctx context.Context, passcode []byte) error
	SetAvatar(ctx context.Context, data []byte) (avatarURL string, err error)
}

type profileService struct {
	session SessionService
	store   client.RecordStore
	writer  *ProfileWriter
	http    *http.Client
}

func NewProfileService(session SessionService, store client.RecordStore, w *ProfileWriter, hc *http.Client) ProfileService {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &profileService{session: session, store: store, writer: w, http: hc}
}

func (s *profileService) edit(ctx context.Context, fn func(p *models.Profile) error) (*models.Profile, error) {
	current, err := s.session.Current(ctx)
	if err != nil {
		return nil, err
	}
	return s.writer.Update(ctx, current.RecordName, fn)
}

// SetEmail stores the address; an empty address clears it.
func (s *profileService) SetEmail(ctx context.Context, email string) (*models.Profile, error) {
	email = strings.TrimSpace(email)
	if email != "" && !strings.Contains(email, "@") {
		return nil, common.ErrInvalidArgument
	}
	return s.edit(ctx, func(p *models.Profile) error {
		if email == "" {
			p.Email = nil
			return nil
		}
		p.Email = &email
		return nil
	})
}

func (s *profileService) SetPasscode(ctx context.Context, passcode []byte) error {
	salt, verifier, err := newPasscodeVerifier(passcode)
	if err != nil {
		if errors.Is(err, cryptox.ErrEmptyPasscode) {
			return common.ErrInvalidArgument
		}
		return err
	}
	_, err = s.edit(ctx, func(p *models.Profile) error {
		p.PasscodeSalt = salt
		p.PasscodeVerifier = verifier
		return nil
	})
	return err
}

// VerifyPasscode succeeds when no passcode is set.
func (s *profileService) VerifyPasscode(ctx context.Context, passcode []byte) error {
	p, err := s.session.Current(ctx)
	if err != nil {
		return err
	}
	if !p.HasPasscode() {
		return nil
	}
	if !verifyPasscode(passcode, p.PasscodeSalt, p.PasscodeVerifier) {
		return common.ErrWrongPasscode
	}
	return nil
}

// SetAvatar uploads the image to a presigned URL and keeps the bytes in
// the local profile. The local copy is only written after the upload.
func (s *profileService) SetAvatar(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", common.ErrInvalidArgument
	}
	if _, err := s.session.Current(ctx); err != nil {
		return "", err
	}

	uploadURL, avatarURL, err := s.store.PresignAvatarUpload(ctx)
	if err != nil {
		return "", err
	}
	if err := uploadAvatar(ctx, s.http, uploadURL, netx.DetectImageType(data), data); err != nil {
		return "", common.NewStoreError("upload avatar", err)
	}

	_, err = s.edit(ctx, func(p *models.Profile) error {
		p.AvatarData = append([]byte(nil), data...)
		return nil
	})
	if err != nil {
		return "", err
	}
	return avatarURL, nil
}
