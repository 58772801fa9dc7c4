// Package models defines the records the device keeps locally and the
// remote records it reads back from the record store.
package models

import (
	"time"

	"github.com/t4gged/t4gged/internal/common"
)

// Profile is the device-local projection of the signed-in user.
// RecordName is the remote record ID and never changes once stored.
// The passcode itself is never kept; PasscodeSalt and PasscodeVerifier
// hold an argon2id verifier instead.
type Profile struct {
	RecordName       string
	Username         *string
	AvatarData       []byte
	Email            *string
	PasscodeSalt     []byte
	PasscodeVerifier []byte
	UpdatedAt        time.Time
}

func (p *Profile) HasPasscode() bool {
	return len(p.PasscodeVerifier) > 0
}

// DisplayName is the username, or common.DefaultUsername when unset.
func (p *Profile) DisplayName() string {
	if p.Username == nil || *p.Username == "" {
		return common.DefaultUsername
	}
	return *p.Username
}
