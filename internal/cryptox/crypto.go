// Package cryptox derives and checks passcode verifiers for the local profile.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 16
	keySize  = 32
)

var ErrEmptyPasscode = errors.New("empty passcode")

// DeriveKey stretches passcode with argon2id.
func DeriveKey(passcode []byte, salt []byte) []byte {
	return argon2.IDKey(passcode, salt, 1, 64*1024, 4, keySize)
}

// NewPasscodeVerifier returns a fresh random salt and the verifier derived
// from passcode and that salt. Only the pair is stored, never the passcode.
func NewPasscodeVerifier(passcode []byte) (salt []byte, verifier []byte, err error) {
	if len(passcode) == 0 {
		return nil, nil, ErrEmptyPasscode
	}
	salt = make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, err
	}
	return salt, DeriveKey(passcode, salt), nil
}

// VerifyPasscode compares in constant time.
func VerifyPasscode(passcode, salt, verifier []byte) bool {
	if len(salt) == 0 || len(verifier) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(DeriveKey(passcode, salt), verifier) == 1
}
