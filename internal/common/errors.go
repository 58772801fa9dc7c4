package common

import (
	"errors"
	"fmt"
)

var (
	// Identity errors.
	ErrNoIdentity          = errors.New("no identity")
	ErrIdentityUnavailable = errors.New("identity unavailable")
	ErrInvalidToken        = errors.New("invalid token")

	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Invite errors.
	ErrAlreadyResolved  = errors.New("invite already resolved")
	ErrSelfInvite       = errors.New("cannot invite yourself")
	ErrDuplicatePending = errors.New("pending invite already exists")
	ErrNotRecipient     = errors.New("only the recipient can respond to an invite")

	// Transport and request errors.
	ErrRateLimited     = errors.New("rate limited")
	ErrInvalidArgument = errors.New("invalid argument")

	// Device errors.
	ErrNotSignedIn   = errors.New("not signed in")
	ErrWrongPasscode = errors.New("wrong passcode")

	// ErrStore is matched by every *StoreError.
	ErrStore = errors.New("store error")
)

// StoreError reports a failed remote or local store operation.
// errors.Is(err, ErrStore) holds for any StoreError; Unwrap exposes the cause.
type StoreError struct {
	Op  string
	Err error
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("store error: %s", e.Op)
	}
	return fmt.Sprintf("store error: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Is(target error) bool { return target == ErrStore }
