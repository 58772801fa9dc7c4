// Package models defines the records the record-store server persists.
package models

import "time"

// User is the remote user record, keyed by the identity reference.
type User struct {
	ID        string    `db:"id"`
	Username  string    `db:"username"`
	AvatarURL *string   `db:"avatar_url"`
	CreatedAt time.Time `db:"created_at"`
}

// Identity is an identity directory entry consulted by display name discovery.
type Identity struct {
	Ref       string    `db:"identity_ref"`
	GivenName string    `db:"given_name"`
	CreatedAt time.Time `db:"created_at"`
}
