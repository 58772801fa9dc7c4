package models

import "time"

// User is a remote user record. AvatarURL is nil when no avatar is set.
type User struct {
	ID        string
	Username  string
	AvatarURL *string
	CreatedAt time.Time
}

type Invite struct {
	ID       string
	FromUser string
	ToUser   string
	Status   string
	SentAt   time.Time
}

type Friendship struct {
	ID    string
	UserA string
	UserB string
	Since time.Time
}
