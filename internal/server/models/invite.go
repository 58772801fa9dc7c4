package models

import (
	"fmt"
	"time"
)

type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusDeclined InviteStatus = "declined"
)

// ParseInviteStatus accepts the stored spelling of a status.
func ParseInviteStatus(s string) (InviteStatus, error) {
	switch st := InviteStatus(s); st {
	case InviteStatusPending, InviteStatusAccepted, InviteStatusDeclined:
		return st, nil
	default:
		return "", fmt.Errorf("unknown invite status %q", s)
	}
}

// Terminal reports whether no further transition is allowed.
func (s InviteStatus) Terminal() bool {
	return s == InviteStatusAccepted || s == InviteStatusDeclined
}

// Direction selects invites by the user's side of them.
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case DirectionIncoming, DirectionOutgoing:
		return d, nil
	default:
		return "", fmt.Errorf("unknown invite direction %q", s)
	}
}

type FriendInvite struct {
	ID       string       `db:"id"`
	FromUser string       `db:"from_user"`
	ToUser   string       `db:"to_user"`
	Status   InviteStatus `db:"status"`
	SentAt   time.Time    `db:"sent_at"`
}
