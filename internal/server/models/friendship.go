package models

import "time"

// Friendship links two users. UserA < UserB always holds, so each unordered
// pair has exactly one spelling.
type Friendship struct {
	ID    string    `db:"id"`
	UserA string    `db:"user_a"`
	UserB string    `db:"user_b"`
	Since time.Time `db:"since"`
}

// CanonicalPair orders a pair the way friendships store it: bytewise, as the
// COLLATE "C" check on the table does.
func CanonicalPair(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}

func NewFriendship(id, a, b string, since time.Time) *Friendship {
	userA, userB := CanonicalPair(a, b)
	return &Friendship{ID: id, UserA: userA, UserB: userB, Since: since}
}

// Peer returns the other side of the friendship for user.
func (f *Friendship) Peer(user string) string {
	if f.UserA == user {
		return f.UserB
	}
	return f.UserA
}
