package grpc

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// InviteLimiter keeps one token bucket per identity.
type InviteLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewInviteLimiter allows perMinute invites per identity with the given burst.
func NewInviteLimiter(perMinute, burst int) *InviteLimiter {
	if burst < 1 {
		burst = 1
	}
	return &InviteLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Every(time.Minute / time.Duration(max(perMinute, 1))),
		burst:    burst,
	}
}

func (l *InviteLimiter) Allow(identity string) bool {
	l.mu.Lock()
	lim, ok := l.limiters[identity]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.limiters[identity] = lim
	}
	l.mu.Unlock()

	return lim.Allow()
}
