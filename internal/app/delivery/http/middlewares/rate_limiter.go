package middlewares

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// LoginAttemptLimiter throttles login attempts per username. A username that
// exhausts its burst is blocked for blockTime. Usernames idle for longer than
// per+blockTime are forgotten.
type LoginAttemptLimiter struct {
	attempts  map[string]*loginAttempts
	mu        sync.Mutex
	burst     int
	per       time.Duration
	blockTime time.Duration
	lastSweep time.Time
	now       func() time.Time
}

type loginAttempts struct {
	limiter      *rate.Limiter
	blockedUntil time.Time
	lastSeen     time.Time
}

func NewLoginAttemptLimiter(attempts int, per, blockTime time.Duration) *LoginAttemptLimiter {
	return &LoginAttemptLimiter{
		attempts:  make(map[string]*loginAttempts),
		burst:     attempts,
		per:       per,
		blockTime: blockTime,
		now:       time.Now,
	}
}

// Allow records one attempt for username and reports whether it may proceed.
// When it may not, retryAfter tells how long the block lasts.
func (l *LoginAttemptLimiter) Allow(username string) (allowed bool, retryAfter time.Duration) {
	key := normalizeUsername(username)
	if key == "" || l.burst <= 0 {
		return true, 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	entry, exists := l.attempts[key]
	if exists && !entry.blockedUntil.IsZero() {
		if now.Before(entry.blockedUntil) {
			entry.lastSeen = now
			return false, entry.blockedUntil.Sub(now)
		}
		exists = false
	}
	if !exists {
		entry = &loginAttempts{
			limiter: rate.NewLimiter(rate.Every(l.per/time.Duration(l.burst)), l.burst),
		}
		l.attempts[key] = entry
	}
	entry.lastSeen = now

	if !entry.limiter.AllowN(now, 1) {
		entry.blockedUntil = now.Add(l.blockTime)
		return false, l.blockTime
	}
	return true, 0
}

// Reset forgets the attempts of username, used after a successful login.
func (l *LoginAttemptLimiter) Reset(username string) {
	key := normalizeUsername(username)

	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.attempts, key)
}

// Len reports how many usernames are currently tracked.
func (l *LoginAttemptLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.attempts)
}

// sweep runs at most once per window. An entry idle for per+blockTime has a
// full bucket and no active block, so dropping it changes no decision.
func (l *LoginAttemptLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.per {
		return
	}
	l.lastSweep = now

	idleAfter := l.per + l.blockTime
	for key, entry := range l.attempts {
		if now.Sub(entry.lastSeen) > idleAfter {
			delete(l.attempts, key)
		}
	}
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
