package auth

import (
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	rateLimitWindow  = 1 * time.Minute
	rateLimitMaxFail = 10
)

// LoginLimiter tracks failed logins per client address.
type LoginLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	now      func() time.Time
}

// NewLoginLimiter creates an empty limiter.
func NewLoginLimiter() *LoginLimiter {
	return &LoginLimiter{
		attempts: make(map[string][]time.Time),
		now:      time.Now,
	}
}

// Limited reports whether the client has used up its failures for the
// current window.
func (l *LoginLimiter) Limited(r *http.Request) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.prune(clientIP(r))) >= rateLimitMaxFail
}

// Fail records a failed attempt.
func (l *LoginLimiter) Fail(r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ip := clientIP(r)
	l.attempts[ip] = append(l.prune(ip), l.now())
}

// prune must be called with mu held.
func (l *LoginLimiter) prune(ip string) []time.Time {
	cutoff := l.now().Add(-rateLimitWindow)

	valid := l.attempts[ip][:0]
	for _, t := range l.attempts[ip] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		delete(l.attempts, ip)
		return nil
	}
	l.attempts[ip] = valid
	return valid
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
