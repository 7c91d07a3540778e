package github

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// PageSize is the fetch page size (GitHub's maximum).
	PageSize = 100

	// authenticatedQuota is the authenticated hourly request quota.
	authenticatedQuota = 5000

	// proactiveRate is the self-imposed request rate (~4300/hour),
	// keeping well under the quota without serialising every call.
	proactiveRate = 1.2

	// minBuffer is the remaining-request floor below which the limiter
	// waits for the quota reset instead of spending the reserve.
	minBuffer = 100

	headerRateLimit     = "X-RateLimit-Limit"
	headerRateRemaining = "X-RateLimit-Remaining"
	headerRateReset     = "X-RateLimit-Reset"
)

// Limiter throttles GitHub API calls with two strategies: a proactive
// token bucket, and reactive tracking of the quota headers the host
// returns on every response.
type Limiter struct {
	mu        sync.Mutex
	remaining int
	limit     int
	resetAt   time.Time
	bucket    *rate.Limiter
}

// NewLimiter creates a limiter assuming a full authenticated quota.
func NewLimiter() *Limiter {
	return &Limiter{
		remaining: authenticatedQuota,
		limit:     authenticatedQuota,
		bucket:    rate.NewLimiter(rate.Limit(proactiveRate), 1),
	}
}

// Wait blocks until it is safe to make a request.
func (l *Limiter) Wait(ctx context.Context) error {
	if err := l.bucket.Wait(ctx); err != nil {
		return err
	}

	l.mu.Lock()
	remaining := l.remaining
	resetAt := l.resetAt
	l.mu.Unlock()

	if remaining >= minBuffer || time.Now().After(resetAt) {
		return nil
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(time.Until(resetAt)):
		return nil
	}
}

// UpdateFromResponse records the quota headers from a host response.
func (l *Limiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if v := resp.Header.Get(headerRateRemaining); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			l.remaining = n
		}
	}
	if v := resp.Header.Get(headerRateLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			l.limit = n
		}
	}
	if v := resp.Header.Get(headerRateReset); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			l.resetAt = time.Unix(n, 0)
		}
	}
}

// Remaining returns the last observed remaining request count.
func (l *Limiter) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.remaining
}

// Limit returns the last observed quota limit.
func (l *Limiter) Limit() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.limit
}

// ResetAt returns the last observed quota reset time.
func (l *Limiter) ResetAt() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.resetAt
}
