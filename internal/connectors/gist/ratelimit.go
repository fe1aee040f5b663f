package gist

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
)

const (
	// DefaultRateLimit is the authenticated rate limit (5000/hour).
	DefaultRateLimit = 5000

	// ProactiveRate is the proactive throttle rate (~1.2 req/sec).
	ProactiveRate = 1.2

	// MinBuffer is the minimum remaining requests before waiting for reset.
	MinBuffer = 50

	// HeaderRateLimit is the rate limit header.
	HeaderRateLimit = "X-RateLimit-Limit"

	// HeaderRateRemaining is the remaining requests header.
	HeaderRateRemaining = "X-RateLimit-Remaining"

	// HeaderRateReset is the reset timestamp header (Unix seconds).
	HeaderRateReset = "X-RateLimit-Reset"

	// HeaderRateUsed is the used requests header.
	HeaderRateUsed = "X-RateLimit-Used"

	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"
)

// Tracker maintains the remote API's reported quota and implements
// dual-strategy rate limiting: proactive token-bucket throttling plus
// reactive header tracking. It also derives the debounce multiplier
// auto-sync applies to its base delay.
type Tracker struct {
	mu      sync.Mutex
	quota   domain.RateQuota
	fresh   bool          // true once the first header refresh replaced the defaults
	bucket  *rate.Limiter // proactive throttling
	minBuf  int
}

// NewTracker creates a tracker assuming full quota until the first
// response refreshes it.
func NewTracker() *Tracker {
	return &Tracker{
		quota: domain.RateQuota{
			Limit:     DefaultRateLimit,
			Remaining: DefaultRateLimit,
		},
		bucket: rate.NewLimiter(rate.Limit(ProactiveRate), 1),
		minBuf: MinBuffer,
	}
}

// Wait blocks until it's safe to make a request.
func (t *Tracker) Wait(ctx context.Context) error {
	if err := t.bucket.Wait(ctx); err != nil {
		return err
	}

	t.mu.Lock()
	remaining := t.quota.Remaining
	reset := t.quota.Reset
	t.mu.Unlock()

	if remaining < t.minBuf && time.Now().Before(reset) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(reset)):
		}
	}

	return nil
}

// Update replaces stored state unconditionally. Last-write-wins, no
// smoothing.
func (t *Tracker) Update(quota domain.RateQuota) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.quota = quota
	t.fresh = true
}

// UpdateFromResponse refreshes quota state from response headers.
func (t *Tracker) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	quota := QuotaFromHeaders(resp)
	if quota == nil {
		return
	}
	t.Update(*quota)
}

// QuotaFromHeaders parses the X-RateLimit-* headers, or returns nil
// when the response carries none.
func QuotaFromHeaders(resp *http.Response) *domain.RateQuota {
	if resp == nil || resp.Header.Get(HeaderRateLimit) == "" {
		return nil
	}

	quota := domain.RateQuota{}
	if val, err := strconv.Atoi(resp.Header.Get(HeaderRateLimit)); err == nil {
		quota.Limit = val
	}
	if val, err := strconv.Atoi(resp.Header.Get(HeaderRateRemaining)); err == nil {
		quota.Remaining = val
	}
	if val, err := strconv.ParseInt(resp.Header.Get(HeaderRateReset), 10, 64); err == nil {
		quota.Reset = time.Unix(val, 0)
	}
	if val, err := strconv.Atoi(resp.Header.Get(HeaderRateUsed)); err == nil {
		quota.Used = val
	}
	return &quota
}

// Quota returns the current quota snapshot.
func (t *Tracker) Quota() domain.RateQuota {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.quota
}

// Fresh reports whether the defaults have been replaced by at least
// one header refresh.
func (t *Tracker) Fresh() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fresh
}

// DebounceFor scales a caller-supplied base delay by the usage-derived
// multiplier.
func (t *Tracker) DebounceFor(base time.Duration) time.Duration {
	t.mu.Lock()
	multiplier := t.quota.DebounceMultiplier()
	t.mu.Unlock()
	return time.Duration(float64(base) * multiplier)
}

// CheckRateLimit checks if the response indicates rate limiting and
// refreshes state from its headers. Returns a RateLimitError when the
// API reports exhaustion, nil otherwise.
func (t *Tracker) CheckRateLimit(resp *http.Response) error {
	if resp == nil {
		return nil
	}

	t.UpdateFromResponse(resp)

	t.mu.Lock()
	quota := t.quota
	t.mu.Unlock()

	if resp.StatusCode == http.StatusTooManyRequests ||
		(resp.StatusCode == http.StatusForbidden && quota.Remaining == 0) {
		resetAt := quota.Reset
		if retryAfter := resp.Header.Get(HeaderRetryAfter); retryAfter != "" {
			if seconds, err := strconv.Atoi(retryAfter); err == nil {
				resetAt = time.Now().Add(time.Duration(seconds) * time.Second)
			}
		}

		return &RateLimitError{
			ResetAt:   resetAt,
			Remaining: quota.Remaining,
			Limit:     quota.Limit,
		}
	}

	return nil
}
