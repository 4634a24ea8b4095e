package notify

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// rateThrottler enforces a minimum interval between requests using a
// token bucket. A zero interval produces a throttler that never blocks,
// so the hook can still be invoked unconditionally before every I/O.
type rateThrottler struct {
	limiter *rate.Limiter
}

// NewThrottler returns a Throttler that spaces requests at least
// minInterval apart. The first call never blocks.
func NewThrottler(minInterval time.Duration) Throttler {
	if minInterval <= 0 {
		return &rateThrottler{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &rateThrottler{limiter: rate.NewLimiter(rate.Every(minInterval), 1)}
}

// Throttle blocks until the rate limit admits another request or the
// context is done.
func (t *rateThrottler) Throttle(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := t.limiter.Wait(ctx); err != nil {
		// Context cancelled while waiting; the caller's I/O will fail
		// on the same context.
		logger().Debug("throttle wait interrupted", "error", err)
	}
}
