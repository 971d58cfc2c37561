package retry

import (
	"context"
	"time"
)

// Policy is a bounded retry with a fixed delay between attempts. It wraps
// the read path against transient store failures; writes are never retried.
type Policy struct {
	Attempts int
	Delay    time.Duration
}

// DefaultPolicy matches the store read tolerance: 3 attempts, 1s apart.
func DefaultPolicy() Policy {
	return Policy{Attempts: 3, Delay: time.Second}
}

// Do runs op until it succeeds, the attempt budget is spent, or the context
// is cancelled while waiting between attempts. The last error is returned
// after exhaustion.
func (p Policy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}

		timer := time.NewTimer(p.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}

	return lastErr
}
