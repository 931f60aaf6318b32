// Package fetch defines the page-fetch boundary the scrapers work against:
// a Browser that hands out stateful Sessions, and a RetryPolicy for the
// wait-for-content operations that flaky sportsbook pages require.
//
// Sessions are stateful (navigation history, current page) and must not be
// shared between concurrent workers; the coordinator assigns one session
// per worker.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTimeout is returned when a wait-for-content operation exhausts its
// retry budget. Callers convert it into the narrowest recoverable error
// for their scope (listing-level, event-level or block-level).
var ErrTimeout = errors.New("fetch: timed out waiting for content")

// RetryPolicy bounds a wait-for-content operation. Every wait has an
// explicit per-attempt timeout and a bounded attempt count; it never hangs.
type RetryPolicy struct {
	// Attempts is the total number of tries (minimum 1).
	Attempts int `yaml:"attempts"`
	// Timeout bounds a single attempt.
	Timeout time.Duration `yaml:"timeout"`
	// Delay is slept between attempts.
	Delay time.Duration `yaml:"delay"`
	// RefreshOnRetry reloads the page before each retry, which recovers
	// pages that rendered partially.
	RefreshOnRetry bool `yaml:"refresh_on_retry"`
}

// Normalized returns the policy with sane lower bounds applied.
func (p RetryPolicy) Normalized() RetryPolicy {
	if p.Attempts < 1 {
		p.Attempts = 1
	}
	if p.Timeout <= 0 {
		p.Timeout = 10 * time.Second
	}
	return p
}

// Session is one independent fetch session. All methods honor ctx
// cancellation; navigation and waits are the only blocking points.
type Session interface {
	// Navigate loads the URL in this session.
	Navigate(ctx context.Context, url string) error
	// WaitForAll waits until the selector matches at least one element and
	// returns the outer HTML of every match. Exhausting the policy returns
	// an error wrapping ErrTimeout.
	WaitForAll(ctx context.Context, selector string, policy RetryPolicy) ([]string, error)
	// WaitFor is WaitForAll for a single element.
	WaitFor(ctx context.Context, selector string, policy RetryPolicy) (string, error)
	// Click clicks the first element matching the selector, if present.
	Click(ctx context.Context, selector string) error
	// Close releases the session.
	Close() error
}

// Browser hands out sessions. One Browser is shared per run; sessions are
// one per worker.
type Browser interface {
	NewSession(ctx context.Context) (Session, error)
	Close() error
}

// waitWithRetries runs one attempt function under the policy. The attempt
// returns (done, err); done=false with nil err means "content not there
// yet, retry". refresh is called before each retry when the policy asks
// for it.
func waitWithRetries(ctx context.Context, policy RetryPolicy, attempt func(context.Context) (bool, error), refresh func(context.Context) error) error {
	policy = policy.Normalized()
	var lastErr error
	for i := 0; i < policy.Attempts; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i > 0 {
			if policy.Delay > 0 {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-time.After(policy.Delay):
				}
			}
			if policy.RefreshOnRetry && refresh != nil {
				if err := refresh(ctx); err != nil {
					lastErr = err
					continue
				}
			}
		}
		attemptCtx, cancel := context.WithTimeout(ctx, policy.Timeout)
		done, err := attempt(attemptCtx)
		cancel()
		if done {
			return nil
		}
		if err != nil {
			lastErr = err
		}
	}
	if lastErr != nil {
		return fmt.Errorf("%w (after %d attempts): %v", ErrTimeout, policy.Attempts, lastErr)
	}
	return fmt.Errorf("%w (after %d attempts)", ErrTimeout, policy.Attempts)
}
