package github

import (
	"context"
	"errors"
	"fmt"
	"time"

	gh "github.com/google/go-github/v80/github"
)

type retryPolicy struct {
	maxRetries int
	baseDelay  time.Duration
	maxWait    time.Duration
}

var defaultRetryPolicy = retryPolicy{
	maxRetries: 5,
	baseDelay:  1 * time.Second,
	maxWait:    2 * time.Minute,
}

func (c *client) GetRepository(ctx context.Context, owner, repo string) (*gh.Repository, error) {
	var out *gh.Repository
	err := c.withRateLimitRetry(ctx, func() error {
		r, _, err := c.repositories.Get(ctx, owner, repo)
		out = r
		return err
	})
	return out, err
}

func (c *client) GetDefaultBranch(ctx context.Context, owner, repo string) (string, error) {
	r, err := c.GetRepository(ctx, owner, repo)
	if err != nil {
		return "", err
	}
	branch := r.GetDefaultBranch()
	if branch == "" {
		return "", fmt.Errorf("repository %s/%s has no default branch", owner, repo)
	}
	return branch, nil
}

// withRateLimitRetry re-invokes fn while GitHub reports a rate limit, waiting until
// the advertised reset (or an exponential delay when none is given).
func (c *client) withRateLimitRetry(ctx context.Context, fn func() error) error {
	p := c.retry
	if p.maxRetries == 0 && p.baseDelay == 0 {
		p = defaultRetryPolicy
	}

	for attempt := 0; attempt <= p.maxRetries; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		waitDuration, limited := rateLimitWait(err)
		if !limited {
			return err
		}

		if attempt == p.maxRetries {
			return fmt.Errorf("max retries reached: %w", err)
		}

		if waitDuration <= 0 {
			waitDuration = p.baseDelay * time.Duration(1<<attempt)
		}
		if p.maxWait > 0 && waitDuration > p.maxWait {
			waitDuration = p.maxWait
		}

		select {
		case <-time.After(waitDuration):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	return fmt.Errorf("unexpected retry loop exit")
}

func rateLimitWait(err error) (time.Duration, bool) {
	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return time.Until(rateLimitErr.Rate.Reset.Time), true
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return abuseErr.GetRetryAfter(), true
	}
	return 0, false
}
