package orchestrator

import (
	"context"
	"time"

	"github.com/onlook-dev/fixpack-pipeline/internal/events"
)

// WaitTarget names what a monitor is waiting on between polls.
type WaitTarget struct {
	Owner    string
	Repo     string
	PRNumber int
	SHA      string
}

// Waiter blocks between CI polls. It reports woken when it returned before d because
// new check results may be available, and returns ctx.Err() when ctx is done.
type Waiter interface {
	Wait(ctx context.Context, target WaitTarget, d time.Duration) (woken bool, err error)
}

type PollWaiter struct{}

func (PollWaiter) Wait(ctx context.Context, _ WaitTarget, d time.Duration) (bool, error) {
	return sleep(ctx, nil, d)
}

// EventWaiter wakes as soon as a check event for the pull request or its head
// commit is published on Bus, falling back to the full interval.
type EventWaiter struct {
	Bus *events.Bus
}

func (w EventWaiter) Wait(ctx context.Context, target WaitTarget, d time.Duration) (bool, error) {
	if w.Bus == nil {
		return sleep(ctx, nil, d)
	}

	keys := []events.Key{events.PRKey(target.Owner, target.Repo, target.PRNumber)}
	if target.SHA != "" {
		keys = append(keys, events.SHAKey(target.Owner, target.Repo, target.SHA))
	}
	wake, cancel := w.Bus.Subscribe(keys...)
	defer cancel()

	return sleep(ctx, wake, d)
}

func sleep(ctx context.Context, wake <-chan struct{}, d time.Duration) (bool, error) {
	if d <= 0 {
		return false, ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-timer.C:
		return false, nil
	case <-wake:
		return true, nil
	}
}
