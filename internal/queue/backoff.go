package queue

import (
	"math"
	"math/rand/v2"
	"time"
)

// Backoff computes the delay before the next attempt of a failed job.
type Backoff struct {
	Base   time.Duration
	Max    time.Duration
	Jitter float64
}

// Delay returns Base * 2^(attempt-1), capped at Max, with +/-Jitter spread.
func (b Backoff) Delay(attempt int) time.Duration {
	if attempt <= 0 || b.Base <= 0 {
		return 0
	}

	delay := float64(b.Base) * math.Pow(2, float64(attempt-1))
	if b.Max > 0 && delay > float64(b.Max) {
		delay = float64(b.Max)
	}

	if b.Jitter > 0 {
		delay += delay * b.Jitter * (2*rand.Float64() - 1)
	}

	return time.Duration(delay)
}
