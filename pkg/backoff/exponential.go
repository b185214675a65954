package backoff

import (
	"math"
	"math/rand"
	"time"
)

// Delay calculates an exponential backoff delay with +/- 50% jitter.
// The first attempt (and any invalid input) yields zero so callers can
// always sleep for the returned duration before retrying.
func Delay(attempt int, base time.Duration) time.Duration {
	if attempt <= 1 || base <= 0 {
		return 0
	}

	// 2^(attempt-1) * base
	exp := math.Pow(2, float64(attempt-1))
	raw := time.Duration(exp) * base

	jitterRange := float64(raw) * 0.5
	jitter := time.Duration(rand.Float64()*2*jitterRange - jitterRange)

	delay := raw + jitter
	if delay < 0 {
		delay = 0
	}
	return delay
}
