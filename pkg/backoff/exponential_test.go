package backoff

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDelay(t *testing.T) {
	base := 100 * time.Millisecond

	tests := []struct {
		name       string
		attempt    int
		expectZero bool
	}{
		{name: "attempt zero", attempt: 0, expectZero: true},
		{name: "first attempt", attempt: 1, expectZero: true},
		{name: "negative attempt", attempt: -3, expectZero: true},
		{name: "second attempt", attempt: 2},
		{name: "third attempt", attempt: 3},
		{name: "fifth attempt", attempt: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delay := Delay(tt.attempt, base)

			if tt.expectZero {
				assert.Equal(t, time.Duration(0), delay)
				return
			}

			raw := time.Duration(math.Pow(2, float64(tt.attempt-1))) * base
			min := time.Duration(float64(raw) * 0.5)
			max := time.Duration(float64(raw) * 1.5)
			assert.GreaterOrEqual(t, delay, min)
			assert.LessOrEqual(t, delay, max)
		})
	}
}

func TestDelayZeroBase(t *testing.T) {
	assert.Equal(t, time.Duration(0), Delay(4, 0))
	assert.Equal(t, time.Duration(0), Delay(4, -time.Second))
}
