package backoff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/architeacher/svc-project-messaging/internal/config"
)

func TestExponential_Backoff(t *testing.T) {
	t.Parallel()

	strategy := NewExponentialStrategy(config.BackoffConfig{
		BaseDelay:  2 * time.Second,
		Multiplier: 2,
		MaxDelay:   30 * time.Second,
	})

	expected := []time.Duration{
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		16 * time.Second,
		30 * time.Second,
		30 * time.Second,
		30 * time.Second,
	}

	for retries, want := range expected {
		assert.Equal(t, want, strategy.Backoff(retries), "retries=%d", retries)
	}
}

func TestExponential_BackoffIsMonotonic(t *testing.T) {
	t.Parallel()

	strategy := NewExponentialStrategy(config.BackoffConfig{
		BaseDelay:  100 * time.Millisecond,
		Multiplier: 1.6,
		MaxDelay:   5 * time.Second,
	})

	previous := time.Duration(0)
	for retries := range 50 {
		current := strategy.Backoff(retries)

		assert.GreaterOrEqual(t, current, previous)
		assert.LessOrEqual(t, current, 5*time.Second)

		previous = current
	}
}

func TestExponential_JitterStaysWithinBounds(t *testing.T) {
	t.Parallel()

	cfg := config.BackoffConfig{
		BaseDelay:  time.Second,
		Multiplier: 2,
		Jitter:     0.2,
		MaxDelay:   10 * time.Second,
	}
	strategy := NewExponentialStrategy(cfg)

	for range 200 {
		first := strategy.Backoff(0)
		assert.GreaterOrEqual(t, first, 800*time.Millisecond)
		assert.LessOrEqual(t, first, 1200*time.Millisecond)

		capped := strategy.Backoff(10)
		assert.GreaterOrEqual(t, capped, 8*time.Second)
		assert.LessOrEqual(t, capped, cfg.MaxDelay)
	}
}

func TestExponential_UnitMultiplierKeepsBaseDelay(t *testing.T) {
	t.Parallel()

	strategy := NewExponentialStrategy(config.BackoffConfig{
		BaseDelay:  time.Second,
		Multiplier: 1,
		MaxDelay:   30 * time.Second,
	})

	assert.Equal(t, time.Second, strategy.Backoff(1000))
}
