package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// history builds a window-sized outcome slice with the given loss count.
func history(window, losses int) []bool {
	out := make([]bool, window)
	for i := 0; i < losses; i++ {
		out[i] = true
	}
	return out
}

func TestAdjustNoChangeBeforeWindowFills(t *testing.T) {
	c := NewController(0.2, 0.05, 0.5, 10)

	got := c.Adjust(history(9, 9))
	assert.Equal(t, 0.2, got)
}

func TestAdjustBoundariesAreExclusive(t *testing.T) {
	// Recent loss rate exactly at either band edge must not move the rate.
	c := NewController(0.2, 0.05, 0.5, 10)
	assert.Equal(t, 0.2, c.Adjust(history(10, 3)))
	assert.Equal(t, 0.2, c.Adjust(history(10, 1)))
}

func TestAdjustHoldsInsideBand(t *testing.T) {
	c := NewController(0.2, 0.05, 0.5, 10)
	assert.Equal(t, 0.2, c.Adjust(history(10, 2)))
}

func TestAdjustWindowFillScenario(t *testing.T) {
	c := NewController(0.5, 0.05, 0.5, 10)

	// 4 losses in 10: recent loss 0.4 > 0.3, decay by 0.8.
	got := c.Adjust(history(10, 4))
	assert.InDelta(t, 0.4, got, 1e-12)

	// Then a clean window: recent loss 0.0 < 0.1, grow by 1.2.
	outcomes := append(history(10, 4), history(10, 0)...)
	got = c.Adjust(outcomes)
	assert.InDelta(t, 0.48, got, 1e-12)
}

func TestAdjustClampsAtBounds(t *testing.T) {
	c := NewController(0.05, 0.05, 0.5, 10)
	assert.Equal(t, 0.05, c.Adjust(history(10, 10)))

	c = NewController(0.5, 0.05, 0.5, 10)
	assert.Equal(t, 0.5, c.Adjust(history(10, 0)))
}

func TestAdjustUsesMostRecentWindowOnly(t *testing.T) {
	c := NewController(0.2, 0.05, 0.5, 10)

	// Heavy early losses followed by a clean trailing window: only the
	// trailing window counts, so the rate grows.
	outcomes := append(history(10, 10), history(10, 0)...)
	got := c.Adjust(outcomes)
	assert.InDelta(t, 0.24, got, 1e-12)
}

func TestRateStaysWithinBoundsForAnySequence(t *testing.T) {
	c := NewController(0.5, 0.05, 0.5, 10)
	rng := rand.New(rand.NewSource(7))

	var outcomes []bool
	for i := 0; i < 1000; i++ {
		outcomes = append(outcomes, rng.Float64() < 0.5)
		rate := c.Adjust(outcomes)
		assert.GreaterOrEqual(t, rate, 0.05)
		assert.LessOrEqual(t, rate, 0.5)
	}
}

func TestNewControllerClampsStartingRate(t *testing.T) {
	assert.Equal(t, 0.5, NewController(0.9, 0.05, 0.5, 10).Rate())
	assert.Equal(t, 0.05, NewController(0.0, 0.05, 0.5, 10).Rate())
}

func TestNewControllerDefaults(t *testing.T) {
	c := NewController(0.2, 0, 0, 0)
	assert.Equal(t, DefaultWindow, c.Window())
	assert.Equal(t, 0.2, c.Rate())
}
