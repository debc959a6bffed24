package sim

import "math"

const (
	DefaultWindow       = 10
	DefaultMinErrorRate = 0.05
	DefaultMaxErrorRate = 0.5

	// Hysteresis band on the windowed loss rate. Inside (low, high) the
	// rate holds; both boundaries are exclusive triggers.
	lossBandHigh = 0.3
	lossBandLow  = 0.1

	rateDecay  = 0.8
	rateGrowth = 1.2
)

// Controller tunes the injected error probability from a sliding window of
// recent outcomes: too many losses decay the rate, too few grow it, always
// clamped to [min, max]. The multiplicative step keeps the response
// proportional and the rate strictly positive.
type Controller struct {
	rate   float64
	min    float64
	max    float64
	window int
}

// NewController builds a controller with the given starting rate and
// bounds. Zero or out-of-range arguments fall back to the defaults; the
// starting rate is clamped into [min, max].
func NewController(rate, min, max float64, window int) *Controller {
	if min <= 0 || min > 1 {
		min = DefaultMinErrorRate
	}
	if max <= 0 || max > 1 {
		max = DefaultMaxErrorRate
	}
	if max < min {
		max = min
	}
	if window <= 0 {
		window = DefaultWindow
	}
	rate = math.Max(min, math.Min(max, rate))
	return &Controller{rate: rate, min: min, max: max, window: window}
}

// Rate returns the current injected error probability.
func (c *Controller) Rate() float64 { return c.rate }

func (c *Controller) Window() int { return c.window }

// Adjust inspects the trailing window of losses and returns the possibly
// updated rate. Called after every recorded outcome; a history shorter
// than the window leaves the rate unchanged.
func (c *Controller) Adjust(losses []bool) float64 {
	if len(losses) < c.window {
		return c.rate
	}

	lossCount := 0
	for _, lost := range losses[len(losses)-c.window:] {
		if lost {
			lossCount++
		}
	}
	recentLoss := float64(lossCount) / float64(c.window)

	switch {
	case recentLoss > lossBandHigh:
		c.rate = math.Max(c.min, c.rate*rateDecay)
	case recentLoss < lossBandLow:
		c.rate = math.Min(c.max, c.rate*rateGrowth)
	}
	return c.rate
}
