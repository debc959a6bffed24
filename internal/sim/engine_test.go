package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEngineRunsEventsInTimeOrder(t *testing.T) {
	eng := NewEngine()

	var order []string
	eng.Schedule(300*time.Millisecond, func() { order = append(order, "c") })
	eng.Schedule(100*time.Millisecond, func() { order = append(order, "a") })
	eng.Schedule(200*time.Millisecond, func() { order = append(order, "b") })
	eng.Run()

	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestEngineTieBreaksBySchedulingOrder(t *testing.T) {
	eng := NewEngine()

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		eng.Schedule(time.Second, func() { order = append(order, i) })
	}
	eng.Run()

	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestEngineClockAdvancesToEventInstant(t *testing.T) {
	eng := NewEngine()
	start := eng.Now()

	var at time.Time
	eng.Schedule(250*time.Millisecond, func() { at = eng.Now() })
	eng.Run()

	assert.Equal(t, 250*time.Millisecond, at.Sub(start))
	assert.Equal(t, at, eng.Now())
}

func TestEngineRunsNestedSchedulingToQuiescence(t *testing.T) {
	eng := NewEngine()
	start := eng.Now()

	var done time.Time
	eng.Schedule(100*time.Millisecond, func() {
		eng.Schedule(50*time.Millisecond, func() { done = eng.Now() })
	})
	eng.Run()

	assert.Equal(t, 150*time.Millisecond, done.Sub(start))
}

func TestEngineNegativeDelayRunsAtCurrentInstant(t *testing.T) {
	eng := NewEngine()
	start := eng.Now()

	var at time.Time
	eng.Schedule(-time.Second, func() { at = eng.Now() })
	eng.Run()

	assert.Equal(t, start, at)
}
