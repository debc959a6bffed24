package sim

import (
	"time"

	"github.com/pion/logging"
)

type RunOptions struct {
	Store         *StatsStore
	LoggerFactory logging.LoggerFactory
}

// RunResult couples the final snapshot with the raw histories so callers
// can render them.
type RunResult struct {
	Scenario string

	Stats   Stats
	HasData bool

	Latencies []time.Duration
	Losses    []bool
}

// RunScenario schedules every payload of the scenario on a fresh engine
// and drives it to quiescence.
func RunScenario(sc Scenario, opt RunOptions) RunResult {
	eng := NewEngine()
	ch := NewChannel(eng, ChannelConfig{
		ErrorRate:     sc.ErrorRate,
		MinErrorRate:  sc.MinErrorRate,
		MaxErrorRate:  sc.MaxErrorRate,
		Window:        sc.Window,
		Seed:          sc.Seed,
		Store:         opt.Store,
		LoggerFactory: opt.LoggerFactory,
	})

	for _, p := range sc.Payloads {
		ch.Transmit(NewPacket(p))
	}
	eng.Run()

	stats, ok := ch.Snapshot()
	return RunResult{
		Scenario:  sc.Name,
		Stats:     stats,
		HasData:   ok,
		Latencies: ch.Recorder().Latencies(),
		Losses:    ch.Recorder().LossHistory(),
	}
}
