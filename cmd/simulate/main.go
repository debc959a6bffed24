package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lars-sto/lossy-channel-sim/internal/sim"
	"github.com/pion/logging"
)

const outDir = "simdata"

func main() {
	lf := logging.NewDefaultLoggerFactory()
	lf.DefaultLogLevel = logging.LogLevelInfo
	log := lf.NewLogger("simulate")

	scenarios := []sim.Scenario{
		sim.BasicTransmission(1),
		sim.MixedPayloadStress(2),
	}

	for _, sc := range scenarios {
		store, err := sim.NewStatsStore(filepath.Join(outDir, sc.Name))
		if err != nil {
			// Persistence is best-effort; the run itself proceeds.
			log.Warnf("stats store for %s: %v", sc.Name, err)
			store = nil
		}

		res := sim.RunScenario(sc, sim.RunOptions{Store: store, LoggerFactory: lf})

		if store != nil {
			if err := store.Close(); err != nil {
				log.Warnf("close stats store: %v", err)
			}
		}

		fmt.Printf("=== %s ===\n", res.Scenario)
		if !res.HasData {
			fmt.Println("no transmissions recorded")
			continue
		}
		fmt.Printf("total transmissions: %d\n", res.Stats.TotalTransmissions)
		fmt.Printf("success rate: %.2f%%\n", (1-res.Stats.LossRate)*100)
		fmt.Printf("average latency: %.3fs\n\n", res.Stats.AverageLatency)
		sim.PlotMetrics(os.Stdout, res.Latencies, res.Losses, res.Stats)
		fmt.Println()
	}
}
