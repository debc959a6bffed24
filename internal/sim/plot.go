package sim

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/guptarohit/asciigraph"
)

const barWidth = 40

// PlotMetrics renders the latency series, a success/loss rate summary and
// the aggregate statistics as text. Prints a notice when no data exists.
// Never called during a transmission attempt.
func PlotMetrics(w io.Writer, latencies []time.Duration, losses []bool, stats Stats) {
	if len(latencies) == 0 && len(losses) == 0 {
		fmt.Fprintln(w, "no data to plot")
		return
	}

	if len(latencies) > 0 {
		series := make([]float64, len(latencies))
		for i, l := range latencies {
			series[i] = l.Seconds()
		}
		fmt.Fprintln(w, asciigraph.Plot(series,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("transmission latency (s) per attempt"),
		))
		fmt.Fprintln(w)
	}

	lossCount := 0
	for _, lost := range losses {
		if lost {
			lossCount++
		}
	}
	lossRate := 0.0
	if len(losses) > 0 {
		lossRate = float64(lossCount) / float64(len(losses))
	}
	successRate := 1 - lossRate

	fmt.Fprintf(w, "success %s %5.1f%%\n", bar(successRate), successRate*100)
	fmt.Fprintf(w, "loss    %s %5.1f%%\n", bar(lossRate), lossRate*100)
	fmt.Fprintf(w, "\ntotal packets: %d\n", stats.TotalTransmissions)
	fmt.Fprintf(w, "success rate: %.1f%%\n", successRate*100)
	fmt.Fprintf(w, "loss rate: %.1f%%\n", lossRate*100)
	fmt.Fprintf(w, "avg latency: %.3fs\n", stats.AverageLatency)
	fmt.Fprintf(w, "current error rate: %.3f\n", stats.CurrentErrorRate)
}

func bar(frac float64) string {
	n := int(frac*barWidth + 0.5)
	if n < 0 {
		n = 0
	}
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("#", n) + strings.Repeat(".", barWidth-n)
}
