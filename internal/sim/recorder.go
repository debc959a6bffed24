package sim

import "time"

// Stats is the derived aggregate over the recorded histories. Field order
// is the document order used by the persistence sinks. AverageLatency is
// in seconds of virtual time.
type Stats struct {
	TotalTransmissions      int     `json:"total_transmissions"`
	SuccessfulTransmissions int     `json:"successful_transmissions"`
	AverageLatency          float64 `json:"average_latency"`
	LossRate                float64 `json:"loss_rate"`
	CurrentErrorRate        float64 `json:"current_error_rate"`
}

// Recorder owns the append-only outcome histories. Every attempt appends
// one loss entry; only attempts that reached the wire append a latency
// sample, so len(losses) is the attempt count and len(latencies) never
// exceeds it. Not safe for concurrent use; the engine serializes all
// mutations.
type Recorder struct {
	latencies []time.Duration
	losses    []bool
}

func NewRecorder() *Recorder { return &Recorder{} }

// Record appends one completed encode-through-decode attempt.
func (r *Recorder) Record(latency time.Duration, lost bool) {
	if latency < 0 {
		latency = 0
	}
	r.latencies = append(r.latencies, latency)
	r.losses = append(r.losses, lost)
}

// RecordLoss counts an attempt that never produced a transit measurement,
// e.g. when encoding fails before anything reaches the wire.
func (r *Recorder) RecordLoss() {
	r.losses = append(r.losses, true)
}

// Total returns the number of attempts recorded so far.
func (r *Recorder) Total() int { return len(r.losses) }

// LossHistory exposes the outcome sequence the controller windows over.
// Callers must not modify the returned slice.
func (r *Recorder) LossHistory() []bool { return r.losses }

// Latencies exposes the latency series for rendering. Callers must not
// modify the returned slice.
func (r *Recorder) Latencies() []time.Duration { return r.latencies }

// Snapshot recomputes the aggregate statistics from the histories plus the
// given current error rate. ok is false when nothing has been recorded.
func (r *Recorder) Snapshot(currentRate float64) (Stats, bool) {
	total := len(r.losses)
	if total == 0 {
		return Stats{CurrentErrorRate: currentRate}, false
	}

	lossCount := 0
	for _, lost := range r.losses {
		if lost {
			lossCount++
		}
	}

	avg := 0.0
	if len(r.latencies) > 0 {
		var sum time.Duration
		for _, l := range r.latencies {
			sum += l
		}
		avg = sum.Seconds() / float64(len(r.latencies))
	}

	return Stats{
		TotalTransmissions:      total,
		SuccessfulTransmissions: total - lossCount,
		AverageLatency:          avg,
		LossRate:                float64(lossCount) / float64(total),
		CurrentErrorRate:        currentRate,
	}, true
}
