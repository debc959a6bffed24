package sim

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
)

// statsHeader lists the snapshot fields in document order; written once,
// before the first CSV row.
var statsHeader = []string{
	"total_transmissions",
	"successful_transmissions",
	"average_latency",
	"loss_rate",
	"current_error_rate",
}

// StatsStore persists snapshots to two sinks under one directory: a JSON
// file overwritten with the latest snapshot, and a CSV log growing one row
// per save. Reopening a store appends to the existing CSV without
// repeating the header.
type StatsStore struct {
	jsonPath string
	csvF     *os.File
	csvW     *csv.Writer

	wroteHeader bool
}

func NewStatsStore(dir string) (*StatsStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "simulation_stats.csv"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &StatsStore{
		jsonPath:    filepath.Join(dir, "simulation_stats.json"),
		csvF:        f,
		csvW:        csv.NewWriter(f),
		wroteHeader: st.Size() > 0,
	}, nil
}

// Save writes the snapshot to both sinks.
func (s *StatsStore) Save(stats Stats) error {
	buf, err := json.MarshalIndent(stats, "", "    ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.jsonPath, buf, 0o644); err != nil {
		return err
	}

	if !s.wroteHeader {
		if err := s.csvW.Write(statsHeader); err != nil {
			return err
		}
		s.wroteHeader = true
	}
	row := []string{
		strconv.Itoa(stats.TotalTransmissions),
		strconv.Itoa(stats.SuccessfulTransmissions),
		ff(stats.AverageLatency),
		ff(stats.LossRate),
		ff(stats.CurrentErrorRate),
	}
	if err := s.csvW.Write(row); err != nil {
		return err
	}
	s.csvW.Flush()
	return s.csvW.Error()
}

func (s *StatsStore) Close() error {
	s.csvW.Flush()
	if err := s.csvW.Error(); err != nil {
		_ = s.csvF.Close()
		return err
	}
	return s.csvF.Close()
}

func ff(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
