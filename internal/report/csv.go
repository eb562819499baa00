package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// writeBenchmarkData emits the flat record-per-sample export: one row
// per successful measurement, tagged with its sweep of origin.
func (g *Generator) writeBenchmarkData(path string, in Inputs) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Algorithm", "Benchmark", "Text_Size", "Pattern_Length", "Time_ms"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, algo := range in.Catalog {
		if s, ok := in.SizeSeries[algo.ID]; ok {
			for _, p := range s.Points {
				if !p.OK {
					continue
				}
				record := []string{
					algo.Name,
					SizeSweepLabel,
					strconv.Itoa(p.X),
					strconv.Itoa(in.FixedPatternLen),
					formatMs(p.TimeMs),
				}
				if err := w.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
		}
	}

	for _, algo := range in.Catalog {
		if s, ok := in.PatternSeries[algo.ID]; ok {
			for _, p := range s.Points {
				if !p.OK {
					continue
				}
				record := []string{
					algo.Name,
					PatternLengthSweepLabel,
					strconv.Itoa(in.FixedTextSize),
					strconv.Itoa(p.X),
					formatMs(p.TimeMs),
				}
				if err := w.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func formatMs(ms float64) string {
	return strconv.FormatFloat(ms, 'f', -1, 64)
}
