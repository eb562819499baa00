package report

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
)

// writePerformanceTable renders the per-algorithm summary at the
// reference size: measured time, theoretical memory, complexity label,
// fitted exponent and speedup against the baseline.
func (g *Generator) writePerformanceTable(path string, in Inputs) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	t := table.NewWriter()
	t.SetOutputMirror(f)
	t.SetTitle("Performance Metrics (text: %d bp, pattern: %d bp, run %s)",
		in.ReferenceSize, in.FixedPatternLen, in.RunID)
	t.AppendHeader(table.Row{
		"Algorithm", "Time (ms)", "Memory (KB)", "Complexity", "Fitted Exponent", "Speedup",
	})

	baselineTime := 0.0
	if s, ok := in.SizeSeries[in.Baseline.ID]; ok {
		baselineTime, _ = s.TimeAt(in.ReferenceSize)
	}

	for _, algo := range in.Catalog {
		timeCell := "N/A"
		speedupCell := "N/A"
		if s, ok := in.SizeSeries[algo.ID]; ok {
			if ms, ok := s.TimeAt(in.ReferenceSize); ok {
				timeCell = fmt.Sprintf("%.3f", ms)
				if baselineTime > 0 && ms > 0 {
					speedupCell = fmt.Sprintf("%.2fx", baselineTime/ms)
				}
			}
		}

		memCell := "~0"
		if kb := float64(algo.MemoryBytes(in.ReferenceSize, in.FixedPatternLen)) / 1024.0; kb > 0 {
			memCell = fmt.Sprintf("%.1f", kb)
		}

		expCell := "N/A"
		if fit, ok := in.Fits[algo.ID]; ok {
			expCell = fmt.Sprintf("n^%.2f", fit.Exponent)
		}

		t.AppendRow(table.Row{
			algo.Name, timeCell, memCell, algo.Complexity, expCell, speedupCell,
		})
	}

	t.SetStyle(table.StyleLight)
	t.Render()
	return nil
}
