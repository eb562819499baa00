// Package report renders collected sample series and derived metrics
// into chart, table and CSV artifacts inside one output directory.
package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/programme-lv/seqbench/internal/analysis"
	"github.com/programme-lv/seqbench/internal/catalog"
	"github.com/programme-lv/seqbench/internal/sweep"
)

// Artifact file names, kept stable so repeated runs overwrite in place.
const (
	PerformanceComparisonFile  = "performance_comparison.html"
	PatternLengthImpactFile    = "pattern_length_impact.html"
	MemoryUsageFile            = "memory_usage.html"
	SpeedupComparisonFile      = "speedup_comparison.html"
	ComplexityVerificationFile = "complexity_verification.html"
	PerformanceTableFile       = "performance_table.txt"
	BenchmarkDataFile          = "benchmark_data.csv"
)

// Labels tagging flat-export rows with their sweep of origin.
const (
	SizeSweepLabel          = "Varying Text Size"
	PatternLengthSweepLabel = "Varying Pattern Length"
)

// Inputs bundles everything one report is generated from. All series
// maps are keyed by algorithm ID and treated as read-only.
type Inputs struct {
	RunID    string
	Catalog  []catalog.Algorithm
	Baseline catalog.Algorithm

	SizeSeries    map[int]*sweep.Series
	PatternSeries map[int]*sweep.Series
	Fits          map[int]analysis.Fit
	Speedups      map[int][]analysis.SpeedupPoint

	FixedPatternLen int
	FixedTextSize   int
	ReferenceSize   int
}

type Generator struct {
	outDir string
}

// New returns a generator writing into outDir, creating it if absent.
func New(outDir string) (*Generator, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}
	return &Generator{outDir: outDir}, nil
}

// WriteAll produces every artifact. A failed write is logged and the
// remaining artifacts are still attempted; already-written files stay
// in place. The returned slice lists the artifacts that were written.
func (g *Generator) WriteAll(in Inputs) []string {
	type artifact struct {
		name  string
		write func(string, Inputs) error
	}
	artifacts := []artifact{
		{PerformanceComparisonFile, g.writePerformanceComparison},
		{PatternLengthImpactFile, g.writePatternLengthImpact},
		{MemoryUsageFile, g.writeMemoryUsage},
		{SpeedupComparisonFile, g.writeSpeedupComparison},
		{ComplexityVerificationFile, g.writeComplexityVerification},
		{PerformanceTableFile, g.writePerformanceTable},
		{BenchmarkDataFile, g.writeBenchmarkData},
	}

	var written []string
	for _, a := range artifacts {
		path := filepath.Join(g.outDir, a.name)
		if err := a.write(path, in); err != nil {
			slog.Error("failed to write artifact", "artifact", a.name, "err", err)
			continue
		}
		written = append(written, path)
	}
	return written
}
