// Command seqbench benchmarks exact pattern-matching algorithms over
// synthetic DNA sequences by driving an external matcher executable
// through size and pattern-length sweeps, then renders charts, a
// summary table and a flat CSV export.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"github.com/urfave/cli/v3"

	"github.com/programme-lv/seqbench/internal/analysis"
	"github.com/programme-lv/seqbench/internal/catalog"
	"github.com/programme-lv/seqbench/internal/config"
	"github.com/programme-lv/seqbench/internal/corpus"
	"github.com/programme-lv/seqbench/internal/report"
	"github.com/programme-lv/seqbench/internal/runner"
	"github.com/programme-lv/seqbench/internal/scratch"
	"github.com/programme-lv/seqbench/internal/sweep"
)

func main() {
	cmd := &cli.Command{
		Name:  "seqbench",
		Usage: "benchmark exact pattern-matching algorithms over DNA-like sequences",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "exe", Usage: "path to the matcher executable"},
			&cli.StringFlag{Name: "config", Usage: "TOML config file overlaying the defaults"},
			&cli.StringFlag{Name: "out", Usage: "results directory"},
			&cli.StringFlag{Name: "scratch", Usage: "scratch directory for corpus files"},
			&cli.StringFlag{Name: "baseline", Usage: "baseline algorithm key for speedups"},
			&cli.StringFlag{Name: "sizes", Usage: "comma-separated corpus sizes for the size sweep"},
			&cli.StringFlag{Name: "pattern-lengths", Usage: "comma-separated lengths for the pattern-length sweep"},
			&cli.DurationFlag{Name: "timeout", Usage: "per-invocation deadline"},
			&cli.StringFlag{Name: "seed", Usage: "deterministic corpus seed (0 = time-based)"},
			&cli.BoolFlag{Name: "quiet", Usage: "suppress per-sample progress output"},
		},
		Action: run,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		slog.Error("run failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	level := slog.LevelInfo
	if cmd.Bool("quiet") {
		level = slog.LevelWarn
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	runID := uuid.New().String()
	slog.Info("starting benchmark run",
		"run_id", runID, "executable", cfg.ExecutablePath, "seed", cfg.Seed)

	algos := catalog.Default()
	baseline, ok := catalog.Find(algos, cfg.BaselineKey)
	if !ok {
		return fmt.Errorf("unknown baseline algorithm %q", cfg.BaselineKey)
	}

	gen, err := report.New(cfg.OutDir)
	if err != nil {
		return err
	}

	dir, err := scratch.New(cfg.ScratchDir)
	if err != nil {
		return err
	}
	defer func() {
		if err := dir.Close(); err != nil {
			slog.Warn("failed to remove scratch directory", "path", dir.Path(), "err", err)
		}
	}()

	corpusGen := corpus.NewGenerator(cfg.Seed)
	r := runner.New(cfg.ExecutablePath, cfg.Timeout)

	if err := probeExecutable(ctx, r, corpusGen, dir, algos[0]); err != nil {
		return err
	}

	var progress io.Writer = os.Stdout
	if cmd.Bool("quiet") {
		progress = io.Discard
	}
	gath := sweep.NewTerminalGatherer(progress)
	sw := sweep.New(cfg, algos, corpusGen, r, dir, gath)

	sizeSeries, err := sw.SizeSweep(ctx)
	if err != nil {
		slog.Warn("size sweep interrupted", "err", err)
	}
	patternSeries, err := sw.PatternLengthSweep(ctx)
	if err != nil {
		slog.Warn("pattern-length sweep interrupted", "err", err)
	}

	fits := make(map[int]analysis.Fit)
	for _, algo := range algos {
		s, ok := sizeSeries[algo.ID]
		if !ok {
			continue
		}
		fit, ok := analysis.FitPowerLaw(s)
		if !ok {
			slog.Info("complexity fit skipped", "algorithm", algo.Key, "reason", "fewer than 2 valid points")
			continue
		}
		fits[algo.ID] = fit
		slog.Info("complexity fit",
			"algorithm", algo.Key, "declared", algo.Complexity,
			"exponent", fmt.Sprintf("%.2f", fit.Exponent), "points", fit.Points)
	}

	speedups := make(map[int][]analysis.SpeedupPoint)
	base := sizeSeries[baseline.ID]
	if base == nil || len(base.Points) == 0 {
		slog.Info("speedup analysis skipped", "reason", "baseline series is empty", "baseline", baseline.Key)
	} else {
		for _, algo := range algos {
			if algo.ID == baseline.ID {
				continue
			}
			if s, ok := sizeSeries[algo.ID]; ok {
				speedups[algo.ID] = analysis.Speedup(base, s)
			}
		}
	}

	written := gen.WriteAll(report.Inputs{
		RunID:           runID,
		Catalog:         algos,
		Baseline:        baseline,
		SizeSeries:      sizeSeries,
		PatternSeries:   patternSeries,
		Fits:            fits,
		Speedups:        speedups,
		FixedPatternLen: cfg.FixedPatternLen,
		FixedTextSize:   cfg.FixedTextSize,
		ReferenceSize:   cfg.ReferenceSize,
	})

	head := color.New(color.Bold)
	head.Fprintf(progress, "\n== Benchmark complete, %d artifacts ==\n", len(written))
	for _, path := range written {
		fmt.Fprintf(progress, "  %s\n", path)
	}
	return nil
}

// probeExecutable runs the executable once against a tiny corpus; only
// complete inability to spawn it aborts the run.
func probeExecutable(
	ctx context.Context,
	r *runner.Runner,
	gen *corpus.Generator,
	dir *scratch.Dir,
	algo catalog.Algorithm,
) error {
	c, err := gen.Generate(100)
	if err != nil {
		return err
	}
	p, err := gen.EmbedPattern(c, 5)
	if err != nil {
		return err
	}
	path := dir.CorpusPath(c.Size)
	if err := corpus.WriteFasta(path, "probe", c); err != nil {
		return err
	}
	return r.Probe(ctx, algo, path, p.Text)
}

func buildConfig(cmd *cli.Command) (config.Config, error) {
	cfg := config.Default()

	if path := cmd.String("config"); path != "" {
		if err := cfg.ApplyTOML(path); err != nil {
			return cfg, err
		}
	}

	if v := cmd.String("exe"); v != "" {
		cfg.ExecutablePath = v
	}
	if v := cmd.String("out"); v != "" {
		cfg.OutDir = v
	}
	if v := cmd.String("scratch"); v != "" {
		cfg.ScratchDir = v
	}
	if v := cmd.String("baseline"); v != "" {
		cfg.BaselineKey = v
	}
	if cmd.IsSet("timeout") {
		cfg.Timeout = cmd.Duration("timeout")
	}
	if v := cmd.String("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse seed: %w", err)
		}
		cfg.Seed = seed
	}
	if v := cmd.String("sizes"); v != "" {
		sizes, err := parseIntList(v)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse sizes: %w", err)
		}
		cfg.Sizes = sizes
	}
	if v := cmd.String("pattern-lengths"); v != "" {
		lens, err := parseIntList(v)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse pattern lengths: %w", err)
		}
		cfg.PatternLengths = lens
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func parseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
