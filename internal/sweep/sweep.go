// Package sweep drives benchmark configuration sweeps: it generates
// corpora, invokes the external executable through a runner and
// accumulates aligned per-algorithm sample series.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/programme-lv/seqbench/internal/catalog"
	"github.com/programme-lv/seqbench/internal/config"
	"github.com/programme-lv/seqbench/internal/corpus"
	"github.com/programme-lv/seqbench/internal/scratch"
)

// ProcessRunner abstracts the external executable invocation so the
// sweeps can be exercised without spawning processes.
type ProcessRunner interface {
	Run(ctx context.Context, algo catalog.Algorithm, corpusPath string, pattern string) (float64, error)
}

type Sweeper struct {
	cfg   config.Config
	algos []catalog.Algorithm
	gen   *corpus.Generator
	run   ProcessRunner
	dir   *scratch.Dir
	gath  Gatherer
}

func New(
	cfg config.Config,
	algos []catalog.Algorithm,
	gen *corpus.Generator,
	run ProcessRunner,
	dir *scratch.Dir,
	gath Gatherer,
) *Sweeper {
	return &Sweeper{
		cfg:   cfg,
		algos: algos,
		gen:   gen,
		run:   run,
		dir:   dir,
		gath:  gath,
	}
}

// SizeSweep varies the corpus size at a fixed pattern length. Every
// size gets a fresh corpus and pattern. The returned map is keyed by
// algorithm ID; an algorithm whose ceiling rejects the fixed pattern
// length has an empty series.
func (s *Sweeper) SizeSweep(ctx context.Context) (map[int]*Series, error) {
	series := s.newSeriesMap()

	s.gath.StartSweep("size", len(s.cfg.Sizes))
	defer s.gath.FinishSweep("size")

	for _, size := range s.cfg.Sizes {
		if err := ctx.Err(); err != nil {
			return series, err
		}
		s.gath.StartConfig("text size", size)

		p, path, err := s.prepareCorpus(size, s.cfg.FixedPatternLen)
		if err != nil {
			s.gath.SkipConfig(size, err)
			continue
		}

		for _, algo := range s.algos {
			s.measure(ctx, series[algo.ID], algo, size, s.cfg.FixedPatternLen, path, p.Text)
		}
	}
	return series, nil
}

// PatternLengthSweep varies the pattern length against one corpus of
// the fixed text size. The corpus is generated once and reused for
// every pattern length.
func (s *Sweeper) PatternLengthSweep(ctx context.Context) (map[int]*Series, error) {
	series := s.newSeriesMap()

	c, err := s.gen.Generate(s.cfg.FixedTextSize)
	if err != nil {
		return series, fmt.Errorf("failed to generate corpus: %w", err)
	}
	path := s.dir.CorpusPath(c.Size)
	if err := corpus.WriteFasta(path, fmt.Sprintf("seq_%d", c.Size), c); err != nil {
		return series, err
	}

	s.gath.StartSweep("pattern-length", len(s.cfg.PatternLengths))
	defer s.gath.FinishSweep("pattern-length")

	for _, plen := range s.cfg.PatternLengths {
		if err := ctx.Err(); err != nil {
			return series, err
		}
		s.gath.StartConfig("pattern length", plen)

		p, err := s.gen.EmbedPattern(c, plen)
		if err != nil {
			s.gath.SkipConfig(plen, err)
			continue
		}

		for _, algo := range s.algos {
			s.measure(ctx, series[algo.ID], algo, plen, plen, path, p.Text)
		}
	}
	return series, nil
}

// measure runs one sample and records the outcome. An applicability
// rejection contributes no entry at all; a runner failure contributes a
// missing entry so the series stays aligned.
func (s *Sweeper) measure(
	ctx context.Context,
	series *Series,
	algo catalog.Algorithm,
	x int,
	patternLen int,
	corpusPath string,
	pattern string,
) {
	if !algo.Applicable(patternLen) {
		s.gath.SkipAlgorithm(algo)
		return
	}

	timeMs, err := s.run.Run(ctx, algo, corpusPath, pattern)
	if err != nil {
		series.appendMissing(x)
		s.gath.FailSample(algo, err)
		slog.Warn("sample failed",
			"algorithm", algo.Key, "x", x, "err", err)
		return
	}
	series.appendTime(x, timeMs)
	s.gath.FinishSample(algo, timeMs)
}

func (s *Sweeper) prepareCorpus(size int, patternLen int) (corpus.Pattern, string, error) {
	c, err := s.gen.Generate(size)
	if err != nil {
		return corpus.Pattern{}, "", fmt.Errorf("failed to generate corpus: %w", err)
	}
	p, err := s.gen.EmbedPattern(c, patternLen)
	if err != nil {
		if errors.Is(err, corpus.ErrInvalidLength) {
			return corpus.Pattern{}, "", err
		}
		return corpus.Pattern{}, "", fmt.Errorf("failed to embed pattern: %w", err)
	}
	path := s.dir.CorpusPath(size)
	if err := corpus.WriteFasta(path, fmt.Sprintf("seq_%d", size), c); err != nil {
		return corpus.Pattern{}, "", err
	}
	return p, path, nil
}

func (s *Sweeper) newSeriesMap() map[int]*Series {
	series := make(map[int]*Series, len(s.algos))
	for _, algo := range s.algos {
		series[algo.ID] = &Series{Algo: algo}
	}
	return series
}
