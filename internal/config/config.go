// Package config carries the immutable run configuration: sweep
// dimensions, directories and the baseline choice. It is constructed
// once at process start and passed explicitly to whoever needs it.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	// ExecutablePath points at the external matcher binary.
	ExecutablePath string

	// Sizes are the corpus sizes of the size sweep.
	Sizes []int
	// PatternLengths are the pattern lengths of the pattern-length sweep.
	PatternLengths []int

	// FixedPatternLen is the pattern length used throughout the size sweep.
	FixedPatternLen int
	// FixedTextSize is the corpus size used throughout the pattern-length sweep.
	FixedTextSize int
	// ReferenceSize is the corpus size the summary table reports on.
	ReferenceSize int

	// BaselineKey selects the algorithm speedups are computed against.
	BaselineKey string

	Timeout time.Duration

	// Seed makes corpus generation reproducible; zero means time-based.
	Seed int64

	OutDir     string
	ScratchDir string
}

// Default mirrors the sweep the harness has always run: sizes from one
// thousand to one million base pairs, pattern lengths 5 through 100.
func Default() Config {
	return Config{
		Sizes:           []int{1000, 5000, 10000, 50000, 100000, 500000, 1000000},
		PatternLengths:  []int{5, 10, 20, 50, 100},
		FixedPatternLen: 10,
		FixedTextSize:   100000,
		ReferenceSize:   100000,
		BaselineKey:     "naive",
		Timeout:         30 * time.Second,
		OutDir:          "results",
		ScratchDir:      "scratch",
	}
}

// fileConfig is the TOML overlay shape. Absent fields leave the
// defaults untouched.
type fileConfig struct {
	Executable      string `toml:"executable"`
	Sizes           []int  `toml:"sizes"`
	PatternLengths  []int  `toml:"pattern_lengths"`
	FixedPatternLen int    `toml:"fixed_pattern_length"`
	FixedTextSize   int    `toml:"fixed_text_size"`
	ReferenceSize   int    `toml:"reference_size"`
	Baseline        string `toml:"baseline"`
	TimeoutSeconds  int    `toml:"timeout_seconds"`
	Seed            int64  `toml:"seed"`
	OutDir          string `toml:"out_dir"`
	ScratchDir      string `toml:"scratch_dir"`
}

// ApplyTOML overlays settings from a TOML file onto the config.
func (c *Config) ApplyTOML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config TOML: %w", err)
	}

	if fc.Executable != "" {
		c.ExecutablePath = fc.Executable
	}
	if len(fc.Sizes) > 0 {
		c.Sizes = fc.Sizes
	}
	if len(fc.PatternLengths) > 0 {
		c.PatternLengths = fc.PatternLengths
	}
	if fc.FixedPatternLen > 0 {
		c.FixedPatternLen = fc.FixedPatternLen
	}
	if fc.FixedTextSize > 0 {
		c.FixedTextSize = fc.FixedTextSize
	}
	if fc.ReferenceSize > 0 {
		c.ReferenceSize = fc.ReferenceSize
	}
	if fc.Baseline != "" {
		c.BaselineKey = fc.Baseline
	}
	if fc.TimeoutSeconds > 0 {
		c.Timeout = time.Duration(fc.TimeoutSeconds) * time.Second
	}
	if fc.Seed != 0 {
		c.Seed = fc.Seed
	}
	if fc.OutDir != "" {
		c.OutDir = fc.OutDir
	}
	if fc.ScratchDir != "" {
		c.ScratchDir = fc.ScratchDir
	}
	return nil
}

func (c *Config) Validate() error {
	if c.ExecutablePath == "" {
		return fmt.Errorf("executable path is required")
	}
	if len(c.Sizes) == 0 {
		return fmt.Errorf("at least one corpus size is required")
	}
	for _, s := range c.Sizes {
		if s <= 0 {
			return fmt.Errorf("corpus size must be positive, got %d", s)
		}
	}
	if len(c.PatternLengths) == 0 {
		return fmt.Errorf("at least one pattern length is required")
	}
	for _, p := range c.PatternLengths {
		if p <= 0 {
			return fmt.Errorf("pattern length must be positive, got %d", p)
		}
	}
	if c.FixedPatternLen <= 0 {
		return fmt.Errorf("fixed pattern length must be positive, got %d", c.FixedPatternLen)
	}
	if c.FixedTextSize <= 0 {
		return fmt.Errorf("fixed text size must be positive, got %d", c.FixedTextSize)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}
