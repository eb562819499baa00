package sweep

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/programme-lv/seqbench/internal/catalog"
)

// TerminalGatherer prints sweep progress to a writer, one line per
// sample, the way the original suite narrated its runs.
type TerminalGatherer struct {
	w       io.Writer
	ok      *color.Color
	bad     *color.Color
	skipped *color.Color
	head    *color.Color
}

func NewTerminalGatherer(w io.Writer) *TerminalGatherer {
	return &TerminalGatherer{
		w:       w,
		ok:      color.New(color.FgGreen),
		bad:     color.New(color.FgRed),
		skipped: color.New(color.FgYellow),
		head:    color.New(color.Bold),
	}
}

func (t *TerminalGatherer) StartSweep(name string, configs int) {
	t.head.Fprintf(t.w, "== %s sweep: %d configurations ==\n", name, configs)
}

func (t *TerminalGatherer) StartConfig(label string, x int) {
	fmt.Fprintf(t.w, "\n%s: %d\n", label, x)
}

func (t *TerminalGatherer) FinishSample(algo catalog.Algorithm, timeMs float64) {
	t.ok.Fprintf(t.w, "  %-20s %10.4f ms\n", algo.Name, timeMs)
}

func (t *TerminalGatherer) FailSample(algo catalog.Algorithm, err error) {
	t.bad.Fprintf(t.w, "  %-20s FAILED: %v\n", algo.Name, err)
}

func (t *TerminalGatherer) SkipAlgorithm(algo catalog.Algorithm) {
	t.skipped.Fprintf(t.w, "  %-20s skipped (pattern length over %d)\n", algo.Name, algo.MaxPatternLen)
}

func (t *TerminalGatherer) SkipConfig(x int, err error) {
	t.bad.Fprintf(t.w, "  configuration %d skipped: %v\n", x, err)
}

func (t *TerminalGatherer) FinishSweep(name string) {
	t.head.Fprintf(t.w, "== %s sweep finished ==\n", name)
}
