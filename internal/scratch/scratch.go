// Package scratch manages the working directory that holds corpus
// files for the duration of one benchmark run.
package scratch

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir is a per-run scratch directory. Close removes it; removal is
// best-effort and the caller only logs a failure.
type Dir struct {
	path string
}

// New creates the parent directory if absent and a fresh per-run
// directory inside it.
func New(parent string) (*Dir, error) {
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create scratch parent directory: %w", err)
	}
	path, err := os.MkdirTemp(parent, "seqbench-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}
	return &Dir{path: path}, nil
}

func (d *Dir) Path() string {
	return d.path
}

// CorpusPath returns the scratch location for a corpus of the given size.
func (d *Dir) CorpusPath(size int) string {
	return filepath.Join(d.path, fmt.Sprintf("seq_%d.fasta", size))
}

func (d *Dir) Close() error {
	return os.RemoveAll(d.path)
}
