// Package runner invokes the external pattern-matching executable for a
// single (algorithm, corpus, pattern) triple under a bounded deadline
// and classifies the outcome.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/programme-lv/seqbench/internal/catalog"
)

const DefaultTimeout = 30 * time.Second

type Runner struct {
	exePath string
	timeout time.Duration
}

// New returns a runner bound to the executable at exePath. A timeout
// of zero falls back to DefaultTimeout.
func New(exePath string, timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{exePath: exePath, timeout: timeout}
}

// Run executes `<exe> --benchmark <id> <corpusPath> <pattern>` and
// returns the elapsed milliseconds the executable reports on stdout.
// Every failure comes back as a *RunError; the caller decides whether
// to continue.
func (r *Runner) Run(ctx context.Context, algo catalog.Algorithm, corpusPath string, pattern string) (float64, error) {
	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, r.exePath,
		"--benchmark", strconv.Itoa(algo.ID), corpusPath, pattern)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	if err := cmd.Start(); err != nil {
		return 0, &RunError{Kind: SpawnFailure, Algorithm: algo.Key, Detail: err.Error()}
	}

	waitErr := cmd.Wait()
	if runCtx.Err() == context.DeadlineExceeded {
		return 0, &RunError{Kind: Timeout, Algorithm: algo.Key,
			Detail: fmt.Sprintf("exceeded deadline of %s", r.timeout)}
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			detail := fmt.Sprintf("exit status %d", exitErr.ExitCode())
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				detail += ": " + firstLine(msg)
			}
			return 0, &RunError{Kind: NonZeroExit, Algorithm: algo.Key, Detail: detail}
		}
		return 0, &RunError{Kind: SpawnFailure, Algorithm: algo.Key, Detail: waitErr.Error()}
	}

	out := strings.TrimSpace(stdout.String())
	ms, err := strconv.ParseFloat(out, 64)
	if err != nil || math.IsNaN(ms) || math.IsInf(ms, 0) || ms < 0 {
		return 0, &RunError{Kind: UnparsableOutput, Algorithm: algo.Key,
			Detail: fmt.Sprintf("stdout %q is not a finite non-negative number", out)}
	}
	return ms, nil
}

// Probe checks that the executable can be spawned at all. The sweep is
// pointless when every single invocation would fail to start, so a
// spawn failure here aborts the whole run; any other classification
// means the binary at least executes.
func (r *Runner) Probe(ctx context.Context, algo catalog.Algorithm, corpusPath string, pattern string) error {
	_, err := r.Run(ctx, algo, corpusPath, pattern)
	var runErr *RunError
	if errors.As(err, &runErr) && runErr.Kind == SpawnFailure {
		return fmt.Errorf("executable %s cannot be invoked: %s", r.exePath, runErr.Detail)
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
