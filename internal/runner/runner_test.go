package runner_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/programme-lv/seqbench/internal/catalog"
	"github.com/programme-lv/seqbench/internal/runner"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matcher.sh")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755)
	require.NoError(t, err)
	return path
}

func naive(t *testing.T) catalog.Algorithm {
	t.Helper()
	a, ok := catalog.Find(catalog.Default(), "naive")
	require.True(t, ok)
	return a
}

func TestRunSuccess(t *testing.T) {
	exe := writeScript(t, `echo "  12.5  "`)
	r := runner.New(exe, time.Second)

	ms, err := r.Run(context.Background(), naive(t), "corpus.fasta", "ACGT")
	require.NoError(t, err)
	require.Equal(t, 12.5, ms)
}

func TestRunArgumentContract(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args")
	exe := writeScript(t, `echo "$@" > `+argsFile+`; echo 1.0`)
	r := runner.New(exe, time.Second)

	_, err := r.Run(context.Background(), naive(t), "/tmp/seq_50.fasta", "ACGTAC")
	require.NoError(t, err)

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	require.Equal(t, "--benchmark 15 /tmp/seq_50.fasta ACGTAC\n", string(args))
}

func TestRunNonZeroExit(t *testing.T) {
	exe := writeScript(t, `echo "boom" >&2; exit 3`)
	r := runner.New(exe, time.Second)

	_, err := r.Run(context.Background(), naive(t), "c", "p")
	requireKind(t, err, runner.NonZeroExit)
}

func TestRunUnparsableOutput(t *testing.T) {
	for _, body := range []string{
		`echo "banana"`,
		`echo "-5.0"`,
		`echo "inf"`,
		`echo "nan"`,
		`true`, // empty stdout
	} {
		exe := writeScript(t, body)
		r := runner.New(exe, time.Second)

		_, err := r.Run(context.Background(), naive(t), "c", "p")
		requireKind(t, err, runner.UnparsableOutput)
	}
}

func TestRunZeroIsValid(t *testing.T) {
	exe := writeScript(t, `echo "0.0"`)
	r := runner.New(exe, time.Second)

	ms, err := r.Run(context.Background(), naive(t), "c", "p")
	require.NoError(t, err)
	require.Equal(t, 0.0, ms)
}

func TestRunTimeout(t *testing.T) {
	exe := writeScript(t, `sleep 5; echo "1.0"`)
	r := runner.New(exe, 150*time.Millisecond)

	start := time.Now()
	_, err := r.Run(context.Background(), naive(t), "c", "p")
	requireKind(t, err, runner.Timeout)
	require.Less(t, time.Since(start), 4*time.Second, "process was not terminated on deadline")
}

func TestRunSpawnFailure(t *testing.T) {
	r := runner.New(filepath.Join(t.TempDir(), "does-not-exist"), time.Second)

	_, err := r.Run(context.Background(), naive(t), "c", "p")
	requireKind(t, err, runner.SpawnFailure)
}

func TestProbe(t *testing.T) {
	// Non-spawn failures are acceptable for a probe: the executable
	// runs, it just dislikes the input.
	exe := writeScript(t, `exit 1`)
	r := runner.New(exe, time.Second)
	require.NoError(t, r.Probe(context.Background(), naive(t), "c", "p"))

	bad := runner.New(filepath.Join(t.TempDir(), "missing"), time.Second)
	require.Error(t, bad.Probe(context.Background(), naive(t), "c", "p"))
}

func requireKind(t *testing.T, err error, kind runner.Kind) {
	t.Helper()
	require.Error(t, err)
	var runErr *runner.RunError
	require.True(t, errors.As(err, &runErr), "want *RunError, got %T: %v", err, err)
	require.Equal(t, kind, runErr.Kind, "got %v", runErr)
}
