package runner

import "fmt"

// Kind classifies a failed invocation of the external executable.
type Kind int

const (
	SpawnFailure Kind = iota + 1
	NonZeroExit
	UnparsableOutput
	Timeout
)

func (k Kind) String() string {
	switch k {
	case SpawnFailure:
		return "spawn failure"
	case NonZeroExit:
		return "non-zero exit"
	case UnparsableOutput:
		return "unparsable output"
	case Timeout:
		return "timeout"
	default:
		return fmt.Sprintf("unknown kind %d", int(k))
	}
}

// RunError is the classified failure of a single sample. It is never
// fatal to the sweep; the sample is simply recorded as missing.
type RunError struct {
	Kind      Kind
	Algorithm string
	Detail    string
}

func (e *RunError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Algorithm, e.Kind, e.Detail)
}
