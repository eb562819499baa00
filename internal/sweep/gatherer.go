package sweep

import "github.com/programme-lv/seqbench/internal/catalog"

// Gatherer receives progress events while a sweep runs. Implementations
// must not influence the sweep; every event is informational.
type Gatherer interface {
	StartSweep(name string, configs int)
	StartConfig(label string, x int)
	FinishSample(algo catalog.Algorithm, timeMs float64)
	FailSample(algo catalog.Algorithm, err error)
	SkipAlgorithm(algo catalog.Algorithm)
	SkipConfig(x int, err error)
	FinishSweep(name string)
}
