package analysis

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/programme-lv/seqbench/internal/sweep"
)

// SpeedupPoint is the baseline-time / target-time ratio at one
// independent-variable value.
type SpeedupPoint struct {
	X     int
	Ratio float64
}

// Speedup computes per-size speedups of target relative to baseline.
// Only sizes measured successfully in both series with strictly
// positive times contribute; everything else is left out rather than
// fabricated. An empty baseline yields an empty result.
func Speedup(baseline *sweep.Series, target *sweep.Series) []SpeedupPoint {
	baseTimes := make(map[int]float64)
	baseSet := mapset.NewThreadUnsafeSet[int]()
	for _, p := range baseline.Points {
		if p.OK && p.TimeMs > 0 {
			baseTimes[p.X] = p.TimeMs
			baseSet.Add(p.X)
		}
	}

	targetSet := mapset.NewThreadUnsafeSet[int]()
	for _, p := range target.Points {
		if p.OK && p.TimeMs > 0 {
			targetSet.Add(p.X)
		}
	}

	common := baseSet.Intersect(targetSet)

	var out []SpeedupPoint
	for _, p := range target.Points {
		if !p.OK || p.TimeMs <= 0 || !common.Contains(p.X) {
			continue
		}
		out = append(out, SpeedupPoint{X: p.X, Ratio: baseTimes[p.X] / p.TimeMs})
	}
	return out
}
