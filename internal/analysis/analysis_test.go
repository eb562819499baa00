package analysis_test

import (
	"math"
	"testing"

	"github.com/programme-lv/seqbench/internal/analysis"
	"github.com/programme-lv/seqbench/internal/catalog"
	"github.com/programme-lv/seqbench/internal/sweep"
	"github.com/stretchr/testify/require"
)

func seriesOf(points ...sweep.Point) *sweep.Series {
	return &sweep.Series{
		Algo:   catalog.Algorithm{ID: 1, Key: "alpha", Name: "Alpha"},
		Points: points,
	}
}

func TestFitRecoversExactPowerLaw(t *testing.T) {
	// time = 0.002 * x^1.5, exactly
	var points []sweep.Point
	for _, x := range []int{1000, 5000, 10000, 50000, 100000} {
		points = append(points, sweep.Point{
			X:      x,
			TimeMs: 0.002 * math.Pow(float64(x), 1.5),
			OK:     true,
		})
	}
	fit, ok := analysis.FitPowerLaw(seriesOf(points...))
	require.True(t, ok)
	require.InDelta(t, 1.5, fit.Exponent, 1e-9)
	require.InDelta(t, 0.002, fit.Constant, 1e-9)
	require.Equal(t, 5, fit.Points)
}

func TestFitIsDeterministic(t *testing.T) {
	s := seriesOf(
		sweep.Point{X: 10, TimeMs: 3.7, OK: true},
		sweep.Point{X: 100, TimeMs: 41.2, OK: true},
		sweep.Point{X: 1000, TimeMs: 388.9, OK: true},
	)
	a, ok := analysis.FitPowerLaw(s)
	require.True(t, ok)
	b, ok := analysis.FitPowerLaw(s)
	require.True(t, ok)
	require.Equal(t, a, b)
}

func TestFitSkipsWithFewerThanTwoValidPoints(t *testing.T) {
	_, ok := analysis.FitPowerLaw(seriesOf())
	require.False(t, ok)

	_, ok = analysis.FitPowerLaw(seriesOf(
		sweep.Point{X: 1000, TimeMs: 1.0, OK: true},
	))
	require.False(t, ok)

	// missing entries and non-positive times do not count as points
	_, ok = analysis.FitPowerLaw(seriesOf(
		sweep.Point{X: 1000, TimeMs: 1.0, OK: true},
		sweep.Point{X: 5000, OK: false},
		sweep.Point{X: 10000, TimeMs: 0, OK: true},
	))
	require.False(t, ok)
}

func TestFitIgnoresInvalidPoints(t *testing.T) {
	fit, ok := analysis.FitPowerLaw(seriesOf(
		sweep.Point{X: 10, TimeMs: 10, OK: true},
		sweep.Point{X: 20, OK: false},
		sweep.Point{X: 100, TimeMs: 100, OK: true},
		sweep.Point{X: 200, TimeMs: 0, OK: true},
	))
	require.True(t, ok)
	require.Equal(t, 2, fit.Points)
	require.InDelta(t, 1.0, fit.Exponent, 1e-9)
}

func TestSpeedupScenario(t *testing.T) {
	baseline := seriesOf(sweep.Point{X: 100000, TimeMs: 120.0, OK: true})
	target := seriesOf(sweep.Point{X: 100000, TimeMs: 12.0, OK: true})

	out := analysis.Speedup(baseline, target)
	require.Len(t, out, 1)
	require.Equal(t, 100000, out[0].X)
	require.InDelta(t, 10.0, out[0].Ratio, 1e-9)
}

func TestSpeedupRestrictsToCommonSizes(t *testing.T) {
	baseline := seriesOf(
		sweep.Point{X: 1000, TimeMs: 10, OK: true},
		sweep.Point{X: 5000, TimeMs: 50, OK: true},
		sweep.Point{X: 10000, OK: false}, // baseline failed here
	)
	target := seriesOf(
		sweep.Point{X: 1000, TimeMs: 2, OK: true},
		sweep.Point{X: 10000, TimeMs: 4, OK: true}, // no baseline counterpart
		sweep.Point{X: 50000, TimeMs: 8, OK: true}, // baseline never ran
	)

	out := analysis.Speedup(baseline, target)
	require.Len(t, out, 1)
	require.Equal(t, 1000, out[0].X)
	require.InDelta(t, 5.0, out[0].Ratio, 1e-9)
}

func TestSpeedupNeverDividesByZero(t *testing.T) {
	baseline := seriesOf(
		sweep.Point{X: 1000, TimeMs: 0, OK: true},
		sweep.Point{X: 5000, TimeMs: 50, OK: true},
	)
	target := seriesOf(
		sweep.Point{X: 1000, TimeMs: 0, OK: true},
		sweep.Point{X: 5000, TimeMs: 0, OK: true},
	)

	require.Empty(t, analysis.Speedup(baseline, target))
}

func TestSpeedupEmptyBaseline(t *testing.T) {
	baseline := seriesOf()
	target := seriesOf(sweep.Point{X: 1000, TimeMs: 5, OK: true})

	require.Empty(t, analysis.Speedup(baseline, target))
}
