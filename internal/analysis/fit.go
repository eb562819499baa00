// Package analysis derives metrics from collected sample series: an
// empirical complexity exponent per algorithm and relative speedups
// against a baseline.
package analysis

import (
	"math"

	"github.com/programme-lv/seqbench/internal/sweep"
)

// Fit is the least-squares power-law fit time = Constant * x^Exponent,
// computed in log-log space. The exponent is only a sanity check
// against the declared complexity class; nothing acts on it.
type Fit struct {
	Exponent float64
	Constant float64
	Points   int
}

// Eval evaluates the fitted curve at x.
func (f Fit) Eval(x float64) float64 {
	return f.Constant * math.Pow(x, f.Exponent)
}

// FitPowerLaw fits log(time) = a*log(x) + b over the series' valid
// samples. It needs at least two points with strictly positive x and
// time; otherwise the fit is skipped, not an error.
func FitPowerLaw(s *sweep.Series) (Fit, bool) {
	xs, times := s.Valid()

	var lx, ly []float64
	for i := range xs {
		if xs[i] > 0 && times[i] > 0 {
			lx = append(lx, math.Log(xs[i]))
			ly = append(ly, math.Log(times[i]))
		}
	}
	if len(lx) < 2 {
		return Fit{}, false
	}

	n := float64(len(lx))
	var sumX, sumY float64
	for i := range lx {
		sumX += lx[i]
		sumY += ly[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var cov, varX float64
	for i := range lx {
		cov += (lx[i] - meanX) * (ly[i] - meanY)
		varX += (lx[i] - meanX) * (lx[i] - meanX)
	}
	if varX == 0 {
		// all samples share one x value, the slope is undefined
		return Fit{}, false
	}

	slope := cov / varX
	intercept := meanY - slope*meanX
	return Fit{
		Exponent: slope,
		Constant: math.Exp(intercept),
		Points:   len(lx),
	}, true
}
