package sweep

import "github.com/programme-lv/seqbench/internal/catalog"

// Point is one measured configuration. A failed run keeps its slot in
// the series with OK=false so the independent-variable sequence and the
// outcome sequence stay index-aligned.
type Point struct {
	X      int
	TimeMs float64
	OK     bool
}

// Series is the ordered per-algorithm sample collection of one sweep.
type Series struct {
	Algo   catalog.Algorithm
	Points []Point
}

func (s *Series) appendTime(x int, timeMs float64) {
	s.Points = append(s.Points, Point{X: x, TimeMs: timeMs, OK: true})
}

func (s *Series) appendMissing(x int) {
	s.Points = append(s.Points, Point{X: x})
}

// Valid returns the (x, time) pairs of successful samples, in order.
func (s *Series) Valid() (xs []float64, times []float64) {
	for _, p := range s.Points {
		if p.OK {
			xs = append(xs, float64(p.X))
			times = append(times, p.TimeMs)
		}
	}
	return xs, times
}

// TimeAt returns the measured time for the given independent-variable
// value, if a successful sample exists there.
func (s *Series) TimeAt(x int) (float64, bool) {
	for _, p := range s.Points {
		if p.X == x && p.OK {
			return p.TimeMs, true
		}
	}
	return 0, false
}
