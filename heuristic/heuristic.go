// Package heuristic scores candidate cells for the maze search.
//
// For a candidate c the estimate is
//
//	f(c) = g(c) + h(c)
//
// where g is the distance from Start to c and h the distance from c to Goal,
// both measured with the same Metric. Every function here is pure.
//
// Metrics:
//
//   - Manhattan  |dx|+|dy|       matches 4-directional movement (default).
//   - Chebyshev  max(|dx|,|dy|)  treats diagonal moves as free.
package heuristic

import "github.com/katalvlaran/mazepath/maze"

// Metric selects the distance function used for both g and h.
type Metric int

const (
	// Manhattan distance: |dx| + |dy|.
	Manhattan Metric = iota
	// Chebyshev distance: max(|dx|, |dy|).
	Chebyshev
)

// String returns the metric name.
func (m Metric) String() string {
	switch m {
	case Manhattan:
		return "manhattan"
	case Chebyshev:
		return "chebyshev"
	default:
		return "unknown"
	}
}

// Valid reports whether m is a known metric.
func (m Metric) Valid() bool {
	return m == Manhattan || m == Chebyshev
}

// Distance returns the distance between a and b under m.
// An unknown metric falls back to Manhattan.
func (m Metric) Distance(a, b maze.Coord) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if m == Chebyshev {
		return max(dx, dy)
	}
	return dx + dy
}

// Endpoints is the part of a grid the scorer needs.
type Endpoints interface {
	Start() maze.Coord
	Goal() maze.Coord
}

// G returns the distance from e's Start to c.
func G(m Metric, e Endpoints, c maze.Coord) int {
	return m.Distance(e.Start(), c)
}

// H returns the distance from c to e's Goal.
func H(m Metric, e Endpoints, c maze.Coord) int {
	return m.Distance(c, e.Goal())
}

// F returns G + H.
func F(m Metric, e Endpoints, c maze.Coord) int {
	return G(m, e, c) + H(m, e, c)
}

// Scorer computes F for a fixed grid without re-querying its endpoints.
type Scorer struct {
	metric      Metric
	start, goal maze.Coord
}

// NewScorer captures e's endpoints for metric m.
func NewScorer(m Metric, e Endpoints) Scorer {
	return Scorer{metric: m, start: e.Start(), goal: e.Goal()}
}

// Metric returns the scorer's metric.
func (s Scorer) Metric() Metric { return s.metric }

// Score returns f(c) = g(c) + h(c).
func (s Scorer) Score(c maze.Coord) int {
	return s.metric.Distance(s.start, c) + s.metric.Distance(c, s.goal)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
