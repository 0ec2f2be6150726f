package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mazepath/heuristic"
	"github.com/katalvlaran/mazepath/maze"
)

type endpoints struct{ s, g maze.Coord }

func (e endpoints) Start() maze.Coord { return e.s }
func (e endpoints) Goal() maze.Coord  { return e.g }

func TestMetric_Distance(t *testing.T) {
	cases := []struct {
		name      string
		a, b      maze.Coord
		manhattan int
		chebyshev int
	}{
		{"Same", maze.C(2, 2), maze.C(2, 2), 0, 0},
		{"Horizontal", maze.C(0, 0), maze.C(4, 0), 4, 4},
		{"Diagonal", maze.C(1, 1), maze.C(3, 3), 4, 2},
		{"Skewed", maze.C(5, 1), maze.C(0, 3), 7, 5},
		{"Negative", maze.C(-2, -1), maze.C(1, 1), 5, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.manhattan, heuristic.Manhattan.Distance(tc.a, tc.b))
			assert.Equal(t, tc.chebyshev, heuristic.Chebyshev.Distance(tc.a, tc.b))
			// Symmetric.
			assert.Equal(t, tc.manhattan, heuristic.Manhattan.Distance(tc.b, tc.a))
			assert.Equal(t, tc.chebyshev, heuristic.Chebyshev.Distance(tc.b, tc.a))
		})
	}
}

func TestGHF(t *testing.T) {
	e := endpoints{s: maze.C(1, 1), g: maze.C(3, 3)}
	c := maze.C(2, 1)

	assert.Equal(t, 1, heuristic.G(heuristic.Manhattan, e, c))
	assert.Equal(t, 3, heuristic.H(heuristic.Manhattan, e, c))
	assert.Equal(t, 4, heuristic.F(heuristic.Manhattan, e, c))

	assert.Equal(t, 1, heuristic.G(heuristic.Chebyshev, e, c))
	assert.Equal(t, 2, heuristic.H(heuristic.Chebyshev, e, c))
	assert.Equal(t, 3, heuristic.F(heuristic.Chebyshev, e, c))
}

func TestScorer_MatchesF(t *testing.T) {
	m := maze.MustBuild(6, 4, maze.C(0, 3), maze.C(5, 0))
	for _, metric := range []heuristic.Metric{heuristic.Manhattan, heuristic.Chebyshev} {
		s := heuristic.NewScorer(metric, m)
		assert.Equal(t, metric, s.Metric())
		for y := 0; y < m.Height(); y++ {
			for x := 0; x < m.Width(); x++ {
				c := maze.C(x, y)
				assert.Equal(t, heuristic.F(metric, m, c), s.Score(c), "%s at %v", metric, c)
			}
		}
	}
}

func TestMetric_Names(t *testing.T) {
	assert.Equal(t, "manhattan", heuristic.Manhattan.String())
	assert.Equal(t, "chebyshev", heuristic.Chebyshev.String())
	assert.Equal(t, "unknown", heuristic.Metric(5).String())
	assert.True(t, heuristic.Chebyshev.Valid())
	assert.False(t, heuristic.Metric(-1).Valid())
	assert.Equal(t, 4, heuristic.Metric(5).Distance(maze.C(0, 0), maze.C(2, 2)), "unknown falls back to manhattan")
}
