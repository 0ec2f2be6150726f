// Package trail implements the ordered coordinate stack that a search
// pushes to when it descends into a cell and pops from when it backtracks.
// When a search succeeds the trail is the route: first element Start,
// last element Goal.
package trail

import (
	"errors"
	"iter"
	"strings"

	"github.com/katalvlaran/mazepath/maze"
)

// ErrUnderflow is returned by Pop on an empty trail. Seeing it from a
// search means a push/pop pairing is broken.
var ErrUnderflow = errors.New("trail: pop from empty trail")

// Trail is an ordered, mutable sequence of coordinates.
// The zero value is an empty trail ready to use. A Trail is not safe for
// concurrent mutation.
type Trail struct {
	coords []maze.Coord
}

// New returns a trail holding coords in order.
func New(coords ...maze.Coord) *Trail {
	t := &Trail{coords: make([]maze.Coord, 0, len(coords))}
	t.coords = append(t.coords, coords...)
	return t
}

// Push appends c as the most recent coordinate.
func (t *Trail) Push(c maze.Coord) {
	t.coords = append(t.coords, c)
}

// Pop removes and returns the most recently pushed coordinate.
// Returns ErrUnderflow if the trail is empty.
func (t *Trail) Pop() (maze.Coord, error) {
	n := len(t.coords)
	if n == 0 {
		return maze.Coord{}, ErrUnderflow
	}
	c := t.coords[n-1]
	t.coords = t.coords[:n-1]
	return c, nil
}

// Len returns the number of coordinates on the trail.
func (t *Trail) Len() int {
	if t == nil {
		return 0
	}
	return len(t.coords)
}

// Last returns the most recent coordinate, or false if the trail is empty.
func (t *Trail) Last() (maze.Coord, bool) {
	if t.Len() == 0 {
		return maze.Coord{}, false
	}
	return t.coords[len(t.coords)-1], true
}

// Coords returns a copy of the coordinates, first to last.
func (t *Trail) Coords() []maze.Coord {
	if t == nil {
		return nil
	}
	out := make([]maze.Coord, len(t.coords))
	copy(out, t.coords)
	return out
}

// All yields (position, coordinate) pairs from first to last.
func (t *Trail) All() iter.Seq2[int, maze.Coord] {
	return func(yield func(int, maze.Coord) bool) {
		if t == nil {
			return
		}
		for i, c := range t.coords {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Equal reports whether t and other hold the same coordinates in the same
// order. A nil trail equals only another nil trail.
func (t *Trail) Equal(other *Trail) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.coords) != len(other.coords) {
		return false
	}
	for i, c := range t.coords {
		if other.coords[i] != c {
			return false
		}
	}
	return true
}

// Contiguous reports whether every consecutive pair differs by exactly one
// unit along exactly one axis. Empty and single-cell trails are contiguous.
func (t *Trail) Contiguous() bool {
	for i := 1; i < t.Len(); i++ {
		dx := abs(t.coords[i].X - t.coords[i-1].X)
		dy := abs(t.coords[i].Y - t.coords[i-1].Y)
		if dx+dy != 1 {
			return false
		}
	}
	return true
}

// String formats the trail as "(x,y) -> (x,y) -> ...".
func (t *Trail) String() string {
	if t.Len() == 0 {
		return "[]"
	}
	parts := make([]string, len(t.coords))
	for i, c := range t.coords {
		parts[i] = c.String()
	}
	return strings.Join(parts, " -> ")
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
