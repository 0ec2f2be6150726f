// Package maze defines core types and sentinel errors
// for the maze subpackage of github.com/katalvlaran/mazepath.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrUnknownCell indicates a cell value outside the CellKind range.
	ErrUnknownCell = errors.New("maze: unknown cell kind")
	// ErrNoStart indicates the grid has no Start cell.
	ErrNoStart = errors.New("maze: grid must have a start cell")
	// ErrNoGoal indicates the grid has no Goal cell.
	ErrNoGoal = errors.New("maze: grid must have a goal cell")
	// ErrMultipleStarts indicates more than one Start cell.
	ErrMultipleStarts = errors.New("maze: grid must have exactly one start cell")
	// ErrMultipleGoals indicates more than one Goal cell.
	ErrMultipleGoals = errors.New("maze: grid must have exactly one goal cell")
	// ErrOutOfBounds indicates a coordinate passed to a builder lies outside the grid.
	ErrOutOfBounds = errors.New("maze: coordinate out of bounds")
)

// CellKind classifies a single grid cell.
type CellKind uint8

const (
	// Passable is an open cell a path may traverse.
	Passable CellKind = iota
	// Blocked is an impassable obstacle.
	Blocked
	// Start is the unique origin cell.
	Start
	// Goal is the unique destination cell.
	Goal
)

// String returns the lower-case name of the kind.
func (k CellKind) String() string {
	switch k {
	case Passable:
		return "passable"
	case Blocked:
		return "blocked"
	case Start:
		return "start"
	case Goal:
		return "goal"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

// Traversable reports whether a path may step onto a cell of this kind.
// Start is excluded: the search begins there and never re-enters it.
func (k CellKind) Traversable() bool {
	return k == Passable || k == Goal
}

// Coord is an immutable (X, Y) grid position. X grows to the east,
// Y grows to the south. Coord is comparable and is used directly as a map key.
type Coord struct {
	X, Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns c offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// String formats the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Unit offsets of the four orthogonal moves.
var (
	East  = Coord{X: 1, Y: 0}
	South = Coord{X: 0, Y: 1}
	West  = Coord{X: -1, Y: 0}
	North = Coord{X: 0, Y: -1}
)

// Directions4 lists the orthogonal moves in their fixed, clockwise order
// starting east. Searches break score ties by this order.
var Directions4 = [4]Coord{East, South, West, North}

// Neighbors4 returns the four orthogonal neighbours of c in Directions4 order.
// Neighbours may lie outside any particular grid.
func (c Coord) Neighbors4() [4]Coord {
	var out [4]Coord
	for i, d := range Directions4 {
		out[i] = c.Add(d)
	}
	return out
}

// Maze is an immutable rectangular grid of CellKind values with exactly one
// Start and one Goal. Cells are stored row-major: index = y*width + x.
type Maze struct {
	width, height int
	cells         []CellKind
	start, goal   Coord
}
