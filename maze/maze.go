// Package maze provides the grid collaborator used by the search engine:
// an immutable rectangle of cell kinds with one Start and one Goal.
//
//   - New builds a Maze from a [][]CellKind (rows indexed by y).
//   - Build lays out an open field with walls at given coordinates.
//   - At answers "what is at (x,y)"; out-of-bounds queries are absent, not errors.
//   - Regions and Connected report 4-connected components of traversable cells.
package maze

// New constructs a Maze from a non-empty, rectangular 2D slice where
// rows[y][x] is the kind of cell (x,y). It deep-copies the input.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrUnknownCell, ErrNoStart,
// ErrNoGoal, ErrMultipleStarts or ErrMultipleGoals on invalid input.
// Complexity: O(W×H) time and memory.
func New(rows [][]CellKind) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	m := &Maze{width: w, height: h, cells: make([]CellKind, 0, w*h)}
	starts, goals := 0, 0
	for y, row := range rows {
		for x, k := range row {
			switch k {
			case Passable, Blocked:
			case Start:
				starts++
				m.start = Coord{X: x, Y: y}
			case Goal:
				goals++
				m.goal = Coord{X: x, Y: y}
			default:
				return nil, ErrUnknownCell
			}
			m.cells = append(m.cells, k)
		}
	}

	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, ErrMultipleStarts
	case goals == 0:
		return nil, ErrNoGoal
	case goals > 1:
		return nil, ErrMultipleGoals
	}

	return m, nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// Start returns the Start coordinate.
func (m *Maze) Start() Coord { return m.start }

// Goal returns the Goal coordinate.
func (m *Maze) Goal() Coord { return m.goal }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (m *Maze) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < m.width && c.Y >= 0 && c.Y < m.height
}

// At returns the kind of cell c. The boolean is false when c is out of
// bounds, in which case the kind is Blocked.
// Complexity: O(1).
func (m *Maze) At(c Coord) (CellKind, bool) {
	if !m.InBounds(c) {
		return Blocked, false
	}
	return m.cells[m.index(c)], true
}

// Cells returns a deep copy of the grid as rows[y][x].
func (m *Maze) Cells() [][]CellKind {
	rows := make([][]CellKind, m.height)
	for y := range rows {
		rows[y] = make([]CellKind, m.width)
		copy(rows[y], m.cells[y*m.width:(y+1)*m.width])
	}
	return rows
}

// index maps c to a row-major index: y*width + x.
func (m *Maze) index(c Coord) int {
	return c.Y*m.width + c.X
}

// coordinate converts a row-major index back to a Coord.
func (m *Maze) coordinate(idx int) Coord {
	return Coord{X: idx % m.width, Y: idx / m.width}
}
