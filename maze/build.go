package maze

import "fmt"

const methodBuild = "Build"

// Build returns a width×height Maze of Passable cells with Start at start,
// Goal at goal and Blocked cells at every coordinate in walls.
//
// Contract:
//   - width ≥ 1 and height ≥ 1 (else ErrEmptyGrid).
//   - start, goal and walls must lie inside the grid (else ErrOutOfBounds).
//   - start and goal must differ and must not be walls (else ErrNoGoal / ErrNoStart).
//
// Duplicate walls are harmless. Complexity: O(W×H + len(walls)).
func Build(width, height int, start, goal Coord, walls ...Coord) (*Maze, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%s: width=%d, height=%d: %w", methodBuild, width, height, ErrEmptyGrid)
	}

	rows := make([][]CellKind, height)
	for y := range rows {
		rows[y] = make([]CellKind, width)
	}
	inside := func(c Coord) bool {
		return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
	}

	for _, w := range walls {
		if !inside(w) {
			return nil, fmt.Errorf("%s: wall %v: %w", methodBuild, w, ErrOutOfBounds)
		}
		rows[w.Y][w.X] = Blocked
	}
	if !inside(start) {
		return nil, fmt.Errorf("%s: start %v: %w", methodBuild, start, ErrOutOfBounds)
	}
	if !inside(goal) {
		return nil, fmt.Errorf("%s: goal %v: %w", methodBuild, goal, ErrOutOfBounds)
	}
	// A wall on top of an endpoint would silently erase it.
	if rows[start.Y][start.X] == Blocked {
		return nil, fmt.Errorf("%s: start %v is a wall: %w", methodBuild, start, ErrNoStart)
	}
	if rows[goal.Y][goal.X] == Blocked {
		return nil, fmt.Errorf("%s: goal %v is a wall: %w", methodBuild, goal, ErrNoGoal)
	}
	rows[start.Y][start.X] = Start
	rows[goal.Y][goal.X] = Goal // start == goal leaves no Start cell

	m, err := New(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	return m, nil
}

// MustBuild is like Build but panics on error. Intended for tests and
// package-level fixtures with literal arguments.
func MustBuild(width, height int, start, goal Coord, walls ...Coord) *Maze {
	m, err := Build(width, height, start, goal, walls...)
	if err != nil {
		panic(err)
	}
	return m
}
