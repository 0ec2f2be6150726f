package maze_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/maze"
)

// TestRegions_TwoRooms splits a 5×3 field with a full wall column.
//
//	S o X o o
//	o o X o G
//	o o X o o
//
// Expect two regions of 6 cells each.
func TestRegions_TwoRooms(t *testing.T) {
	m, err := maze.New([][]maze.CellKind{
		{S, o, X, o, o},
		{o, o, X, o, G},
		{o, o, X, o, o},
	})
	require.NoError(t, err)

	regions := m.Regions()
	require.Len(t, regions, 2)
	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{6, 6}, sizes)
	assert.Equal(t, maze.C(0, 0), regions[0][0])
	assert.Equal(t, maze.C(3, 0), regions[1][0])

	assert.False(t, m.Connected(m.Start(), m.Goal()))
	assert.Equal(t, -1, m.Distance(m.Start(), m.Goal()))
	assert.True(t, m.Connected(maze.C(0, 2), m.Start()))
}

// TestConnected_Gap opens a single gap in the wall column.
func TestConnected_Gap(t *testing.T) {
	m := maze.MustBuild(5, 5, maze.C(1, 1), maze.C(3, 3),
		maze.C(2, 0), maze.C(2, 1), maze.C(2, 2), maze.C(2, 3))

	assert.True(t, m.Connected(m.Start(), m.Goal()))
	assert.Equal(t, 6, m.Distance(m.Start(), m.Goal()))
	assert.Len(t, m.Regions(), 1)
}

// TestConnected_Degenerate covers blocked and out-of-bounds endpoints.
func TestConnected_Degenerate(t *testing.T) {
	m := maze.MustBuild(3, 1, maze.C(0, 0), maze.C(2, 0), maze.C(1, 0))

	assert.False(t, m.Connected(maze.C(0, 0), maze.C(1, 0)), "blocked endpoint")
	assert.False(t, m.Connected(maze.C(0, 0), maze.C(5, 0)), "out of bounds")
	assert.True(t, m.Connected(maze.C(0, 0), maze.C(0, 0)))
	assert.Equal(t, 0, m.Distance(maze.C(2, 0), maze.C(2, 0)))
}
