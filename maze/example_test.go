package maze_test

import (
	"fmt"

	"github.com/katalvlaran/mazepath/maze"
)

// ExampleMaze_Regions identifies the two rooms left by a full wall column.
func ExampleMaze_Regions() {
	m, _ := maze.New([][]maze.CellKind{
		{maze.Start, maze.Blocked, maze.Passable},
		{maze.Passable, maze.Blocked, maze.Goal},
	})

	for i, region := range m.Regions() {
		fmt.Printf("region %d: %v\n", i, region)
	}
	fmt.Println("connected:", m.Connected(m.Start(), m.Goal()))

	// Output:
	// region 0: [(0,0) (0,1)]
	// region 1: [(2,0) (2,1)]
	// connected: false
}

// ExampleBuild lays out a 4×2 field with one wall.
func ExampleBuild() {
	m, err := maze.Build(4, 2, maze.C(0, 0), maze.C(3, 1), maze.C(1, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	k, ok := m.At(maze.C(1, 0))
	fmt.Println(m.Width(), m.Height(), k, ok)
	k, ok = m.At(maze.C(4, 0))
	fmt.Println(k, ok)

	// Output:
	// 4 2 blocked true
	// blocked false
}
