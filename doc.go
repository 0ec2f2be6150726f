// Package mazepath finds routes through grid mazes with impassable walls.
//
// 🚀 What is mazepath?
//
//	A small, dependency-light library that brings together:
//		• maze/      — immutable grid of cell kinds, builders, reachability regions
//		• trail/     — push/pop coordinate stack that mirrors the search
//		• heuristic/ — Manhattan & Chebyshev distances, f = g + h scoring
//		• astar/     — heuristic-ordered depth-first backtracking search
//
// ✨ Why mazepath?
//
//   - Deterministic – fixed east, south, west, north neighbour order; stable tie-breaks
//   - Memoised – every cell is expanded at most once per search
//   - Stack-safe – explicit frame stack instead of recursion
//   - Observable – visit/backtrack hooks and logrus tracing
//
// Quick ASCII example (S start, G goal, # wall, + route):
//
//	. . # . .
//	. S # . .
//	. + # . .
//	. + # G .
//	. + + + .
//
//	go get github.com/katalvlaran/mazepath
package mazepath
