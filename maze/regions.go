package maze

// open reports whether cell c can be part of a route: any in-bounds cell
// that is not Blocked. Unlike CellKind.Traversable, Start counts.
func (m *Maze) open(c Coord) bool {
	k, ok := m.At(c)
	return ok && k != Blocked
}

// Regions finds all contiguous regions of non-Blocked cells under
// 4-connectivity. Each region lists its cells in BFS discovery order;
// regions are ordered by their first cell in row-major order.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for seen flags and output.
func (m *Maze) Regions() [][]Coord {
	seen := make([]bool, len(m.cells))
	var regions [][]Coord

	for i0 := range m.cells {
		c0 := m.coordinate(i0)
		if seen[i0] || !m.open(c0) {
			continue
		}
		seen[i0] = true
		queue := []Coord{c0}
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range queue[qi].Neighbors4() {
				if !m.open(n) {
					continue
				}
				if ni := m.index(n); !seen[ni] {
					seen[ni] = true
					queue = append(queue, n)
				}
			}
		}
		regions = append(regions, queue)
	}
	return regions
}

// Connected reports whether a and b lie in the same region, i.e. whether
// some sequence of orthogonal steps over non-Blocked cells joins them.
// Either coordinate being out of bounds or Blocked yields false.
// Complexity: O(W·H) worst case; stops as soon as b is reached.
func (m *Maze) Connected(a, b Coord) bool {
	if !m.open(a) || !m.open(b) {
		return false
	}
	seen := make([]bool, len(m.cells))
	seen[m.index(a)] = true
	queue := []Coord{a}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == b {
			return true
		}
		for _, n := range u.Neighbors4() {
			if !m.open(n) {
				continue
			}
			if ni := m.index(n); !seen[ni] {
				seen[ni] = true
				queue = append(queue, n)
			}
		}
	}
	return false
}

// Distance returns the length, in steps, of a shortest orthogonal route
// from a to b over non-Blocked cells, or -1 if none exists.
// Complexity: O(W·H).
func (m *Maze) Distance(a, b Coord) int {
	if !m.open(a) || !m.open(b) {
		return -1
	}
	dist := make([]int, len(m.cells))
	for i := range dist {
		dist[i] = -1
	}
	dist[m.index(a)] = 0
	queue := []Coord{a}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == b {
			return dist[m.index(u)]
		}
		for _, n := range u.Neighbors4() {
			if !m.open(n) {
				continue
			}
			if ni := m.index(n); dist[ni] < 0 {
				dist[ni] = dist[m.index(u)] + 1
				queue = append(queue, n)
			}
		}
	}
	return -1
}
