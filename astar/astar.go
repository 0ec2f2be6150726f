// Package astar finds a route between the Start and Goal cells of a maze
// with a depth-first backtracking search whose neighbour order is set by
// the A* estimate f = g + h.
//
// Key features:
//   - Search(g, opts...) returns a Result with the trail and diagnostics.
//   - FindPath(g, opts...) returns just the trail, or nil when there is no path.
//   - Neighbours are generated east, south, west, north, stable-sorted by f.
//   - Every generated neighbour is marked visited before any is descended
//     into, so no cell is expanded twice.
//   - The walk uses an explicit frame stack; trail length is bounded by the
//     heap, not the goroutine stack.
//
// This is not priority-queue A*: there is no open set and no reopening.
// On uniform-cost grids the ordering steers the walk towards a shortest
// route; it does not guarantee one.
//
// Options:
//
//   - WithMetric(m)           distance metric for g and h (default Manhattan).
//   - WithContext(ctx)        cancellation, checked once per step.
//   - WithMaxDepth(limit)     do not expand cells limit steps from Start.
//   - WithOnVisit(fn)         push hook; error aborts.
//   - WithOnBacktrack(fn)     pop hook; error aborts.
//   - WithLogger(l)           logrus logger for Debug/Trace output.
//
// Errors:
//
//   - ErrGridNil              if g is nil.
//   - ErrInvalidOptions       if an option is out of range.
//   - context errors          if ctx is done.
//   - any error returned by OnVisit or OnBacktrack.
//
// A missing route is not an error: Result.Found is false and Trail is nil.
package astar

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/heuristic"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/trail"
)

// frame is one level of the explicit search stack: the cell being
// explored, its sorted candidates and the index of the next one to try.
type frame struct {
	cell  maze.Coord
	next  []maze.Coord
	index int
}

// candidate pairs a neighbour with its f score for sorting.
type candidate struct {
	cell  maze.Coord
	score int
}

// walker owns the state of a single search.
type walker struct {
	grid    Grid
	opts    Options
	scorer  heuristic.Scorer
	goal    maze.Coord
	visited map[maze.Coord]struct{}
	trail   *trail.Trail
	log     logrus.Ext1FieldLogger
	res     *Result
	buf     []candidate
}

// FindPath runs Search and returns only the trail. The trail is nil when no
// route exists; err is non-nil only for invalid input, cancellation or a
// hook failure.
func FindPath(g Grid, opts ...Option) (*trail.Trail, error) {
	res, err := Search(g, opts...)
	if err != nil {
		return nil, err
	}
	return res.Trail, nil
}

// Search explores g from its Start and reports the route to its Goal.
// g is only read; concurrent searches over one grid are safe.
func Search(g Grid, opts ...Option) (*Result, error) {
	// 1. Validate input grid
	if isNilGrid(g) {
		return nil, ErrGridNil
	}

	// 2. Apply and validate options
	sopts := DefaultOptions()
	for _, fn := range opts {
		fn(&sopts)
	}
	if err := sopts.Validate(); err != nil {
		return nil, err
	}

	// 3. Initialize state
	res := &Result{ID: uuid.New()}
	start, goal := g.Start(), g.Goal()
	w := &walker{
		grid:    g,
		opts:    sopts,
		scorer:  heuristic.NewScorer(sopts.Metric, g),
		goal:    goal,
		visited: make(map[maze.Coord]struct{}, g.Width()*g.Height()),
		trail:   trail.New(),
		res:     res,
		log: sopts.Logger.WithFields(logrus.Fields{
			"search_id": res.ID.String(),
			"start":     start.String(),
			"goal":      goal.String(),
			"metric":    sopts.Metric.String(),
		}),
	}
	w.log.Debug("search started")

	// 4. Walk
	found, err := w.run(start)
	res.Visited = len(w.visited)
	if err != nil {
		w.log.WithError(err).Debug("search aborted")
		return nil, err
	}

	// 5. Publish the trail only on success
	if found {
		res.Found = true
		res.Trail = w.trail
	}
	w.log.WithFields(logrus.Fields{
		"found":      res.Found,
		"length":     res.Trail.Len(),
		"expanded":   res.Expanded,
		"visited":    res.Visited,
		"backtracks": res.Backtracks,
	}).Debug("search finished")

	return res, nil
}

// run marks and pushes start, then drives the frame stack until Goal is
// reached or every branch is exhausted.
func (w *walker) run(start maze.Coord) (bool, error) {
	w.visited[start] = struct{}{}
	w.trail.Push(start)
	if err := w.visit(start); err != nil {
		return false, err
	}
	if start == w.goal {
		return true, nil
	}

	stack := []frame{w.expand(start)}
	for len(stack) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return false, fmt.Errorf("astar: search %s: %w", w.res.ID, w.opts.Ctx.Err())
		default:
		}

		top := &stack[len(stack)-1]

		// Dead end: unwind this cell unless it is Start.
		if top.index == len(top.next) {
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				break
			}
			if err := w.backtrack(); err != nil {
				return false, err
			}
			continue
		}

		c := top.next[top.index]
		top.index++

		w.trail.Push(c)
		if err := w.visit(c); err != nil {
			return false, err
		}
		if c == w.goal {
			return true, nil
		}
		stack = append(stack, w.expand(c))
	}

	return false, nil
}

// expand builds the frame for c: in-bounds, traversable, unvisited
// neighbours in Directions4 order, stable-sorted by ascending f, all marked
// visited before the frame is returned.
func (w *walker) expand(c maze.Coord) frame {
	f := frame{cell: c}

	// Depth limit: steps from Start equal trail length minus one.
	if w.opts.MaxDepth >= 0 && w.trail.Len()-1 >= w.opts.MaxDepth {
		return f
	}
	w.res.Expanded++

	w.buf = w.buf[:0]
	for _, n := range c.Neighbors4() {
		kind, ok := w.grid.At(n)
		if !ok || !kind.Traversable() {
			continue
		}
		if _, seen := w.visited[n]; seen {
			continue
		}
		w.buf = append(w.buf, candidate{cell: n, score: w.scorer.Score(n)})
	}
	// Ties keep generation order.
	slices.SortStableFunc(w.buf, func(a, b candidate) int {
		return cmp.Compare(a.score, b.score)
	})

	f.next = make([]maze.Coord, len(w.buf))
	for i, cand := range w.buf {
		f.next[i] = cand.cell
		w.visited[cand.cell] = struct{}{}
	}

	w.log.Tracef("expanded %v: %d candidates at depth %d", c, len(f.next), w.trail.Len()-1)

	return f
}

// visit fires the push hook for c.
func (w *walker) visit(c maze.Coord) error {
	if w.opts.OnVisit == nil {
		return nil
	}
	if err := w.opts.OnVisit(c); err != nil {
		return fmt.Errorf("astar: OnVisit hook for %v: %w", c, err)
	}
	return nil
}

// backtrack pops the most recent cell off the trail and fires the pop hook.
func (w *walker) backtrack() error {
	c, err := w.trail.Pop()
	if err != nil {
		return fmt.Errorf("astar: backtrack: %w", err)
	}
	w.res.Backtracks++
	w.log.Tracef("backtracked from %v", c)

	if w.opts.OnBacktrack == nil {
		return nil
	}
	if err = w.opts.OnBacktrack(c); err != nil {
		return fmt.Errorf("astar: OnBacktrack hook for %v: %w", c, err)
	}
	return nil
}

// isNilGrid catches both an untyped nil and a typed nil *maze.Maze.
func isNilGrid(g Grid) bool {
	if g == nil {
		return true
	}
	m, ok := g.(*maze.Maze)
	return ok && m == nil
}
