// Package astar defines types and options for the heuristic-ordered
// backtracking search, including cancellation, visit/backtrack hooks,
// depth limiting, metric selection and structured logging.
package astar

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/heuristic"
	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/trail"
)

var (
	// ErrGridNil is returned when Search or FindPath is called without a grid.
	ErrGridNil = errors.New("astar: grid is nil")

	// ErrInvalidOptions wraps option validation failures.
	ErrInvalidOptions = errors.New("astar: invalid options")
)

// Grid is the read-only view of a maze the search needs.
// At must report false for coordinates outside the grid.
type Grid interface {
	Width() int
	Height() int
	At(c maze.Coord) (maze.CellKind, bool)
	Start() maze.Coord
	Goal() maze.Coord
}

// Option configures optional behavior of Search and FindPath.
type Option func(*Options)

// Options holds configurable parameters for one search.
type Options struct {
	// Ctx allows cancellation; checked once per frame step.
	// Defaults to context.Background().
	Ctx context.Context `validate:"required"`

	// Metric is the distance used for both g and h. Default Manhattan.
	Metric heuristic.Metric `validate:"gte=0,lte=1"`

	// MaxDepth, if non-negative, stops expansion of cells that are already
	// MaxDepth steps from Start. Default -1 (no limit).
	MaxDepth int `validate:"gte=-1"`

	// OnVisit, if non-nil, is invoked right after a cell is pushed onto the
	// trail. Returning an error aborts the search with that error.
	OnVisit func(c maze.Coord) error

	// OnBacktrack, if non-nil, is invoked right after a cell is popped off
	// the trail. Returning an error aborts the search with that error.
	OnBacktrack func(c maze.Coord) error

	// Logger receives Debug lines per search and Trace lines per
	// expansion and backtrack. Defaults to a logger that discards output.
	Logger logrus.Ext1FieldLogger `validate:"required"`
}

var validate = validator.New()

// DefaultOptions returns Options with:
//   - Background context
//   - Manhattan metric
//   - No depth limit (MaxDepth = -1)
//   - No hooks
//   - A discarding logger
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Metric:   heuristic.Manhattan,
		MaxDepth: -1,
		Logger:   discardLogger(),
	}
}

// Validate checks field ranges and required values.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return nil
}

// WithContext sets the context used for cancellation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMetric selects the distance metric for scoring.
func WithMetric(m heuristic.Metric) Option {
	return func(o *Options) {
		o.Metric = m
	}
}

// WithMaxDepth limits how many steps from Start the search descends.
// A limit of 0 expands nothing beyond Start.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithOnVisit installs fn as the push hook.
func WithOnVisit(fn func(c maze.Coord) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnBacktrack installs fn as the pop hook.
func WithOnBacktrack(fn func(c maze.Coord) error) Option {
	return func(o *Options) {
		o.OnBacktrack = fn
	}
}

// WithLogger routes search logs to l. Passing nil has no effect.
func WithLogger(l logrus.Ext1FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result captures the outcome of one search.
type Result struct {
	// ID identifies the run in log output.
	ID uuid.UUID

	// Trail is the route from Start to Goal, or nil when Found is false.
	Trail *trail.Trail

	// Found reports whether Goal was reached.
	Found bool

	// Expanded counts cells whose neighbours were generated.
	Expanded int

	// Visited is the final size of the visited set, Start included.
	Visited int

	// Backtracks counts cells popped off the trail after a dead end.
	Backtracks int
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
