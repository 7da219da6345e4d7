// Package astar defines the result type, heuristics and configuration
// options for the A* search over a grid.Grid.
package astar

import (
	"errors"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/gridastar/grid"
)

// Sentinel errors returned by Search or raised by invalid options.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrStartOutOfBounds indicates that the start point names no cell.
	ErrStartOutOfBounds = errors.New("astar: start point out of bounds")

	// ErrEndOutOfBounds indicates that the end point names no cell.
	ErrEndOutOfBounds = errors.New("astar: end point out of bounds")

	// ErrNilHeuristic is raised (via panic) by WithHeuristic(nil).
	ErrNilHeuristic = errors.New("astar: heuristic must not be nil")

	// ErrBadMaxCost is raised (via panic) by WithMaxCost with a negative value.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")
)

// Result is the outcome of one search.
//
// Path runs from start to end inclusive, or is empty when no path exists.
// Cost is the accumulated g value at end: the sum of Cost over every node
// entered after start. Expanded counts nodes closed during the search.
type Result struct {
	Path     []*grid.Node
	Cost     float64
	Expanded int
}

// Found reports whether a path was found.
func (r Result) Found() bool { return len(r.Path) > 0 }

// Weight returns the summed Cost of every node on the path, endpoints
// included. It is 0 when no path was found.
func (r Result) Weight() float64 { return grid.PathCost(r.Path) }

// Options configures a search.
//
// Heuristic – estimate of the remaining cost between two points.
// MaxCost   – neighbours whose tentative cost exceeds this are not relaxed.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// Logger    – receives debug records for search start and finish.
type Options struct {
	Heuristic Heuristic
	MaxCost   float64
	Logger    *slog.Logger
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithHeuristic replaces the default Manhattan heuristic.
// Panics with ErrNilHeuristic if h is nil.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			panic(ErrNilHeuristic.Error())
		}
		o.Heuristic = h
	}
}

// WithMaxCost stops relaxation of any neighbour whose tentative cost from
// start would exceed max. Panics with ErrBadMaxCost if max < 0.
func WithMaxCost(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithLogger routes debug records of the search to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the configuration used when no options are given.
//
// Defaults:
//   - Heuristic: Manhattan.
//   - MaxCost:   +Inf.
//   - Logger:    discards everything.
func DefaultOptions() Options {
	return Options{
		Heuristic: Manhattan,
		MaxCost:   math.Inf(1),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
