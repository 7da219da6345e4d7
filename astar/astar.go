// Package astar implements A* search for the least-cost path between two
// cells of a grid.Grid under 4-connectivity.
//
// Moving into a cell costs that cell's Cost, so a path's accumulated cost
// is the sum of every cell it enters after the start. The open set is a
// pqueue.BinaryHeap keyed by f = g + h; decrease-key is done in place with
// Rescore, so every cell is queued at most once.
//
// Notes on implementation choices:
//
//   - All per-search state (g, h, f, visited, closed, parent) lives in a
//     slice indexed by grid.Grid.Index and is dropped on return. The Grid is
//     only read, so one Grid serves any number of searches.
//   - Parents are linear indices into that slice, never node pointers.
//   - h is computed at most once per cell and cached.
//   - The goal test happens on extraction, which with a consistent
//     heuristic guarantees the first extraction of end is optimal.
package astar

import (
	"fmt"

	"github.com/katalvlaran/gridastar/grid"
	"github.com/katalvlaran/gridastar/pqueue"
)

// Search computes a least-cost path from start to end over g.
//
// Returns:
//
//   - Result with Path = start..end inclusive when a path exists.
//   - Result with an empty Path when the open set is exhausted first.
//     This is a normal outcome, not an error.
//   - err if g is nil or start/end name no cell.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. A degenerate grid (no cells) returns an empty Result and nil error.
//  3. start must be in bounds (ErrStartOutOfBounds).
//  4. end must be in bounds (ErrEndOutOfBounds).
//
// Costs are assumed non-negative; see grid.Grid.Validate.
//
// Complexity:
//
//   - Time:  O(N log N), N = number of cells.
//   - Space: O(N).
func Search(g *grid.Grid, start, end grid.Point, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return Result{}, ErrNilGrid
	}
	if g.Empty() {
		return Result{}, nil
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: %s", ErrStartOutOfBounds, start)
	}
	if !g.InBounds(end) {
		return Result{}, fmt.Errorf("%w: %s", ErrEndOutOfBounds, end)
	}

	r := newRunner(g, start, end, cfg)
	cfg.Logger.Debug("astar: search started",
		"start", start.String(), "end", end.String(), "cells", g.Len())

	res := r.process()
	cfg.Logger.Debug("astar: search finished",
		"found", res.Found(), "expanded", res.Expanded, "cost", res.Cost, "length", len(res.Path))

	return res, nil
}

// state is the per-search bookkeeping for one cell.
type state struct {
	g, h, f float64
	parent  int // linear index of the predecessor, -1 if none
	visited bool
	closed  bool
	hasH    bool
}

// runner holds the mutable state for a single A* execution.
type runner struct {
	g        *grid.Grid
	options  Options
	start    int
	end      int
	goal     grid.Point
	state    []state
	open     *pqueue.BinaryHeap[int]
	expanded int
	scratch  []grid.Point // reused neighbour buffer
}

// newRunner prepares the state table and seeds the open set with start.
func newRunner(g *grid.Grid, start, end grid.Point, cfg Options) *runner {
	r := &runner{
		g:       g,
		options: cfg,
		start:   g.Index(start),
		end:     g.Index(end),
		goal:    end,
		state:   make([]state, g.Len()),
		scratch: make([]grid.Point, 0, 4),
	}
	r.open = pqueue.New(func(i int) float64 { return r.state[i].f }, 64)

	s := &r.state[r.start]
	s.g = 0
	s.h = cfg.Heuristic(start, end)
	s.hasH = true
	s.f = s.h
	s.parent = -1
	s.visited = true
	r.open.Push(r.start)

	return r
}

// process is the main loop: pop the lowest f, stop at end, otherwise close
// the node and relax its neighbours.
func (r *runner) process() Result {
	for r.open.Len() > 0 {
		cur, _ := r.open.PopMin()
		if cur == r.end {
			return Result{
				Path:     r.reconstruct(cur),
				Cost:     r.state[cur].g,
				Expanded: r.expanded,
			}
		}
		r.state[cur].closed = true
		r.expanded++
		r.relax(cur)
	}

	return Result{Expanded: r.expanded}
}

// relax scores every open-able neighbour of cur and pushes or re-orders it.
func (r *runner) relax(cur int) {
	curPoint := r.g.Point(cur)
	curG := r.state[cur].g

	r.scratch = r.g.Neighbors(curPoint, r.scratch[:0])
	for _, p := range r.scratch {
		i := r.g.Index(p)
		s := &r.state[i]
		if s.closed {
			continue
		}

		tentative := curG + r.g.Node(p.X, p.Y).Cost
		if tentative > r.options.MaxCost {
			continue
		}
		if s.visited && tentative >= s.g {
			continue
		}

		s.parent = cur
		if !s.hasH {
			s.h = r.options.Heuristic(p, r.goal)
			s.hasH = true
		}
		s.g = tentative
		s.f = s.g + s.h

		if !s.visited {
			s.visited = true
			r.open.Push(i)
		} else {
			r.open.Rescore(i)
		}
	}
}

// reconstruct follows parent links from end back to start and returns the
// path in travel order, start first.
func (r *runner) reconstruct(end int) []*grid.Node {
	var rev []int
	for i := end; i != r.start; i = r.state[i].parent {
		rev = append(rev, i)
	}

	path := make([]*grid.Node, 0, len(rev)+1)
	path = append(path, r.node(r.start))
	for k := len(rev) - 1; k >= 0; k-- {
		path = append(path, r.node(rev[k]))
	}

	return path
}

func (r *runner) node(i int) *grid.Node {
	p := r.g.Point(i)
	return r.g.Node(p.X, p.Y)
}
