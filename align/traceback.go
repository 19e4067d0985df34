package align

import (
	"math"

	"github.com/katalvlaran/gotoh/grid"
)

// Traceback: start search and co-optimal path enumeration.
//
// Description:
//
//	Traceback reads a MatrixSet produced by Fill, finds every optimal start
//	cell, walks the back-pointer DAG to enumerate every optimal path, and
//	renders each path into a pair of aligned strings.
//
// Start positions:
//   - Global: the bottom-right cell of M, Ix and Iy; the optimum is their max
//     and every role tying it is a start.
//   - Local: every M cell tying the grid-wide maximum of M. A fuzzy-zero
//     maximum yields Score 0 and no alignments.
//
// Enumeration:
//
//	An explicit stack drives a depth-first walk; each visited pointer becomes a
//	node {pointer, parent} in an arena, so shared suffixes of the DAG walk are
//	stored once. A path ends at the origin or at a cell with no pointers (a
//	leaf). Leaves are rendered in batches of Options.BatchSize, after which the
//	arena is compacted down to the ancestors of still-pending nodes.
//
// Complexity:
//
//	Time   = O(P·(n+m)) for P emitted paths
//	Memory = O(B·(n+m) + pending) for batch size B
//
// Errors:
//   - Validate errors, ErrGapMarkerConflict, ErrGridMismatch, grid.ErrNoPointers.
func Traceback(set *grid.MatrixSet, p Params, opts ...Option) (Result, error) {
	if err := Validate(p); err != nil {
		return Result{}, err
	}
	o := gatherOptions(opts)
	if err := validateMarker(p, o.gapMarker); err != nil {
		return Result{}, err
	}

	a, b := []rune(p.A), []rune(p.B)
	if err := validateSet(set, len(a), len(b)); err != nil {
		return Result{}, err
	}

	t := newTracer(set, a, b, p.Mode, o)
	score, starts := t.startPositions()
	t.enumerate(starts)

	return Result{
		Score:      score,
		Alignments: t.out,
		Truncated:  t.truncated,
	}, nil
}

// node is one arena entry: a pointer on some path and the arena index of the
// node it was reached from (-1 for a start).
type node struct {
	ptr    grid.Pointer
	parent int
}

// tracer holds the state of one traceback pass.
type tracer struct {
	set  *grid.MatrixSet
	a, b []rune
	mode Mode
	opts Options

	nodes  []node // arena; a parent index is always smaller than its child's
	stack  []int  // pending arena indices
	leaves []int  // arena indices awaiting rendering
	remap  []int  // scratch for compaction
	ptrBuf []grid.Pointer

	r renderer

	out       []Alignment
	truncated bool
}

func newTracer(set *grid.MatrixSet, a, b []rune, mode Mode, o Options) *tracer {
	return &tracer{
		set:  set,
		a:    a,
		b:    b,
		mode: mode,
		opts: o,
		r:    newRenderer(a, b, mode, o),
	}
}

// startPositions returns the optimum and the pointers achieving it.
func (t *tracer) startPositions() (float64, []grid.Pointer) {
	if t.mode == Global {
		return t.globalStarts()
	}

	return t.localStarts()
}

// globalStarts compares the three roles at the bottom-right cell.
func (t *tracer) globalStarts() (float64, []grid.Pointer) {
	rows, cols := t.set.Shape()
	row, col := rows-1, cols-1

	best := math.Inf(-1)
	for _, role := range grid.Roles {
		if v := t.set.Grid(role).Score(row, col); v > best {
			best = v
		}
	}

	starts := make([]grid.Pointer, 0, len(grid.Roles))
	for _, role := range grid.Roles {
		if fuzzyEqual(t.set.Grid(role).Score(row, col), best, t.opts.eps) {
			starts = append(starts, grid.Pointer{Role: role, Row: row, Col: col})
		}
	}

	return best, starts
}

// localStarts scans M for its maximum, then collects every cell tying it in
// row-major order. Gap matrices never hold the local optimum.
func (t *tracer) localStarts() (float64, []grid.Pointer) {
	best := math.Inf(-1)
	t.set.M.Do(func(_, _ int, v float64) bool {
		if v > best {
			best = v
		}

		return true
	})
	if fuzzyZero(best, t.opts.eps) {
		return 0, nil
	}

	var starts []grid.Pointer
	t.set.M.Do(func(row, col int, v float64) bool {
		if fuzzyEqual(v, best, t.opts.eps) {
			starts = append(starts, grid.Pointer{Role: grid.M, Row: row, Col: col})
		}

		return true
	})

	return best, starts
}

// enumerate walks the pointer DAG from every start without recursion.
func (t *tracer) enumerate(starts []grid.Pointer) {
	// Push in reverse so starts are expanded in the order given.
	for i := len(starts) - 1; i >= 0; i-- {
		t.push(starts[i], -1)
	}

	for len(t.stack) > 0 {
		if t.capped() {
			t.truncated = true
			break
		}

		idx := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		ptr := t.nodes[idx].ptr

		if t.set.IsTerminus(ptr) {
			t.leaves = append(t.leaves, idx)
			if len(t.leaves) >= t.opts.batchSize {
				t.flush()
			}
			continue
		}

		t.ptrBuf = t.set.AppendPointers(t.ptrBuf[:0], ptr)
		for k := len(t.ptrBuf) - 1; k >= 0; k-- {
			t.push(t.ptrBuf[k], idx)
		}
	}
	t.flush()
}

// capped reports whether WithMaxPaths has been reached. Every pending node
// leads to at least one more leaf, so reaching the cap with a non-empty stack
// means paths were left out.
func (t *tracer) capped() bool {
	return t.opts.maxPaths > 0 && len(t.out)+len(t.leaves) >= t.opts.maxPaths
}

// push appends a node to the arena and schedules it.
func (t *tracer) push(ptr grid.Pointer, parent int) {
	t.nodes = append(t.nodes, node{ptr: ptr, parent: parent})
	t.stack = append(t.stack, len(t.nodes)-1)
}

// flush renders pending leaves and compacts the arena.
func (t *tracer) flush() {
	for _, leaf := range t.leaves {
		t.out = append(t.out, t.r.render(t.nodes, leaf))
	}
	t.leaves = t.leaves[:0]
	t.compact()
}

// compact drops every arena node that is not an ancestor of a pending node
// (pending nodes included) and rewrites parent and stack indices.
// Parents precede children in the arena, so one forward pass can remap both.
func (t *tracer) compact() {
	if len(t.stack) == 0 {
		t.nodes = t.nodes[:0]
		return
	}

	const (
		dead = -1
		live = -2
	)
	if cap(t.remap) < len(t.nodes) {
		t.remap = make([]int, len(t.nodes))
	}
	t.remap = t.remap[:len(t.nodes)]
	for i := range t.remap {
		t.remap[i] = dead
	}
	for _, idx := range t.stack {
		for j := idx; j >= 0 && t.remap[j] == dead; j = t.nodes[j].parent {
			t.remap[j] = live
		}
	}

	next := 0
	for i, nd := range t.nodes {
		if t.remap[i] != live {
			continue
		}
		if nd.parent >= 0 {
			nd.parent = t.remap[nd.parent]
		}
		t.nodes[next] = nd
		t.remap[i] = next
		next++
	}
	t.nodes = t.nodes[:next]
	for k, idx := range t.stack {
		t.stack[k] = t.remap[idx]
	}
}
