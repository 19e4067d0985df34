// SPDX-License-Identifier: MIT

// Package grid - ScoreGrid storage (row-major) & accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major score buffer with the index formula row*cols + col.
//   - Keep the public surface safe: At/Set return errors instead of panicking.
//   - Offer unchecked Score/SetScore for the fill loop, where indices are known valid.
//   - Store per-cell back-pointer sets as one Links byte, allocated only on request.
//
// AI-Hints:
//   - The fill engine should use Score/SetScore/SetLinks directly; external code should use At/Set.
//   - Pointers() allocates; traceback loops should prefer AppendPointers with a reused buffer.
//
// Complexity quicksheet:
//   - NewScoreGrid: O(r*c) zero-init; At/Set/Score/Links: O(1); Clone/Fill/Do: O(r*c).

package grid

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxPointers = "Pointers" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// gridErrorf wraps a sentinel with a uniform ScoreGrid context and coordinates.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("ScoreGrid.%s(%d,%d): %w", method, row, col, err)
}

// ScoreGrid is one Gotoh matrix: a row-major score buffer plus an optional
// back-pointer bitmask per cell.
//   - rows, cols hold dimensions (both > 0).
//   - scores is a flat buffer of length rows*cols (offset = row*cols + col).
//   - links is nil when the grid was built without pointers, else len == rows*cols.
type ScoreGrid struct {
	role       Role
	rows, cols int
	scores     []float64
	links      []Links
}

var _ fmt.Stringer = (*ScoreGrid)(nil)

// NewScoreGrid creates a rows×cols zero-filled grid for the given role.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate role and rows>0 && cols>0.
//   - Stage 2: allocate the score buffer and, when withPointers is set, the links buffer.
//
// Inputs:
//   - role: matrix role the grid stores (M, Ix or Iy).
//   - rows, cols: positive dimensions (len(A), len(B)).
//   - withPointers: allocate back-pointer storage.
//
// Errors:
//   - ErrUnknownRole, ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) float64 (+ O(r*c) bytes with pointers).
func NewScoreGrid(role Role, rows, cols int, withPointers bool) (*ScoreGrid, error) {
	if !role.Valid() {
		return nil, ErrUnknownRole
	}
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	g := &ScoreGrid{
		role:   role,
		rows:   rows,
		cols:   cols,
		scores: make([]float64, rows*cols),
	}
	if withPointers {
		g.links = make([]Links, rows*cols)
	}

	return g, nil
}

// Role returns the matrix role stored in the grid.
func (g *ScoreGrid) Role() Role { return g.role }

// Rows returns the row count (len(A)).
// Complexity: O(1).
func (g *ScoreGrid) Rows() int { return g.rows }

// Cols returns the column count (len(B)).
// Complexity: O(1).
func (g *ScoreGrid) Cols() int { return g.cols }

// Shape packs Rows() and Cols() into a single call.
func (g *ScoreGrid) Shape() (rows, cols int) { return g.rows, g.cols }

// HasPointers reports whether the grid carries back-pointer storage.
func (g *ScoreGrid) HasPointers() bool { return g.links != nil }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (g *ScoreGrid) indexOf(row, col int) (int, error) {
	if row < 0 || row >= g.rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= g.cols {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*g.cols + col, nil
}

// At returns the score at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns the wrapped sentinel.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Prefer At in external code; the fill loop indexes through Score.
func (g *ScoreGrid) At(row, col int) (float64, error) {
	off, err := g.indexOf(row, col)
	if err != nil {
		return 0, gridErrorf(ctxAt, row, col, err)
	}

	return g.scores[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Unlike the dense matrices this grid accepts ±Inf.
// Complexity: O(1).
func (g *ScoreGrid) Set(row, col int, v float64) error {
	off, err := g.indexOf(row, col)
	if err != nil {
		return gridErrorf(ctxSet, row, col, err)
	}
	g.scores[off] = v

	return nil
}

// Score is the unchecked read used in hot loops. It panics like a slice
// index when (row, col) is outside the grid.
func (g *ScoreGrid) Score(row, col int) float64 { return g.scores[row*g.cols+col] }

// SetScore is the unchecked write used in hot loops.
func (g *ScoreGrid) SetScore(row, col int, v float64) { g.scores[row*g.cols+col] = v }

// Links returns the back-pointer bitmask of (row, col); zero when the grid has
// no pointer storage.
func (g *ScoreGrid) Links(row, col int) Links {
	if g.links == nil {
		return 0
	}

	return g.links[row*g.cols+col]
}

// SetLinks stores the back-pointer bitmask of (row, col). It is a no-op on a
// grid built without pointer storage.
func (g *ScoreGrid) SetLinks(row, col int, l Links) {
	if g.links == nil {
		return
	}
	g.links[row*g.cols+col] = l
}

// Pointers decodes the back-pointer set of (row, col) into coordinate triples.
// MAIN DESCRIPTION:
//   - Checked, allocating decode of one cell's pointer set.
//
// Implementation:
//   - Stage 1: bounds check and storage check.
//   - Stage 2: resolve the predecessor coordinate of this grid's role.
//   - Stage 3: emit one Pointer per set bit in M, Ix, Iy order.
//
// Errors:
//   - ErrOutOfRange, ErrNoPointers.
//
// Complexity:
//   - Time O(1), Space O(k) with k ≤ 3.
func (g *ScoreGrid) Pointers(row, col int) ([]Pointer, error) {
	if _, err := g.indexOf(row, col); err != nil {
		return nil, gridErrorf(ctxPointers, row, col, err)
	}
	if g.links == nil {
		return nil, gridErrorf(ctxPointers, row, col, ErrNoPointers)
	}

	return g.AppendPointers(nil, row, col), nil
}

// AppendPointers appends the decoded pointer set of (row, col) to dst and
// returns the extended slice. Unchecked; intended for traceback loops that
// reuse one buffer.
func (g *ScoreGrid) AppendPointers(dst []Pointer, row, col int) []Pointer {
	l := g.Links(row, col)
	if l.Empty() {
		return dst
	}
	pr, pc := Predecessor(g.role, row, col)
	for _, r := range Roles {
		if l.Has(r) {
			dst = append(dst, Pointer{Role: r, Row: pr, Col: pc})
		}
	}

	return dst
}

// Fill sets every score to v and clears all back-pointers.
// Complexity: O(r*c).
func (g *ScoreGrid) Fill(v float64) {
	for i := range g.scores {
		g.scores[i] = v
	}
	for i := range g.links {
		g.links[i] = 0
	}
}

// Do visits each cell in row-major order and calls f(row, col, score);
// it stops early when f returns false.
//
// Determinism:
//   - Fixed row→col order.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (g *ScoreGrid) Do(f func(row, col int, v float64) bool) {
	var i, j, base int
	for i = 0; i < g.rows; i++ {
		base = i * g.cols
		for j = 0; j < g.cols; j++ {
			if !f(i, j, g.scores[base+j]) {
				return
			}
		}
	}
}

// Clone returns a deep copy (new buffers, same role and shape).
// Complexity: O(r*c).
func (g *ScoreGrid) Clone() *ScoreGrid {
	cp := &ScoreGrid{
		role:   g.role,
		rows:   g.rows,
		cols:   g.cols,
		scores: make([]float64, len(g.scores)),
	}
	copy(cp.scores, g.scores)
	if g.links != nil {
		cp.links = make([]Links, len(g.links))
		copy(cp.links, g.links)
	}

	return cp
}

// String renders the scores row by row for diagnostics; not for hot paths.
func (g *ScoreGrid) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < g.rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * g.cols
		for j = 0; j < g.cols; j++ {
			b.WriteString(fmt.Sprintf("%g", g.scores[base+j]))
			if j+1 < g.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
