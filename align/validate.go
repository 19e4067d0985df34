// Package align - validation shared by Fill, Traceback, Align and Rescore.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
package align

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gotoh/grid"
)

// Validate checks that p can be aligned.
//
// Contract:
//   - A and B are non-empty (zero-length inputs are rejected, not aligned).
//   - Mode is Global or Local.
//   - Scores is non-nil.
//   - All four gap penalties are finite (negative values are allowed).
//
// Complexity: O(1).
func Validate(p Params) error {
	// Stage 1: sequences.
	if p.A == "" || p.B == "" {
		return ErrEmptySequence
	}

	// Stage 2: mode and lookup.
	if p.Mode != Global && p.Mode != Local {
		return fmt.Errorf("mode %d: %w", int(p.Mode), ErrBadMode)
	}
	if p.Scores == nil {
		return ErrNilScores
	}

	// Stage 3: penalties.
	for _, v := range [...]float64{p.Gaps.OpenX, p.Gaps.ExtendX, p.Gaps.OpenY, p.Gaps.ExtendY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadPenalty
		}
	}

	return nil
}

// validateMarker rejects sequences that contain the gap marker; rendered
// output would otherwise be ambiguous.
func validateMarker(p Params, marker rune) error {
	if strings.ContainsRune(p.A, marker) || strings.ContainsRune(p.B, marker) {
		return fmt.Errorf("marker %q: %w", marker, ErrGapMarkerConflict)
	}

	return nil
}

// validateSet checks that set was filled for sequences of lengths n×m with
// back-pointers retained.
func validateSet(set *grid.MatrixSet, n, m int) error {
	if set == nil || set.M == nil || set.Ix == nil || set.Iy == nil {
		return fmt.Errorf("nil matrix set: %w", ErrGridMismatch)
	}
	for _, r := range grid.Roles {
		g := set.Grid(r)
		rows, cols := g.Shape()
		if rows != n || cols != m {
			return fmt.Errorf("%s grid is %dx%d, want %dx%d: %w", r, rows, cols, n, m, ErrGridMismatch)
		}
		if !g.HasPointers() {
			return fmt.Errorf("%s grid: %w", r, grid.ErrNoPointers)
		}
	}

	return nil
}
