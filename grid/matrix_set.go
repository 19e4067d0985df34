// SPDX-License-Identifier: MIT

package grid

// MatrixSet owns the three Gotoh grids of one alignment run.
// All three share the same n×m shape. A MatrixSet is not safe for concurrent
// mutation; each run allocates its own.
type MatrixSet struct {
	M  *ScoreGrid
	Ix *ScoreGrid
	Iy *ScoreGrid
}

// NewMatrixSet allocates the M, Ix and Iy grids with rows×cols cells each.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space 3·O(r*c).
func NewMatrixSet(rows, cols int, withPointers bool) (*MatrixSet, error) {
	var (
		set MatrixSet
		err error
	)
	if set.M, err = NewScoreGrid(M, rows, cols, withPointers); err != nil {
		return nil, err
	}
	if set.Ix, err = NewScoreGrid(Ix, rows, cols, withPointers); err != nil {
		return nil, err
	}
	if set.Iy, err = NewScoreGrid(Iy, rows, cols, withPointers); err != nil {
		return nil, err
	}

	return &set, nil
}

// Shape returns the common dimensions of the three grids.
func (s *MatrixSet) Shape() (rows, cols int) { return s.M.Shape() }

// Grid returns the grid holding role r, or nil for an unknown role.
func (s *MatrixSet) Grid(r Role) *ScoreGrid {
	switch r {
	case M:
		return s.M
	case Ix:
		return s.Ix
	case Iy:
		return s.Iy
	default:
		return nil
	}
}

// Score returns the score p refers to. Unchecked.
func (s *MatrixSet) Score(p Pointer) float64 { return s.Grid(p.Role).Score(p.Row, p.Col) }

// Links returns the back-pointer bitmask of the cell p refers to. Unchecked.
func (s *MatrixSet) Links(p Pointer) Links { return s.Grid(p.Role).Links(p.Row, p.Col) }

// AppendPointers appends the predecessors of p to dst. Unchecked.
func (s *MatrixSet) AppendPointers(dst []Pointer, p Pointer) []Pointer {
	return s.Grid(p.Role).AppendPointers(dst, p.Row, p.Col)
}

// IsTerminus reports whether a traceback path ends at p: either p is the
// origin, or its cell has no back-pointers.
func (s *MatrixSet) IsTerminus(p Pointer) bool {
	return p.IsOrigin() || s.Links(p).Empty()
}
