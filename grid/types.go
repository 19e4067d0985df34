// SPDX-License-Identifier: MIT

package grid

import "fmt"

// Role identifies which of the three Gotoh matrices a cell belongs to.
type Role uint8

const (
	// M holds scores of alignments ending in a substitution (match/mismatch) column.
	M Role = iota

	// Ix holds scores of alignments ending with A[row] against a gap.
	Ix

	// Iy holds scores of alignments ending with B[col] against a gap.
	Iy
)

// Roles lists every role in enumeration order (M, Ix, Iy).
var Roles = [...]Role{M, Ix, Iy}

// String returns "M", "Ix" or "Iy".
func (r Role) String() string {
	switch r {
	case M:
		return "M"
	case Ix:
		return "Ix"
	case Iy:
		return "Iy"
	default:
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
}

// Valid reports whether r is one of M, Ix, Iy.
func (r Role) Valid() bool { return r <= Iy }

// Pointer is a back-pointer: a (role, row, col) coordinate triple.
// It is a plain value, never a live reference into a grid.
type Pointer struct {
	Role Role
	Row  int
	Col  int
}

// IsOrigin reports whether p sits at (0,0).
func (p Pointer) IsOrigin() bool { return p.Row == 0 && p.Col == 0 }

// String renders p as "M(3,4)".
func (p Pointer) String() string {
	return fmt.Sprintf("%s(%d,%d)", p.Role, p.Row, p.Col)
}

// Links is the back-pointer set of one cell stored as a role bitmask.
// Bit (1 << role) is set when that role at the predecessor coordinate
// contributes to the cell's score.
type Links uint8

// LinkOf returns the single-bit Links value for role r.
func LinkOf(r Role) Links { return 1 << r }

// Has reports whether role r is in the set.
func (l Links) Has(r Role) bool { return l&LinkOf(r) != 0 }

// Add returns l with role r included.
func (l Links) Add(r Role) Links { return l | LinkOf(r) }

// Empty reports whether the set holds no pointers.
func (l Links) Empty() bool { return l == 0 }

// Len returns the number of roles in the set.
func (l Links) Len() int {
	n := 0
	for _, r := range Roles {
		if l.Has(r) {
			n++
		}
	}

	return n
}

// Predecessor returns the coordinate every back-pointer of a cell of role r
// at (row, col) refers to:
//
//	M  → (row-1, col-1)
//	Ix → (row-1, col)
//	Iy → (row, col-1)
func Predecessor(r Role, row, col int) (int, int) {
	switch r {
	case M:
		return row - 1, col - 1
	case Ix:
		return row - 1, col
	default:
		return row, col - 1
	}
}
