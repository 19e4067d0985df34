// SPDX-License-Identifier: MIT

// Package grid provides the flat dynamic-programming storage used by the
// affine-gap alignment engine.
//
// What & Why:
//
//	Gotoh's algorithm keeps three coupled score matrices per alignment run:
//	  • M: best score of an alignment ending with A[row] paired to B[col]
//	  • Ix: best score of an alignment ending with A[row] against a gap
//	  • Iy: best score of an alignment ending with B[col] against a gap
//	Each matrix lives in its own ScoreGrid (row-major, offset = row*cols + col),
//	and the three grids are owned together by a MatrixSet.
//
// Back-pointers:
//
//	Every predecessor of a cell of a given role sits at one fixed neighbour
//	coordinate, so a cell's back-pointer set is stored as a role bitmask (Links)
//	and decoded into Pointer triples only when the traceback asks for them.
//
// Memory:
//
//	A MatrixSet of n×m cells holds 3·n·m float64 scores plus 3·n·m link bytes.
//	This is O(n·m) and grows quickly for long sequences; there is no banded or
//	linear-memory fallback.
//
// Complexity:
//
//	NewScoreGrid / NewMatrixSet: O(n·m); At/Set/Score/Links: O(1); Clone: O(n·m).
package grid
