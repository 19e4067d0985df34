// SPDX-License-Identifier: MIT

package grid

import "errors"

// Every message is prefixed with "grid: ..." so it is easy to grep.
// Public accessors wrap these sentinels with the method name and coordinates;
// callers match them with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested grid dimensions are non-positive.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrUnknownRole indicates a Role value other than M, Ix or Iy.
	ErrUnknownRole = errors.New("grid: unknown matrix role")

	// ErrNoPointers indicates that back-pointer storage was requested on a grid
	// constructed without it.
	ErrNoPointers = errors.New("grid: grid has no back-pointer storage")
)
