package align

import "errors"

// Sentinel errors for align operations. Match with errors.Is.
var (
	// ErrEmptySequence indicates one or both input sequences are empty.
	ErrEmptySequence = errors.New("align: input sequences must be non-empty")

	// ErrNilScores indicates Params.Scores is nil.
	ErrNilScores = errors.New("align: match-score table is nil")

	// ErrBadPenalty indicates a NaN or ±Inf gap penalty.
	ErrBadPenalty = errors.New("align: gap penalties must be finite")

	// ErrBadMode indicates a Mode other than Global or Local.
	ErrBadMode = errors.New("align: unknown alignment mode")

	// ErrGapMarkerConflict indicates that an input sequence contains the gap marker.
	ErrGapMarkerConflict = errors.New("align: sequence contains the gap marker")

	// ErrGridMismatch indicates a MatrixSet whose shape or pointer storage does
	// not fit the Params handed to Traceback.
	ErrGridMismatch = errors.New("align: matrix set does not match parameters")

	// ErrRaggedAlignment indicates aligned strings of different lengths.
	ErrRaggedAlignment = errors.New("align: aligned strings differ in length")

	// ErrMalformedAlignment indicates an alignment Rescore cannot interpret
	// (a gap-only column, or residues that do not occur in the inputs).
	ErrMalformedAlignment = errors.New("align: malformed alignment")
)
