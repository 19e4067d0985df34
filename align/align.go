package align

// Align runs the whole pipeline on p: validate, fill, traceback.
// The grids are dropped before Align returns; the Result owns its strings.
//
// Example:
//
//	res, err := Align(p, WithEpsilon(1e-9), WithMaxPaths(100))
//	if err != nil {
//	  // handle ErrEmptySequence, ErrNilScores, ...
//	}
//	fmt.Printf("%.1f\n", res.Score)
//
// Complexity: O(n·m) time and memory for the fill plus the traceback cost.
func Align(p Params, opts ...Option) (Result, error) {
	o := gatherOptions(opts)
	if err := Validate(p); err != nil {
		return Result{}, err
	}
	if err := validateMarker(p, o.gapMarker); err != nil {
		return Result{}, err
	}

	set, err := Fill(p, opts...)
	if err != nil {
		return Result{}, err
	}

	return Traceback(set, p, opts...)
}
