// Package gotoh is an affine-gap pairwise sequence aligner that reports every
// co-optimal alignment, not just one.
//
// 🚀 What is gotoh?
//
//	Gotoh's three-matrix dynamic program with:
//		• Global (end to end, free end gaps) and Local (best segment) modes
//		• Asymmetric scoring: a sparse ordered-pair table, unlisted pairs score 0
//		• Separate open/extend penalties per gap direction
//		• Fuzzy score ties, so every optimal path survives float drift
//		• Bounded-memory enumeration of all co-optimal tracebacks
//
// ✨ Why gotoh?
//
//   - Complete – ties are never broken arbitrarily; you get all optima
//   - Predictable – deterministic output, explicit options, no global state
//   - Checkable – Rescore replays any rendered alignment under the same model
//
// Packages:
//
//	grid/: ScoreGrid and MatrixSet: flat row-major grids with back-pointer bitmasks
//	align/: Params, options, Fill, Traceback, Align and Rescore
//	alnio/: legacy input-file parser; text, JSON and YAML result writers
//	cmd/gotoh: the command line tool (cobra + viper, slog, prometheus, OpenTelemetry)
//
// Quick start:
//
//	p := align.Params{
//		A:      "HEAGAWGHEE",
//		B:      "PAWHEAE",
//		Mode:   align.Global,
//		Gaps:   align.Uniform(2, 1),
//		Scores: align.IdentityTable("HEAGWP", 1, 0),
//	}
//	res, err := align.Align(p)
//	// res.Score == 3, three co-optimal alignments
//
// Memory: the fill keeps three n×m float64 grids plus one pointer byte per
// cell, so inputs of tens of thousands of symbols need gigabytes.
package gotoh
