// Package align computes optimal pairwise sequence alignments under an affine
// gap-penalty model (Gotoh's algorithm) and reports every co-optimal alignment.
//
// 🚀 What is Gotoh alignment?
//
//	Three coupled DP matrices score the ways an alignment can end at (row, col):
//	  • M: A[row] paired with B[col] (match / mismatch)
//	  • Ix: A[row] against a gap
//	  • Iy: B[col] against a gap
//	Opening a gap costs the open penalty, every further gap position the extend
//	penalty. Global mode spans both sequences; Local mode (Smith–Waterman style)
//	floors every cell at zero and reports the best-scoring local segments.
//
// ✨ Key features:
//   - Global and Local modes over one recurrence
//   - every co-optimal alignment, not just one (ties within an explicit epsilon)
//   - iterative traceback over a parent-indexed node arena: no recursion,
//     shared prefixes stored once, leaves rendered in bounded batches
//   - optional cap on enumerated paths (WithMaxPaths)
//   - Rescore for checking a rendered alignment against the model
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/gotoh/align"
//
//	scores := align.IdentityTable("ACGT", 1, -1)
//	res, err := align.Align(align.Params{
//	  A:      "GATTACA",
//	  B:      "GCATGCA",
//	  Mode:   align.Global,
//	  Gaps:   align.GapPenalties{OpenX: 2, ExtendX: 1, OpenY: 2, ExtendY: 1},
//	  Scores: scores,
//	}, align.WithMaxPaths(1000))
//
// Scoring convention:
//
//	In Global mode the first row and column of M start an alignment without a
//	leading-gap charge. Ix on the first row and Iy on the first column hold 0
//	with no predecessor, so a path may also open with one free gap column;
//	each further column of that run pays the extend penalty. Gaps running
//	along the last column (Ix) or the last row (Iy) are free. Those free
//	terminal gap columns are not rendered unless WithOverhangs(true) is set.
//
// Performance:
//
//   - Fill:      O(N·M) time, O(N·M) memory (three grids)
//   - Traceback: O(P·(N+M)) for P reported alignments
//
// See example_test.go for runnable examples.
package align
