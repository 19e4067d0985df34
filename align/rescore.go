package align

import (
	"fmt"
	"strings"
)

// column kinds of a rendered alignment.
const (
	colPair = iota // residue over residue (M)
	colGapB        // residue over gap (Ix)
	colGapA        // gap over residue (Iy)
)

// Rescore recomputes the score of a rendered alignment under the model of p.
//
// Rules:
//   - a residue-over-residue column adds Scores.Score(a, b);
//   - a run of k residue-over-gap columns costs OpenY + (k-1)·ExtendY;
//   - a run of k gap-over-residue columns costs OpenX + (k-1)·ExtendX;
//   - Global: columns after the last pair column are free, and so is the first
//     column of the traced path. A gap run that starts the path therefore
//     costs (k-1)·Extend, matching the zero-scored gap cells of Fill.
//   - Global with WithOverhangs(true): the skipped-residue runs in front of
//     the path are free too. A lone run before the first pair is all overhang;
//     with several, the last one belongs to the path.
//
// For every alignment returned by Align with the same options the result
// equals Result.Score within the tie tolerance.
//
// Errors:
//   - Validate errors, ErrRaggedAlignment, ErrMalformedAlignment.
//
// Complexity: O(L) for an alignment of L columns.
func Rescore(p Params, aln Alignment, opts ...Option) (float64, error) {
	if err := Validate(p); err != nil {
		return 0, err
	}
	o := gatherOptions(opts)

	ra, rb := []rune(aln.A), []rune(aln.B)
	if len(ra) != len(rb) {
		return 0, fmt.Errorf("%d vs %d columns: %w", len(ra), len(rb), ErrRaggedAlignment)
	}
	if !isSubstring(p.A, ra, o.gapMarker) || !isSubstring(p.B, rb, o.gapMarker) {
		return 0, fmt.Errorf("residues do not occur in the inputs: %w", ErrMalformedAlignment)
	}

	kinds := make([]int, len(ra))
	firstPair, lastPair := -1, -1
	for i := range ra {
		gapA, gapB := ra[i] == o.gapMarker, rb[i] == o.gapMarker
		switch {
		case gapA && gapB:
			return 0, fmt.Errorf("gap-only column %d: %w", i, ErrMalformedAlignment)
		case gapB:
			kinds[i] = colGapB
		case gapA:
			kinds[i] = colGapA
		default:
			kinds[i] = colPair
			if firstPair < 0 {
				firstPair = i
			}
			lastPair = i
		}
	}

	if p.Mode == Global && firstPair < 0 {
		return 0, nil // only free end gaps
	}

	start, end := 0, len(kinds)-1
	if p.Mode == Global {
		start, end = pathStart(kinds, firstPair, o.overhangs), lastPair
	}

	var score float64
	for i := start; i <= end; i++ {
		if p.Mode == Global && i == start && kinds[i] != colPair {
			continue // zero-scored gap start
		}
		switch kinds[i] {
		case colPair:
			score += p.Scores.Score(ra[i], rb[i])
		case colGapB:
			if i > start && kinds[i-1] == colGapB {
				score -= p.Gaps.ExtendY
			} else {
				score -= p.Gaps.OpenY
			}
		case colGapA:
			if i > start && kinds[i-1] == colGapA {
				score -= p.Gaps.ExtendX
			} else {
				score -= p.Gaps.OpenX
			}
		}
	}

	return score, nil
}

// pathStart returns the first column of a Global alignment that belongs to
// the traced path.
func pathStart(kinds []int, firstPair int, overhangs bool) int {
	if !overhangs || firstPair == 0 {
		return 0
	}
	run := firstPair - 1
	for run > 0 && kinds[run-1] == kinds[firstPair-1] {
		run--
	}
	if run == 0 {
		return firstPair
	}

	return run
}

// isSubstring reports whether aligned, with gap markers removed, is a
// contiguous substring of seq.
func isSubstring(seq string, aligned []rune, gap rune) bool {
	var sb strings.Builder
	for _, r := range aligned {
		if r != gap {
			sb.WriteRune(r)
		}
	}

	return strings.Contains(seq, sb.String())
}
