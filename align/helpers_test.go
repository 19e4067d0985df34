package align_test

import (
	"strings"

	"github.com/katalvlaran/gotoh/align"
)

// params builds a run over a and b scored by identity (1 on match, 0 otherwise)
// with uniform gap penalties.
func params(a, b string, mode align.Mode, open, extend float64) align.Params {
	return align.Params{
		A:      a,
		B:      b,
		Mode:   mode,
		Gaps:   align.Uniform(open, extend),
		Scores: align.IdentityTable(alphabet(a, b), 1, 0),
	}
}

// plusMinus is params with identity scores of 1 on match and -1 otherwise.
func plusMinus(a, b string, mode align.Mode, open, extend float64) align.Params {
	p := params(a, b, mode, open, extend)
	p.Scores = align.IdentityTable(alphabet(a, b), 1, -1)

	return p
}

// alphabet returns the distinct symbols of both sequences.
func alphabet(a, b string) string {
	var sb strings.Builder
	seen := make(map[rune]bool)
	for _, r := range a + b {
		if !seen[r] {
			seen[r] = true
			sb.WriteRune(r)
		}
	}

	return sb.String()
}

// pairs is shorthand for a list of alignments written as A, B, A, B, ...
func pairs(s ...string) []align.Alignment {
	out := make([]align.Alignment, 0, len(s)/2)
	for i := 0; i+1 < len(s); i += 2 {
		out = append(out, align.Alignment{A: s[i], B: s[i+1]})
	}

	return out
}

// degap removes the default gap marker.
func degap(s string) string {
	return strings.ReplaceAll(s, string(align.DefaultGapMarker), "")
}
