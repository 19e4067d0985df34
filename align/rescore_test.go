package align_test

import (
	"testing"

	"github.com/katalvlaran/gotoh/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRescore_Manual checks the column model on hand-built alignments.
func TestRescore_Manual(t *testing.T) {
	p := align.Params{
		A:      "ACCCT",
		B:      "AGT",
		Mode:   align.Local,
		Gaps:   align.GapPenalties{OpenX: 3, ExtendX: 2, OpenY: 1.5, ExtendY: 0.5},
		Scores: align.IdentityTable("ACGT", 2, -1),
	}

	cases := []struct {
		name string
		aln  align.Alignment
		want float64
	}{
		{"pairs only", align.Alignment{A: "CCT", B: "AGT"}, -1 - 1 + 2},
		{"gap in B run", align.Alignment{A: "ACCCT", B: "A__GT"}, 2 - 1.5 - 0.5 - 1 + 2},
		{"gap in A", align.Alignment{A: "C_T", B: "AGT"}, -1 - 3 + 2},
	}
	for _, tc := range cases {
		got, err := align.Rescore(p, tc.aln)
		require.NoError(t, err, tc.name)
		assert.InDelta(t, tc.want, got, 1e-12, tc.name)
	}
}

// TestRescore_GlobalEndGapsFree verifies that a single leading gap column and
// trailing gap runs cost nothing in Global mode and are charged in Local mode.
func TestRescore_GlobalEndGapsFree(t *testing.T) {
	p := params("AACGG", "ACG", align.Global, 2, 1)
	aln := align.Alignment{A: "AACGG", B: "_ACG_"}

	got, err := align.Rescore(p, aln)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)

	p.Mode = align.Local
	got, err = align.Rescore(p, aln)
	require.NoError(t, err)
	assert.Equal(t, 3.0-2-2, got)
}

// TestRescore_GlobalLeadingRun checks that a leading run pays the extend
// penalty after its first column unless it is an overhang.
func TestRescore_GlobalLeadingRun(t *testing.T) {
	p := params("AAACG", "ACG", align.Global, 2, 1)
	aln := align.Alignment{A: "AAACG", B: "__ACG"}

	got, err := align.Rescore(p, aln)
	require.NoError(t, err)
	assert.Equal(t, 3.0-1, got)

	got, err = align.Rescore(p, aln, align.WithOverhangs(true))
	require.NoError(t, err)
	assert.Equal(t, 3.0, got) // a lone leading run is all overhang

	// Overhang "C" then a path run of two: only the second gap column pays.
	got, err = align.Rescore(params("AAB", "CB", align.Global, 2, 1),
		align.Alignment{A: "_AAB", B: "C__B"}, align.WithOverhangs(true))
	require.NoError(t, err)
	assert.Equal(t, 1.0-1, got)
}

// TestRescore_GapStartMatchesAlign pins a Global optimum that opens on a gap:
// the gapped placements beat the plain diagonal.
func TestRescore_GapStartMatchesAlign(t *testing.T) {
	p := plusMinus("AB", "CB", align.Global, 2, 1)

	res, err := align.Align(p)
	require.NoError(t, err)
	require.Equal(t, 1.0, res.Score)

	cases := []struct {
		aln  align.Alignment
		want float64
	}{
		{align.Alignment{A: "AB", B: "_B"}, 1},
		{align.Alignment{A: "_B", B: "CB"}, 1},
		{align.Alignment{A: "AB", B: "CB"}, 0},
	}
	for _, tc := range cases {
		got, err := align.Rescore(p, tc.aln)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%v", tc.aln)
	}
}

// TestRescore_Errors covers malformed alignments.
func TestRescore_Errors(t *testing.T) {
	p := params("ACGT", "ACGT", align.Global, 1, 1)

	_, err := align.Rescore(p, align.Alignment{A: "ACG", B: "AC"})
	require.ErrorIs(t, err, align.ErrRaggedAlignment)

	_, err = align.Rescore(p, align.Alignment{A: "A_C", B: "A_C"})
	require.ErrorIs(t, err, align.ErrMalformedAlignment) // gap over gap

	_, err = align.Rescore(p, align.Alignment{A: "TT", B: "AC"})
	require.ErrorIs(t, err, align.ErrMalformedAlignment) // not a substring of A

	_, err = align.Rescore(params("", "A", align.Global, 1, 1), align.Alignment{})
	require.ErrorIs(t, err, align.ErrEmptySequence)
}

// TestRescore_MatchesAlign replays every alignment of a few runs.
func TestRescore_MatchesAlign(t *testing.T) {
	cases := []align.Params{
		params("HEAGAWGHEE", "PAWHEAE", align.Global, 2, 1),
		params("HEAGAWGHEE", "PAWHEAE", align.Local, 2, 1),
		params("ACCT", "ACT", align.Global, 1, 0.5),
		params("GATTACA", "GCATGCA", align.Local, 1, 0.5),
		plusMinus("AB", "CB", align.Global, 2, 1),
	}
	for _, p := range cases {
		res, err := align.Align(p)
		require.NoError(t, err)
		for _, aln := range res.Alignments {
			s, err := align.Rescore(p, aln)
			require.NoError(t, err)
			assert.InDelta(t, res.Score, s, 1e-9, "%s/%s %v", p.A, p.B, aln)
		}
	}
}
