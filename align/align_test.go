package align_test

import (
	"testing"

	"github.com/katalvlaran/gotoh/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAlign_Table runs end-to-end scenarios with hand-checked optima.
func TestAlign_Table(t *testing.T) {
	cases := []struct {
		name   string
		p      align.Params
		score  float64
		expect []align.Alignment
	}{
		{
			name:  "global HEAGAWGHEE",
			p:     params("HEAGAWGHEE", "PAWHEAE", align.Global, 2, 1),
			score: 3,
			expect: pairs(
				"GAWGHEE", "PAWHEAE",
				"_AWGHEE", "PAWHEAE", // opens on the zero-scored Iy(3,0)
				"HEAG", "HEAE",
			),
		},
		{
			name:  "local HEAGAWGHEE",
			p:     params("HEAGAWGHEE", "PAWHEAE", align.Local, 2, 1),
			score: 3,
			expect: pairs(
				"HEA", "HEA",
				"HEAG", "HEAE",
				"AWGHEE", "AWHEAE",
			),
		},
		{
			name:   "global identical",
			p:      params("ACGT", "ACGT", align.Global, 3, 1),
			score:  4,
			expect: pairs("ACGT", "ACGT"),
		},
		{
			name:   "local identical",
			p:      params("ACGT", "ACGT", align.Local, 3, 1),
			score:  4,
			expect: pairs("ACGT", "ACGT"),
		},
		{
			name:   "global free end gap",
			p:      params("AA", "A", align.Global, 1, 1),
			score:  1,
			expect: pairs("A", "A", "A", "A"), // via M and via the free Ix column
		},
		{
			name:  "global internal gap",
			p:     params("ACCT", "ACT", align.Global, 1, 0.5),
			score: 2,
			expect: pairs(
				"CCT", "ACT",
				"ACCT", "A_CT",
				"_CT", "ACT",
				"ACCT", "AC_T",
				"ACC", "ACT",
			),
		},
		{
			name:   "global GATTACA",
			p:      params("GATTACA", "GCATGCA", align.Global, 1, 0.5),
			score:  4,
			expect: pairs("GATTACA", "GCATGCA"),
		},
		{
			name:   "local GATTACA",
			p:      params("GATTACA", "GCATGCA", align.Local, 1, 0.5),
			score:  4,
			expect: pairs("GATTACA", "GCATGCA"),
		},
		{
			name:   "single match",
			p:      params("A", "A", align.Global, 1, 1),
			score:  1,
			expect: pairs("A", "A"),
		},
		{
			name:   "single mismatch",
			p:      params("A", "C", align.Global, 1, 1),
			score:  0,
			expect: pairs("A", "C", "", "", "", ""), // Ix(0,0) and Iy(0,0) render nothing
		},
		{
			name:   "global free gap start",
			p:      plusMinus("AB", "CB", align.Global, 2, 1),
			score:  1,
			expect: pairs("AB", "_B", "_B", "CB"),
		},
		{
			name:   "global gap start ties the diagonal",
			p:      params("AB", "CB", align.Global, 2, 1),
			score:  1,
			expect: pairs("AB", "CB", "AB", "_B", "_B", "CB"),
		},
		{
			name:   "local core",
			p:      params("ACGTACGT", "TACG", align.Local, 2, 1),
			score:  4,
			expect: pairs("TACG", "TACG"),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := align.Align(tc.p)
			require.NoError(t, err)
			assert.InDelta(t, tc.score, res.Score, 1e-9)
			assert.ElementsMatch(t, tc.expect, res.Alignments)
			assert.False(t, res.Truncated)
		})
	}
}

// TestAlign_LocalZeroOptimum verifies that a Local run with nothing positive
// reports score 0 and no alignments.
func TestAlign_LocalZeroOptimum(t *testing.T) {
	p := align.Params{
		A:      "AAAA",
		B:      "TTT",
		Mode:   align.Local,
		Gaps:   align.Uniform(1, 1),
		Scores: align.IdentityTable("AT", -1, -1),
	}

	res, err := align.Align(p)
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Score)
	assert.Empty(t, res.Alignments)
}

// TestAlign_EmptySequence ensures empty inputs are rejected in both modes.
func TestAlign_EmptySequence(t *testing.T) {
	for _, mode := range []align.Mode{align.Global, align.Local} {
		_, err := align.Align(params("", "ACGT", mode, 1, 1))
		assert.ErrorIs(t, err, align.ErrEmptySequence, mode.String())

		_, err = align.Align(params("ACGT", "", mode, 1, 1))
		assert.ErrorIs(t, err, align.ErrEmptySequence, mode.String())
	}
}

// TestAlign_Overhangs verifies that Global overhang rendering reconstructs the
// inputs while leaving the score untouched.
func TestAlign_Overhangs(t *testing.T) {
	p := params("HEAGAWGHEE", "PAWHEAE", align.Global, 2, 1)

	res, err := align.Align(p, align.WithOverhangs(true))
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Score)
	assert.ElementsMatch(t, pairs(
		"HEAGAWGHEE", "___PAWHEAE",
		"HEAG_AWGHEE", "____PAWHEAE",
		"___HEAGAWGHEE", "PAWHEAE______",
	), res.Alignments)

	for _, aln := range res.Alignments {
		assert.Equal(t, p.A, degap(aln.A))
		assert.Equal(t, p.B, degap(aln.B))
		s, err := align.Rescore(p, aln, align.WithOverhangs(true))
		require.NoError(t, err)
		assert.InDelta(t, res.Score, s, 1e-9)
	}

	// Skipped residues of a gap start are shown too.
	gs, err := align.Align(plusMinus("AB", "CB", align.Global, 2, 1), align.WithOverhangs(true))
	require.NoError(t, err)
	assert.Equal(t, pairs("_AB", "C_B", "A_B", "_CB"), gs.Alignments)

	// Local ignores the flag.
	p.Mode = align.Local
	plain, err := align.Align(p)
	require.NoError(t, err)
	withFlag, err := align.Align(p, align.WithOverhangs(true))
	require.NoError(t, err)
	assert.Equal(t, plain, withFlag)
}

// TestAlign_Idempotent ensures repeated runs return identical results.
func TestAlign_Idempotent(t *testing.T) {
	p := params("HEAGAWGHEE", "PAWHEAE", align.Local, 2, 1)

	first, err := align.Align(p)
	require.NoError(t, err)
	second, err := align.Align(p)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestAlign_AsymmetricScores checks that (a,b) and (b,a) are independent entries.
func TestAlign_AsymmetricScores(t *testing.T) {
	tbl := align.NewMatchTable()
	tbl.Set('A', 'C', 5)
	tbl.Set('C', 'A', -5)

	res, err := align.Align(align.Params{A: "A", B: "C", Gaps: align.Uniform(1, 1), Scores: tbl})
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.Score)

	res, err = align.Align(align.Params{A: "C", B: "A", Gaps: align.Uniform(1, 1), Scores: tbl})
	require.NoError(t, err)
	assert.Equal(t, -5.0, res.Score)
}

// TestResult_Sorted checks canonical ordering without touching the receiver.
func TestResult_Sorted(t *testing.T) {
	r := align.Result{Score: 1, Alignments: pairs("B", "A", "A", "B", "A", "A")}

	s := r.Sorted()
	assert.Equal(t, pairs("A", "A", "A", "B", "B", "A"), s.Alignments)
	assert.Equal(t, pairs("B", "A", "A", "B", "A", "A"), r.Alignments)
}
