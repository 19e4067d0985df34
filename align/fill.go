package align

import (
	"math"

	"github.com/katalvlaran/gotoh/grid"
)

// Fill: the Gotoh fill phase.
//
// Description:
//
//	Fill populates the M, Ix and Iy grids of one run in a single row-major
//	sweep and records, per cell, every predecessor that ties the cell's score.
//
// Algorithm Outline:
//  1. Let n = len(A), m = len(B). Allocate three n×m grids with pointers.
//  2. Seed: every grid starts at zero. Ix[0,c] and Iy[r,0] are never
//     recomputed, so they stay 0 without pointers: free gap starts that M
//     may extend from in either mode.
//  3. Borders:
//     M[r,0] = s(A[r],B[0]),  M[0,c] = s(A[0],B[c])   (clamped at 0 in Local)
//     Ix[r,0] (r>0) and Iy[0,c] (c>0) follow the general gap recurrence.
//  4. For r = 1..n-1, c = 1..m-1:
//     M[r,c]  = max(M, Ix, Iy)[r-1,c-1] + s(A[r],B[c])
//     Ix[r,c] = max(M[r-1,c] - dy, Ix[r-1,c] - ey)
//     Iy[r,c] = max(M[r,c-1] - dx, Iy[r,c-1] - ex)
//     Local clamps every value at 0.
//  5. Global end-gap rule: Ix in the last column and Iy in the last row use
//     zero open/extend penalties.
//
// Back-pointers:
//   - every candidate whose expression ties the final value (|Δ| < eps) is kept;
//   - Local: a candidate whose own score is fuzzy-zero is dropped, and a cell
//     whose own score is fuzzy-zero keeps no pointers (a local start).
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (three grids + one link byte per cell)
//
// Errors:
//   - those of Validate (ErrEmptySequence, ErrBadMode, ErrNilScores, ErrBadPenalty).
func Fill(p Params, opts ...Option) (*grid.MatrixSet, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	o := gatherOptions(opts)

	a, b := []rune(p.A), []rune(p.B)
	set, err := grid.NewMatrixSet(len(a), len(b), true)
	if err != nil {
		return nil, err
	}

	e := fillEngine{
		a:      a,
		b:      b,
		n:      len(a),
		m:      len(b),
		local:  p.Mode == Local,
		gaps:   p.Gaps,
		scores: p.Scores,
		eps:    o.eps,
		set:    set,
	}
	e.run()

	return set, nil
}

// fillEngine carries the read-only inputs of one fill pass.
type fillEngine struct {
	a, b   []rune
	n, m   int
	local  bool
	gaps   GapPenalties
	scores *MatchTable
	eps    float64
	set    *grid.MatrixSet
}

// run executes seed, borders and the interior sweep.
func (e *fillEngine) run() {
	// First column, then first row; M[0,0] is written twice with one value.
	for r := 0; r < e.n; r++ {
		e.set.M.SetScore(r, 0, e.clamp(e.scores.Score(e.a[r], e.b[0])))
		if r > 0 {
			e.updateIx(r, 0)
		}
	}
	for c := 0; c < e.m; c++ {
		e.set.M.SetScore(0, c, e.clamp(e.scores.Score(e.a[0], e.b[c])))
		if c > 0 {
			e.updateIy(0, c)
		}
	}

	for r := 1; r < e.n; r++ {
		for c := 1; c < e.m; c++ {
			e.updateM(r, c)
			e.updateIx(r, c)
			e.updateIy(r, c)
		}
	}
}

// clamp applies the Local zero floor.
func (e *fillEngine) clamp(v float64) float64 {
	if e.local && v < 0 {
		return 0
	}

	return v
}

// keep decides whether a candidate with expression expr and own score own
// becomes a back-pointer of a cell scored v.
func (e *fillEngine) keep(v, expr, own float64) bool {
	if !fuzzyEqual(v, expr, e.eps) {
		return false
	}

	return !e.local || !fuzzyZero(own, e.eps)
}

// updateM fills M[r,c] from the diagonal neighbour of all three grids.
func (e *fillEngine) updateM(r, c int) {
	s := e.scores.Score(e.a[r], e.b[c])

	var own [3]float64
	best := math.Inf(-1)
	for _, role := range grid.Roles {
		own[role] = e.set.Grid(role).Score(r-1, c-1)
		if own[role] > best {
			best = own[role]
		}
	}
	v := e.clamp(best + s)

	var links grid.Links
	if !(e.local && fuzzyZero(v, e.eps)) {
		for _, role := range grid.Roles {
			if e.keep(v, own[role]+s, own[role]) {
				links = links.Add(role)
			}
		}
	}

	e.set.M.SetScore(r, c, v)
	e.set.M.SetLinks(r, c, links)
}

// updateIx fills Ix[r,c] (A[r] against a gap) from the cell above.
func (e *fillEngine) updateIx(r, c int) {
	open, extend := e.gaps.OpenY, e.gaps.ExtendY
	if !e.local && c == e.m-1 {
		open, extend = 0, 0
	}
	ownM, ownX := e.set.M.Score(r-1, c), e.set.Ix.Score(r-1, c)
	e.updateGap(e.set.Ix, r, c, ownM, ownM-open, ownX, ownX-extend)
}

// updateIy fills Iy[r,c] (B[c] against a gap) from the cell to the left.
func (e *fillEngine) updateIy(r, c int) {
	open, extend := e.gaps.OpenX, e.gaps.ExtendX
	if !e.local && r == e.n-1 {
		open, extend = 0, 0
	}
	ownM, ownY := e.set.M.Score(r, c-1), e.set.Iy.Score(r, c-1)
	e.updateGap(e.set.Iy, r, c, ownM, ownM-open, ownY, ownY-extend)
}

// updateGap stores max(fromM, fromGap) in g[r,c] together with its ties.
// ownM/ownGap are the predecessor scores; fromM/fromGap the candidate
// expressions after the penalty.
func (e *fillEngine) updateGap(g *grid.ScoreGrid, r, c int, ownM, fromM, ownGap, fromGap float64) {
	v := fromM
	if fromGap > v {
		v = fromGap
	}
	v = e.clamp(v)

	var links grid.Links
	if !(e.local && fuzzyZero(v, e.eps)) {
		if e.keep(v, fromM, ownM) {
			links = links.Add(grid.M)
		}
		if e.keep(v, fromGap, ownGap) {
			links = links.Add(g.Role())
		}
	}

	g.SetScore(r, c, v)
	g.SetLinks(r, c, links)
}
