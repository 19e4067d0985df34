package align

import "github.com/katalvlaran/gotoh/grid"

// renderer turns an arena path into an Alignment. Its buffers are reused
// across leaves; only the final strings are allocated per alignment.
type renderer struct {
	a, b      []rune
	lastRow   int
	lastCol   int
	gap       rune
	overhangs bool

	bufA, bufB   []rune
	nextA, nextB int // first residues not yet emitted
}

func newRenderer(a, b []rune, mode Mode, o Options) renderer {
	return renderer{
		a:         a,
		b:         b,
		lastRow:   len(a) - 1,
		lastCol:   len(b) - 1,
		gap:       o.gapMarker,
		overhangs: o.overhangs && mode == Global,
	}
}

// render walks from leaf to its root. The leaf is the path's terminus (the
// cell nearest the origin), so parent order is already left-to-right.
//
// Per step:
//   - M  → A[row] over B[col]
//   - Ix → A[row] over a gap, except in the last column (free terminal gap)
//   - Iy → a gap over B[col], except in the last row (free terminal gap)
//
// With overhangs, every residue the path skips is emitted against a gap: the
// ones before the leaf first, the ones after the last rendered column last.
func (r *renderer) render(nodes []node, leaf int) Alignment {
	r.bufA, r.bufB = r.bufA[:0], r.bufB[:0]
	r.nextA, r.nextB = 0, 0

	if r.overhangs {
		r.lead(nodes[leaf].ptr)
	}

	for j := leaf; j >= 0; j = nodes[j].parent {
		p := nodes[j].ptr
		switch p.Role {
		case grid.M:
			r.column(r.a[p.Row], r.b[p.Col])
			r.nextA, r.nextB = p.Row+1, p.Col+1
		case grid.Ix:
			if p.Col != r.lastCol {
				r.column(r.a[p.Row], r.gap)
				r.nextA = p.Row + 1
			}
		case grid.Iy:
			if p.Row != r.lastRow {
				r.column(r.gap, r.b[p.Col])
				r.nextB = p.Col + 1
			}
		}
	}

	if r.overhangs {
		r.skipA(len(r.a))
		r.skipB(len(r.b))
	}

	return Alignment{A: string(r.bufA), B: string(r.bufB)}
}

func (r *renderer) column(a, b rune) {
	r.bufA = append(r.bufA, a)
	r.bufB = append(r.bufB, b)
}

// lead emits what precedes the leaf. An Ix leaf has consumed B up to its
// column and an Iy leaf A up to its row without rendering them.
func (r *renderer) lead(first grid.Pointer) {
	switch first.Role {
	case grid.Ix:
		r.skipA(first.Row)
		r.skipB(first.Col + 1)
	case grid.Iy:
		r.skipA(first.Row + 1)
		r.skipB(first.Col)
	default:
		r.skipA(first.Row)
		r.skipB(first.Col)
	}
}

// skipA emits A[nextA:upto) over gaps.
func (r *renderer) skipA(upto int) {
	for ; r.nextA < upto; r.nextA++ {
		r.column(r.a[r.nextA], r.gap)
	}
}

// skipB emits gaps over B[nextB:upto).
func (r *renderer) skipB(upto int) {
	for ; r.nextB < upto; r.nextB++ {
		r.column(r.gap, r.b[r.nextB])
	}
}
