// Package align defines modes, parameters and results for Gotoh alignment.
package align

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Mode selects global (end-to-end) or local (best segment) alignment.
//
//   - Global: Needleman–Wunsch style; the optimum is read at the bottom-right cell.
//   - Local: Smith–Waterman style; every cell is floored at zero and the optimum
//     is the best M cell anywhere in the grid.
type Mode int

const (
	// Global aligns both sequences end to end.
	Global Mode = iota

	// Local aligns the best-scoring contiguous segments.
	Local
)

// ModeFromFlag maps the legacy input-file flag to a Mode: 0 is Global,
// anything else is Local.
func ModeFromFlag(flag int) Mode {
	if flag == 0 {
		return Global
	}

	return Local
}

// ParseMode accepts "global", "local" (any case) or a legacy numeric flag.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "global", "g":
		return Global, nil
	case "local", "l":
		return Local, nil
	}
	flag, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Global, fmt.Errorf("parse mode %q: %w", s, ErrBadMode)
	}

	return ModeFromFlag(flag), nil
}

// String returns "global" or "local".
func (m Mode) String() string {
	switch m {
	case Global:
		return "global"
	case Local:
		return "local"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// GapPenalties holds the four affine gap costs, subtracted from the score.
//
// Fields (legacy names in brackets):
//   - OpenX, ExtendX [dx, ex]: charged on Iy, where B[col] is consumed against a gap.
//   - OpenY, ExtendY [dy, ey]: charged on Ix, where A[row] is consumed against a gap.
//
// Open applies on the step out of M into a gap, Extend on every further gap step.
type GapPenalties struct {
	OpenX   float64
	ExtendX float64
	OpenY   float64
	ExtendY float64
}

// Uniform returns penalties with the same open/extend cost in both directions.
func Uniform(open, extend float64) GapPenalties {
	return GapPenalties{OpenX: open, ExtendX: extend, OpenY: open, ExtendY: extend}
}

// symbolPair is an ordered (a, b) lookup key.
type symbolPair struct {
	a, b rune
}

// MatchTable is a sparse score lookup keyed by an ordered pair of symbols.
// (a,b) and (b,a) are independent entries; unlisted pairs score 0.
// A nil *MatchTable scores every pair 0.
type MatchTable struct {
	scores map[symbolPair]float64
}

// NewMatchTable returns an empty table.
func NewMatchTable() *MatchTable {
	return &MatchTable{scores: make(map[symbolPair]float64)}
}

// IdentityTable scores every ordered pair over alphabet: match on the
// diagonal, mismatch elsewhere.
// Complexity: O(k²) for an alphabet of k symbols.
func IdentityTable(alphabet string, match, mismatch float64) *MatchTable {
	t := NewMatchTable()
	symbols := []rune(alphabet)
	for _, a := range symbols {
		for _, b := range symbols {
			if a == b {
				t.Set(a, b, match)
			} else {
				t.Set(a, b, mismatch)
			}
		}
	}

	return t
}

// Set stores the score of the ordered pair (a, b), replacing any previous value.
func (t *MatchTable) Set(a, b rune, score float64) {
	if t.scores == nil {
		t.scores = make(map[symbolPair]float64)
	}
	t.scores[symbolPair{a, b}] = score
}

// Score returns the score of (a, b), or 0 when the pair is not listed.
func (t *MatchTable) Score(a, b rune) float64 {
	if t == nil {
		return 0
	}

	return t.scores[symbolPair{a, b}]
}

// Lookup returns the score of (a, b) and whether the pair is listed.
func (t *MatchTable) Lookup(a, b rune) (float64, bool) {
	if t == nil {
		return 0, false
	}
	s, ok := t.scores[symbolPair{a, b}]

	return s, ok
}

// Len returns the number of listed pairs.
func (t *MatchTable) Len() int {
	if t == nil {
		return 0
	}

	return len(t.scores)
}

// Params is the complete input of one alignment run.
// The engine never mutates it.
type Params struct {
	A, B   string
	Mode   Mode
	Gaps   GapPenalties
	Scores *MatchTable
}

// Alignment is one rendered alignment: two equal-length strings where the gap
// marker stands for a position consumed only on the other side.
type Alignment struct {
	A string `json:"a" yaml:"a"`
	B string `json:"b" yaml:"b"`
}

// Result is the outcome of an alignment run. It shares no storage with the
// DP grids.
//
//   - Score: the optimal score.
//   - Alignments: every co-optimal alignment found, in traceback order.
//     The order is an implementation detail; use Sorted for a canonical one.
//     One entry per traced path: paths that differ only in suppressed end
//     gap steps render the same pair, so pairs may repeat. A path made only
//     of such steps renders as two empty strings.
//     Empty for a Local run whose optimum is zero.
//   - Truncated: set when WithMaxPaths stopped the enumeration early.
type Result struct {
	Score      float64     `json:"score" yaml:"score"`
	Alignments []Alignment `json:"alignments" yaml:"alignments"`
	Truncated  bool        `json:"truncated" yaml:"truncated"`
}

// Sorted returns a copy of r with Alignments ordered by (A, B).
func (r Result) Sorted() Result {
	out := r
	out.Alignments = make([]Alignment, len(r.Alignments))
	copy(out.Alignments, r.Alignments)
	sort.Slice(out.Alignments, func(i, j int) bool {
		if out.Alignments[i].A != out.Alignments[j].A {
			return out.Alignments[i].A < out.Alignments[j].A
		}

		return out.Alignments[i].B < out.Alignments[j].B
	})

	return out
}
