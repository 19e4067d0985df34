// Package align: functional configuration for the fill and traceback engines.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration.
//
// Design goals:
//   - Deterministic behavior: no global state; the tie tolerance is threaded
//     explicitly into fill and traceback.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package align

import (
	"math"
	"unicode"
	"unicode/utf8"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance under which two scores are tied.
	// Repeated additions of penalties drift; ties inside this band are all kept.
	DefaultEpsilon = 1e-6

	// DefaultMaxPaths disables the cap on enumerated alignments (0 = unlimited).
	DefaultMaxPaths = 0

	// DefaultBatchSize is the number of traceback leaves rendered per batch.
	DefaultBatchSize = 256

	// DefaultGapMarker is the legacy gap character.
	DefaultGapMarker = '_'

	// DefaultOverhangs keeps the legacy rendering: free end regions are not shown.
	DefaultOverhangs = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "align: WithEpsilon: eps must be finite and > 0"
	panicMaxPathsInvalid  = "align: WithMaxPaths: n must be >= 0"
	panicBatchSizeInvalid = "align: WithBatchSize: n must be > 0"
	panicGapMarkerInvalid = "align: WithGapMarker: marker must be a printable, non-space rune"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; resolve with NewOptions and read through getters.
type Options struct {
	eps       float64 // > 0; DefaultEpsilon
	maxPaths  int     // >= 0; DefaultMaxPaths
	batchSize int     // > 0; DefaultBatchSize
	gapMarker rune    // DefaultGapMarker
	overhangs bool    // DefaultOverhangs
}

// WithEpsilon sets the tie tolerance used by both fill and traceback.
// Implementation:
//   - Stage 1: validate eps is finite and > 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Behavior highlights:
//   - Two scores a, b tie when |a-b| < eps. A predecessor is recorded, and a
//     start cell selected, only when it ties the optimum.
//
// Notes:
//   - The same eps must govern fill and traceback or co-optimal paths are
//     dropped or duplicated; Align threads one value into both.
//
// AI-Hints:
//   - Keep eps far below the smallest score difference that matters
//     (e.g. 1e-6 for scores with one decimal digit).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMaxPaths caps the number of alignments the traceback emits (0 = no cap).
// When the cap cuts the enumeration short, Result.Truncated is set.
//
// Notes:
//   - The number of co-optimal paths can grow combinatorially with length and
//     tie density; this is a resource policy, not a correctness knob.
func WithMaxPaths(n int) Option {
	if n < 0 {
		panic(panicMaxPathsInvalid)
	}

	return func(o *Options) { o.maxPaths = n }
}

// WithBatchSize sets how many traceback leaves are collected before they are
// rendered and the node arena is compacted. Smaller batches lower peak memory;
// the produced set of alignments is the same for every batch size.
func WithBatchSize(n int) Option {
	if n <= 0 {
		panic(panicBatchSizeInvalid)
	}

	return func(o *Options) { o.batchSize = n }
}

// WithGapMarker sets the gap character used in rendered alignments.
func WithGapMarker(marker rune) Option {
	if marker == utf8.RuneError || !utf8.ValidRune(marker) || unicode.IsSpace(marker) || !unicode.IsPrint(marker) {
		panic(panicGapMarkerInvalid)
	}

	return func(o *Options) { o.gapMarker = marker }
}

// WithOverhangs toggles rendering of the free end regions in Global mode.
// When on, residues left outside the scored path (before its first column,
// and the suppressed terminal gap runs after its last) are emitted against gap
// markers, so removing gaps from each output reconstructs the whole input.
// The score is unchanged. Local mode ignores the flag.
func WithOverhangs(on bool) Option {
	return func(o *Options) { o.overhangs = on }
}

// NewOptions resolves opts over the documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts)
}

// gatherOptions applies setters in order over the defaults; nil setters are skipped.
func gatherOptions(opts []Option) Options {
	o := Options{
		eps:       DefaultEpsilon,
		maxPaths:  DefaultMaxPaths,
		batchSize: DefaultBatchSize,
		gapMarker: DefaultGapMarker,
		overhangs: DefaultOverhangs,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Epsilon returns the tie tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// MaxPaths returns the path cap (0 = unlimited).
func (o Options) MaxPaths() int { return o.maxPaths }

// BatchSize returns the leaf batch size.
func (o Options) BatchSize() int { return o.batchSize }

// GapMarker returns the gap character.
func (o Options) GapMarker() rune { return o.gapMarker }

// Overhangs reports whether Global-mode end regions are rendered.
func (o Options) Overhangs() bool { return o.overhangs }

// fuzzyEqual reports |a-b| < eps. Infinite operands never compare equal.
func fuzzyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// fuzzyZero reports |v| < eps.
func fuzzyZero(v, eps float64) bool {
	return math.Abs(v) < eps
}
