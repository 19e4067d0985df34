package align_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gotoh/align"
)

// benchmarkAlign runs Align on two random DNA sequences of lengths n and m.
// Paths are capped so the benchmark measures fill plus a bounded traceback.
func benchmarkAlign(b *testing.B, n, m int, mode align.Mode, opts ...align.Option) {
	rng := rand.New(rand.NewSource(1))
	p := align.Params{
		A:      randomSeq(rng, "ACGT", n),
		B:      randomSeq(rng, "ACGT", m),
		Mode:   mode,
		Gaps:   align.Uniform(2, 1),
		Scores: align.IdentityTable("ACGT", 1, -1),
	}
	opts = append(opts, align.WithMaxPaths(64))

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := align.Align(p, opts...); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_GlobalSmall benchmarks Global mode on 100×100 sequences.
func BenchmarkAlign_GlobalSmall(b *testing.B) { benchmarkAlign(b, 100, 100, align.Global) }

// BenchmarkAlign_GlobalMedium benchmarks Global mode on 500×500 sequences.
func BenchmarkAlign_GlobalMedium(b *testing.B) { benchmarkAlign(b, 500, 500, align.Global) }

// BenchmarkAlign_LocalSmall benchmarks Local mode on 100×100 sequences.
func BenchmarkAlign_LocalSmall(b *testing.B) { benchmarkAlign(b, 100, 100, align.Local) }

// BenchmarkAlign_LocalMediumTinyBatch measures the compaction overhead of a batch size of 1.
func BenchmarkAlign_LocalMediumTinyBatch(b *testing.B) {
	benchmarkAlign(b, 500, 500, align.Local, align.WithBatchSize(1))
}

// BenchmarkFill isolates the fill phase.
func BenchmarkFill(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	p := align.Params{
		A:      randomSeq(rng, "ACGT", 300),
		B:      randomSeq(rng, "ACGT", 300),
		Gaps:   align.Uniform(2, 1),
		Scores: align.IdentityTable("ACGT", 1, -1),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := align.Fill(p); err != nil {
			b.Fatalf("Fill failed: %v", err)
		}
	}
}
