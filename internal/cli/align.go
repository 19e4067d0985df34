package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/katalvlaran/gotoh/align"
	"github.com/katalvlaran/gotoh/alnio"
	"github.com/katalvlaran/gotoh/internal/config"
	"github.com/katalvlaran/gotoh/internal/telemetry"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/attribute"
)

// alignKeys are the settings exposed as flags of the align command.
var alignKeys = []string{
	config.KeyEpsilon,
	config.KeyMaxPaths,
	config.KeyBatchSize,
	config.KeyGapMarker,
	config.KeyOverhangs,
	config.KeyFormat,
	config.KeySort,
	config.KeyVerify,
	config.KeyMetricsFile,
	config.KeyTraceFile,
}

// alignCmd aligns the two sequences of an input file.
var alignCmd = &cobra.Command{
	Use:   "align <input> [output]",
	Short: "Align two sequences and write every co-optimal alignment",
	Long: `Align the two sequences of <input> and write the optimal score followed by
every alignment that reaches it.

The result goes to [output] when given, otherwise to stdout. The text format
is the legacy layout: the score with one decimal, then each alignment as two
rows preceded by a blank line.`,
	Example: `  gotoh align testdata/heagawghee.txt
  gotoh align in.txt out.json --format json --sort --verify
  GOTOH_MAX_PATHS=100 gotoh align in.txt --metrics-file /var/lib/node_exporter/gotoh.prom`,
	Args: cobra.RangeArgs(1, 2),
	RunE: alignExec,
}

func init() {
	rootCmd.AddCommand(alignCmd)

	f := alignCmd.Flags()
	f.Float64(config.KeyEpsilon, align.DefaultEpsilon, "tolerance under which two scores tie")
	f.Int(config.KeyMaxPaths, align.DefaultMaxPaths, "stop after this many alignments (0 = all)")
	f.Int(config.KeyBatchSize, align.DefaultBatchSize, "traceback leaves rendered per batch")
	f.String(config.KeyGapMarker, string(align.DefaultGapMarker), "gap character in aligned rows")
	f.Bool(config.KeyOverhangs, align.DefaultOverhangs, "global mode: also render the free end regions")
	f.StringP(config.KeyFormat, "f", string(alnio.FormatText), "output format: text, json or yaml")
	f.Bool(config.KeySort, false, "write alignments in canonical order")
	f.Bool(config.KeyVerify, false, "re-score every alignment and fail on a mismatch")
	f.String(config.KeyMetricsFile, "", "write prometheus metrics to this textfile at exit")
	f.String(config.KeyTraceFile, "", "export OpenTelemetry spans to this file as JSON")

	// Bind the parameters to viper
	bindAlignFlags(v)
}

// bindAlignFlags binds the align flags to v.
func bindAlignFlags(v *viper.Viper) {
	for _, key := range alignKeys {
		v.BindPFlag(key, alignCmd.Flags().Lookup(key))
	}
}

// alignExec is the RunE of alignCmd.
func alignExec(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	level, _ := cfg.Level()

	job := &alignJob{
		cfg:     cfg,
		input:   args[0],
		metrics: telemetry.New(),
		log:     newLogger(cmd.ErrOrStderr(), level).With("run_id", uuid.NewString()),
	}
	if len(args) > 1 {
		job.output = args[1]
	}

	if cfg.TraceFile != "" {
		stop, err := telemetry.StartFileTracing(cfg.TraceFile)
		if err != nil {
			return err
		}
		defer func() {
			if err := stop(context.Background()); err != nil {
				job.log.Warn("spans not written", "error", err)
			}
		}()
	}

	return job.run(cmd.Context(), cmd.OutOrStdout())
}

// alignJob is one invocation of the align command.
type alignJob struct {
	cfg     config.Config
	input   string
	output  string
	metrics *telemetry.Metrics
	log     *slog.Logger
}

// run parses, aligns, optionally verifies and writes. Metrics are flushed
// last so a failed run is still counted.
func (j *alignJob) run(ctx context.Context, stdout io.Writer) (err error) {
	ctx, span := telemetry.StartSpan(ctx, "gotoh.run", attribute.String("input", j.input))
	defer func() { telemetry.EndSpan(span, err) }()
	if j.cfg.MetricsFile != "" {
		defer j.flushMetrics()
	}

	p, err := alnio.ReadParamsFile(j.input)
	if err != nil {
		return err
	}
	j.log.Info("parsed input",
		"input", j.input,
		"mode", p.Mode.String(),
		"len_a", utf8.RuneCountInString(p.A),
		"len_b", utf8.RuneCountInString(p.B),
		"score_pairs", p.Scores.Len(),
	)

	res, err := j.align(ctx, p)
	j.metrics.RecordRun(p.Mode, res, err)
	if err != nil {
		return err
	}
	if res.Truncated {
		j.log.Warn("enumeration stopped at the path cap",
			"max_paths", j.cfg.MaxPaths, "emitted", len(res.Alignments))
	}

	if j.cfg.Verify {
		if err := j.verify(p, res); err != nil {
			return err
		}
	}
	if j.cfg.Sort {
		res = res.Sorted()
	}

	return j.write(stdout, res)
}

// align runs fill and traceback as separate phases so each can be timed.
func (j *alignJob) align(ctx context.Context, p align.Params) (align.Result, error) {
	if err := align.Validate(p); err != nil {
		return align.Result{}, err
	}
	opts := j.cfg.AlignOptions()
	rows, cols := utf8.RuneCountInString(p.A), utf8.RuneCountInString(p.B)

	_, span := telemetry.StartSpan(ctx, "gotoh.fill",
		attribute.Int("rows", rows), attribute.Int("cols", cols), attribute.String("mode", p.Mode.String()))
	start := time.Now()
	set, err := align.Fill(p, opts...)
	telemetry.EndSpan(span, err)
	if err != nil {
		return align.Result{}, err
	}
	elapsed := time.Since(start)
	j.metrics.ObserveFill(elapsed, rows, cols)
	j.log.Debug("fill done", "rows", rows, "cols", cols, "elapsed", elapsed)

	_, span = telemetry.StartSpan(ctx, "gotoh.traceback")
	start = time.Now()
	res, err := align.Traceback(set, p, opts...)
	if err == nil {
		span.SetAttributes(attribute.Int("alignments", len(res.Alignments)), attribute.Bool("truncated", res.Truncated))
	}
	telemetry.EndSpan(span, err)
	if err != nil {
		return align.Result{}, err
	}
	elapsed = time.Since(start)
	j.metrics.ObserveTraceback(elapsed)
	j.log.Info("aligned",
		"score", res.Score,
		"alignments", len(res.Alignments),
		"truncated", res.Truncated,
		"traceback_elapsed", elapsed,
	)

	return res, nil
}

// verify re-scores every alignment. The tolerance grows with the number of
// columns summed.
func (j *alignJob) verify(p align.Params, res align.Result) error {
	opts := j.cfg.AlignOptions()
	failed := 0
	for i, aln := range res.Alignments {
		s, err := align.Rescore(p, aln, opts...)
		if err != nil {
			return fmt.Errorf("verify alignment %d: %w", i, err)
		}
		tol := j.cfg.Epsilon * float64(utf8.RuneCountInString(aln.A)+1)
		if math.Abs(s-res.Score) > tol {
			failed++
			j.metrics.RecordVerifyFailure()
			j.log.Error("re-score mismatch", "index", i, "want", res.Score, "got", s)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d alignments: %w", failed, len(res.Alignments), ErrVerifyFailed)
	}
	j.log.Debug("verified", "alignments", len(res.Alignments))

	return nil
}

// write sends res to the output file, or to stdout when none was given.
func (j *alignJob) write(stdout io.Writer, res align.Result) error {
	format := j.cfg.OutputFormat()
	if j.output == "" {
		return alnio.WriteResult(stdout, format, res)
	}
	if err := alnio.WriteResultFile(j.output, format, res); err != nil {
		return err
	}
	j.log.Info("wrote result", "output", j.output, "format", string(format))

	return nil
}

// flushMetrics dumps the registry; a failure is logged, not returned.
func (j *alignJob) flushMetrics() {
	if err := j.metrics.WriteTextfile(j.cfg.MetricsFile); err != nil {
		j.log.Warn("metrics not written", "error", err)
	}
}
