// Package config is for run-wide settings that are unmarshalled from Viper:
// built-in defaults, then an optional config file, then GOTOH_* environment
// variables, then command line flags bound by internal/cli.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/gotoh/align"
	"github.com/katalvlaran/gotoh/alnio"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides: GOTOH_MAX_PATHS, GOTOH_FORMAT, ...
const EnvPrefix = "GOTOH"

// Setting keys, shared by config files, environment variables and flags.
const (
	KeyEpsilon     = "epsilon"
	KeyMaxPaths    = "max-paths"
	KeyBatchSize   = "batch-size"
	KeyGapMarker   = "gap-marker"
	KeyOverhangs   = "overhangs"
	KeyFormat      = "format"
	KeySort        = "sort"
	KeyVerify      = "verify"
	KeyMetricsFile = "metrics-file"
	KeyTraceFile   = "trace-file"
	KeyLogLevel    = "log-level"
)

// ErrInvalidConfig indicates a setting outside its allowed range.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Config is the decoded settings of one CLI run.
type Config struct {
	// tie tolerance for fill and traceback
	Epsilon float64 `mapstructure:"epsilon"`

	// cap on emitted alignments, 0 for none
	MaxPaths int `mapstructure:"max-paths"`

	// traceback leaves rendered per batch
	BatchSize int `mapstructure:"batch-size"`

	// single gap character
	GapMarker string `mapstructure:"gap-marker"`

	// render free end regions in global mode
	Overhangs bool `mapstructure:"overhangs"`

	// text, json or yaml
	Format string `mapstructure:"format"`

	// order alignments canonically before writing
	Sort bool `mapstructure:"sort"`

	// re-score every alignment and fail on a mismatch
	Verify bool `mapstructure:"verify"`

	// node-exporter textfile to dump metrics into, empty to skip
	MetricsFile string `mapstructure:"metrics-file"`

	// file to export OpenTelemetry spans into as JSON, empty to skip
	TraceFile string `mapstructure:"trace-file"`

	// debug, info, warn or error
	LogLevel string `mapstructure:"log-level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Epsilon:   align.DefaultEpsilon,
		MaxPaths:  align.DefaultMaxPaths,
		BatchSize: align.DefaultBatchSize,
		GapMarker: string(align.DefaultGapMarker),
		Overhangs: align.DefaultOverhangs,
		Format:    string(alnio.FormatText),
		LogLevel:  "info",
	}
}

// SetDefaults registers Default under every key of v. Registering a key is
// also what lets AutomaticEnv reach it during Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyEpsilon, d.Epsilon)
	v.SetDefault(KeyMaxPaths, d.MaxPaths)
	v.SetDefault(KeyBatchSize, d.BatchSize)
	v.SetDefault(KeyGapMarker, d.GapMarker)
	v.SetDefault(KeyOverhangs, d.Overhangs)
	v.SetDefault(KeyFormat, d.Format)
	v.SetDefault(KeySort, d.Sort)
	v.SetDefault(KeyVerify, d.Verify)
	v.SetDefault(KeyMetricsFile, d.MetricsFile)
	v.SetDefault(KeyTraceFile, d.TraceFile)
	v.SetDefault(KeyLogLevel, d.LogLevel)
}

// NewViper returns a Viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// ReadFile merges the config file at path into v; the format follows the
// file extension (yaml, toml, json, ...).
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	return nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate reports the first setting outside its allowed range.
func (c Config) Validate() error {
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon <= 0 {
		return fmt.Errorf("%s=%v must be finite and > 0: %w", KeyEpsilon, c.Epsilon, ErrInvalidConfig)
	}
	if c.MaxPaths < 0 {
		return fmt.Errorf("%s=%d must be >= 0: %w", KeyMaxPaths, c.MaxPaths, ErrInvalidConfig)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("%s=%d must be > 0: %w", KeyBatchSize, c.BatchSize, ErrInvalidConfig)
	}
	if _, err := c.GapRune(); err != nil {
		return err
	}
	if _, err := alnio.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("%s: %w: %w", KeyFormat, err, ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// GapRune returns the gap marker as a rune.
func (c Config) GapRune() (rune, error) {
	r, size := utf8.DecodeRuneInString(c.GapMarker)
	if r == utf8.RuneError || size != len(c.GapMarker) || unicode.IsSpace(r) || !unicode.IsPrint(r) {
		return 0, fmt.Errorf("%s=%q must be one printable, non-space character: %w", KeyGapMarker, c.GapMarker, ErrInvalidConfig)
	}

	return r, nil
}

// OutputFormat returns the parsed output format; call after Validate.
func (c Config) OutputFormat() alnio.Format {
	f, _ := alnio.ParseFormat(c.Format)

	return f
}

// Level returns the parsed log level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%s=%q: %w", KeyLogLevel, c.LogLevel, ErrInvalidConfig)
	}

	return l, nil
}

// AlignOptions maps the settings onto align options. c must be valid: the
// option constructors panic on the values Validate rejects.
func (c Config) AlignOptions() []align.Option {
	gap, _ := c.GapRune()

	return []align.Option{
		align.WithEpsilon(c.Epsilon),
		align.WithMaxPaths(c.MaxPaths),
		align.WithBatchSize(c.BatchSize),
		align.WithGapMarker(gap),
		align.WithOverhangs(c.Overhangs),
	}
}
