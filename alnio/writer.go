package alnio

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/gotoh/align"
	"gopkg.in/yaml.v3"
)

// Format selects the result encoding.
type Format string

const (
	// FormatText is the legacy layout: score, then blank-line separated pairs.
	FormatText Format = "text"

	// FormatJSON is an indented JSON document.
	FormatJSON Format = "json"

	// FormatYAML is a YAML document.
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats in help order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat accepts a format name in any case; "txt" and "yml" are aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "txt", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// WriteResult encodes res to w in format f.
func WriteResult(w io.Writer, f Format, res align.Result) error {
	switch f {
	case FormatText:
		return WriteText(w, res)
	case FormatJSON:
		return WriteJSON(w, res)
	case FormatYAML:
		return WriteYAML(w, res)
	default:
		return fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}

// WriteResultFile creates (or truncates) path and writes res to it.
func WriteResultFile(path string, f Format, res align.Result) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("alnio: create %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	return WriteResult(file, f, res)
}

// WriteText writes the legacy layout:
//
//	3.0
//
//	HEAG
//	HEAE
//
// Truncation is not represented.
func WriteText(w io.Writer, res align.Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%.1f\n", res.Score)
	for _, aln := range res.Alignments {
		fmt.Fprintf(bw, "\n%s\n%s\n", aln.A, aln.B)
	}

	return bw.Flush()
}

// WriteJSON writes res as indented JSON. A result without alignments encodes
// an empty list, never null.
func WriteJSON(w io.Writer, res align.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(normalize(res))
}

// WriteYAML writes res as a YAML document.
func WriteYAML(w io.Writer, res align.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(normalize(res)); err != nil {
		return fmt.Errorf("alnio: yaml: %w", err)
	}

	return enc.Close()
}

func normalize(res align.Result) align.Result {
	if res.Alignments == nil {
		res.Alignments = []align.Alignment{}
	}

	return res
}
