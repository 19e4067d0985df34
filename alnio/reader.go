package alnio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/gotoh/align"
)

// maxLineBytes bounds a single input line; sequences are read whole.
const maxLineBytes = 64 << 20

// matchFields is the number of fields of a match line.
const matchFields = 5

// ReadParamsFile opens path and parses it with ReadParams.
func ReadParamsFile(path string) (align.Params, error) {
	f, err := os.Open(path)
	if err != nil {
		return align.Params{}, fmt.Errorf("alnio: open %s: %w", path, err)
	}
	defer f.Close()

	p, err := ReadParams(f)
	if err != nil {
		return align.Params{}, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// ReadParams parses the legacy input layout described in the package doc.
//
// Validation:
//   - every fixed line must be present and parse;
//   - a declared alphabet length must equal the alphabet's symbol count;
//   - sequence and match-line symbols must belong to their alphabets.
//
// Errors wrap ErrMalformedInput or ErrUnknownSymbol and name the 1-based line.
// Empty sequences are accepted here and rejected by align.Validate.
func ReadParams(r io.Reader) (align.Params, error) {
	lr := newLineReader(r)
	var p align.Params

	seqA, err := lr.next("sequence A")
	if err != nil {
		return p, err
	}
	seqB, err := lr.next("sequence B")
	if err != nil {
		return p, err
	}

	modeLine, err := lr.next("mode flag")
	if err != nil {
		return p, err
	}
	flag, err := strconv.Atoi(modeLine)
	if err != nil {
		return p, lr.errorf("mode flag %q: %w", modeLine, ErrMalformedInput)
	}

	gaps, err := lr.readGaps()
	if err != nil {
		return p, err
	}

	alphaA, err := lr.readAlphabet("A")
	if err != nil {
		return p, err
	}
	alphaB, err := lr.readAlphabet("B")
	if err != nil {
		return p, err
	}
	if err := checkSymbols(seqA, alphaA, 1); err != nil {
		return p, err
	}
	if err := checkSymbols(seqB, alphaB, 2); err != nil {
		return p, err
	}

	scores, err := lr.readMatches(alphaA, alphaB)
	if err != nil {
		return p, err
	}

	return align.Params{
		A:      seqA,
		B:      seqB,
		Mode:   align.ModeFromFlag(flag),
		Gaps:   gaps,
		Scores: scores,
	}, nil
}

// lineReader counts lines so errors can name them.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &lineReader{sc: sc}
}

// scan advances to the next line and returns it without surrounding space.
func (lr *lineReader) scan() (string, bool) {
	if !lr.sc.Scan() {
		return "", false
	}
	lr.line++

	return strings.TrimSpace(lr.sc.Text()), true
}

// next returns the next required line.
func (lr *lineReader) next(what string) (string, error) {
	s, ok := lr.scan()
	if !ok {
		if err := lr.sc.Err(); err != nil {
			return "", fmt.Errorf("alnio: line %d: %w", lr.line+1, err)
		}

		return "", fmt.Errorf("line %d: missing %s: %w", lr.line+1, what, ErrMalformedInput)
	}

	return s, nil
}

// errorf prefixes the current line number.
func (lr *lineReader) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: "+format, append([]any{lr.line}, args...)...)
}

// readGaps parses "dx ex dy ey"; extra fields are ignored.
func (lr *lineReader) readGaps() (align.GapPenalties, error) {
	s, err := lr.next("gap penalties")
	if err != nil {
		return align.GapPenalties{}, err
	}
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return align.GapPenalties{}, lr.errorf("want 4 gap penalties, got %d: %w", len(fields), ErrMalformedInput)
	}

	var v [4]float64
	for i := range v {
		if v[i], err = strconv.ParseFloat(fields[i], 64); err != nil {
			return align.GapPenalties{}, lr.errorf("gap penalty %q: %w", fields[i], ErrMalformedInput)
		}
	}

	return align.GapPenalties{OpenX: v[0], ExtendX: v[1], OpenY: v[2], ExtendY: v[3]}, nil
}

// readAlphabet parses a length line followed by the alphabet itself.
func (lr *lineReader) readAlphabet(name string) (string, error) {
	s, err := lr.next("alphabet " + name + " length")
	if err != nil {
		return "", err
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return "", lr.errorf("alphabet %s length %q: %w", name, s, ErrMalformedInput)
	}

	alpha, err := lr.next("alphabet " + name)
	if err != nil {
		return "", err
	}
	if got := utf8.RuneCountInString(alpha); got != n {
		return "", lr.errorf("alphabet %s: declared %d symbols, got %d: %w", name, n, got, ErrMalformedInput)
	}

	return alpha, nil
}

// readMatches consumes match lines until the first short line or EOF.
func (lr *lineReader) readMatches(alphaA, alphaB string) (*align.MatchTable, error) {
	t := align.NewMatchTable()
	for {
		s, ok := lr.scan()
		if !ok {
			break
		}
		fields := strings.Fields(s)
		if len(fields) < matchFields {
			break
		}

		a, _ := utf8.DecodeRuneInString(fields[2])
		b, _ := utf8.DecodeRuneInString(fields[3])
		if !strings.ContainsRune(alphaA, a) {
			return nil, lr.errorf("%q: %w", a, ErrUnknownSymbol)
		}
		if !strings.ContainsRune(alphaB, b) {
			return nil, lr.errorf("%q: %w", b, ErrUnknownSymbol)
		}
		score, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return nil, lr.errorf("match score %q: %w", fields[4], ErrMalformedInput)
		}
		t.Set(a, b, score)
	}
	if err := lr.sc.Err(); err != nil {
		return nil, fmt.Errorf("alnio: line %d: %w", lr.line+1, err)
	}

	return t, nil
}

// checkSymbols rejects a sequence symbol missing from alphabet.
func checkSymbols(seq, alphabet string, line int) error {
	for i, r := range []rune(seq) {
		if !strings.ContainsRune(alphabet, r) {
			return fmt.Errorf("line %d: position %d %q: %w", line, i, r, ErrUnknownSymbol)
		}
	}

	return nil
}
