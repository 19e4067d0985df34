package alnio

import "errors"

// Sentinel errors for the alnio package.
var (
	// ErrMalformedInput indicates a missing, unparsable or inconsistent input line.
	ErrMalformedInput = errors.New("alnio: malformed input")

	// ErrUnknownSymbol indicates a symbol outside the declared alphabets.
	ErrUnknownSymbol = errors.New("alnio: symbol not in alphabet")

	// ErrUnknownFormat indicates an output format other than text, json or yaml.
	ErrUnknownFormat = errors.New("alnio: unknown output format")
)
