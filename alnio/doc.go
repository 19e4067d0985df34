// Package alnio reads alignment runs from the legacy input file and writes
// alignment results as text, JSON or YAML.
//
// Input layout, one item per line:
//
//	HEAGAWGHEE              sequence A
//	PAWHEAE                 sequence B
//	0                       mode flag: 0 = global, anything else = local
//	2 1 2 1                 gap penalties dx ex dy ey
//	6                       |alphabet A|
//	HEAGWP                  alphabet A
//	6                       |alphabet B|
//	HEAGWP                  alphabet B
//	match ( H H 1 )         zero or more match lines: label label a b score
//
// Reading stops at the first line with fewer than five fields. Symbol pairs
// not listed score 0.
//
// Text output is the legacy layout: the score with one decimal, then for each
// alignment a blank line followed by the two aligned rows.
//
// The package does not log; every failure is returned as an error wrapping
// one of the sentinels in errors.go.
package alnio
