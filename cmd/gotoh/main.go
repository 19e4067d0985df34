// Command gotoh aligns two sequences with affine gap penalties and reports
// every co-optimal alignment. See "gotoh help align".
package main

import "github.com/katalvlaran/gotoh/internal/cli"

func main() {
	cli.Execute() // initialize cobra commands
}
