// Command gridpath reads a whitespace-separated cost matrix from a file and
// prints the weight of the least-cost 4-connected path between two cells,
// by default the top-left and bottom-right corners.
//
//	gridpath grid.txt
//	gridpath --start 0,0 --end 9,4 --path --format json grid.txt
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
