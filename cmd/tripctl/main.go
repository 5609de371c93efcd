// Command tripctl exercises the trip spreadsheet and extraction pipeline
// from a terminal: fetch the live trip, tokenize a CSV export, parse a
// confirmation into a change preview, and write manual-import CSV files.
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
