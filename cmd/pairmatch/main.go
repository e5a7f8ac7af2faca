// SPDX-License-Identifier: MIT

// Command pairmatch computes optimal one-to-one matchings between two groups
// of subjects, from CSV files or over HTTP.
//
// Usage:
//
//	pairmatch match treated.csv control.csv --metric euclidean
//	pairmatch match a.csv b.csv --metric precomputed --costs costs.csv --format json
//	pairmatch serve --addr :8080
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "pairmatch:", err)
		os.Exit(1)
	}
}
