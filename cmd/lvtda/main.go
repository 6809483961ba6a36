// Command lvtda runs topological data analysis on point clouds.
//
// Usage:
//
//	lvtda [flags] <command> <points-file>
//
// Commands:
//
//	distances   - pairwise Euclidean distance matrix
//	dbscan      - density-based clustering
//	persistence - Vietoris-Rips persistence intervals
//	mapper      - Mapper graph
//
// Points are read from CSV (one point per line) or from a JSON array of
// arrays; "-" reads standard input. Results are printed as JSON.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvtda/cmd/lvtda/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
