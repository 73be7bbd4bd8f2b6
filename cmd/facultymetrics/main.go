// Command facultymetrics filters a faculty roster and summarises its
// research output.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/facultymetrics/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
