// Command ecosim is the EcoSim CLI: deterministic environmental-impact
// simulation, greenwashing claim analysis, and the live ESG report
// auditor with its HTTP API.
package main

import (
	"fmt"
	"os"

	"github.com/ecosim/ecosim/internal/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	return cli.NewRootCmd(version).Execute()
}
