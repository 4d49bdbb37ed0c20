// Command drivestat analyzes where disk space is consumed on local
// fixed volumes.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/drivestat/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "drivestat: %v\n", err)
		os.Exit(1)
	}
}
