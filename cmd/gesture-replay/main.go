// Command gesture-replay plays a TOML gesture script against the refresh
// core and prints the state after every step.
package main

import (
	"flag"
	"fmt"
	"os"

	"pullrefresh/internal/logging"
	"pullrefresh/internal/replay"
	"pullrefresh/ui/console"

	"github.com/charmbracelet/log"
)

func main() {
	scriptPath := flag.String("script", "", "path to the TOML gesture script")
	verbose := flag.Bool("v", false, "log state transitions to stderr")
	flag.Parse()

	if *scriptPath == "" {
		fmt.Fprintln(os.Stderr, "usage: gesture-replay -script path/to/script.toml [-v]")
		os.Exit(2)
	}

	script, err := replay.Load(*scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var logger *log.Logger
	if *verbose {
		logger = logging.New(os.Stderr, log.DebugLevel).WithPrefix("refresh")
	}

	console.PrintHeader(os.Stdout, script)
	final, err := replay.Run(script, logger, func(r replay.Result) {
		console.PrintStep(os.Stdout, r)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	console.PrintSummary(os.Stdout, final)
}
