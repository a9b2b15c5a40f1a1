package main

import (
	"fmt"
	"os"
	"time"

	"github.com/vic/lazylam/pkg/harness"
)

func main() {
	suite := harness.DefaultSuite()

	if len(os.Args) > 1 {
		var err error
		suite, err = harness.LoadSuite(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading suite: %v\n", err)
			os.Exit(1)
		}
	}

	r := harness.NewReporter(os.Stdout, os.Stderr)

	start := time.Now()
	stats := harness.Run(suite, r)
	elapsed := time.Since(start)

	seconds := elapsed.Seconds()

	fmt.Fprintf(os.Stderr, "\nSuite %q: %d passed, %d failed\n", suite.Name, r.Passed, r.Failed)
	fmt.Fprintf(os.Stderr, "Time: %v\n", elapsed)
	fmt.Fprintf(os.Stderr, "Total Steps: %d", stats.Steps)
	if seconds > 0 {
		fmt.Fprintf(os.Stderr, " (%.2f steps/sec)", float64(stats.Steps)/seconds)
	}
	fmt.Fprintf(os.Stderr, "\n")

	fmt.Fprintf(os.Stderr, "\nBreakdown:\n")
	fmt.Fprintf(os.Stderr, "  Lookups:      %10d\n", stats.Lookups)
	fmt.Fprintf(os.Stderr, "  Closures:     %10d\n", stats.Closures)
	fmt.Fprintf(os.Stderr, "  Applications: %10d\n", stats.Applications)
	if stats.MemoHits > 0 {
		fmt.Fprintf(os.Stderr, "  Memo Hits:    %10d\n", stats.MemoHits)
	}

	if !r.Ok() {
		os.Exit(1)
	}
}
