package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vic/lazylam/pkg/harness"
)

func main() {
	baseDir := "testdata"
	if len(os.Args) > 1 {
		baseDir = os.Args[1]
	}

	suite := harness.DefaultSuite()
	path := filepath.Join(baseDir, suite.Name+".yaml")
	if err := harness.WriteSuite(suite, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing suite: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d cases in %s\n", len(suite.Cases), path)
}
