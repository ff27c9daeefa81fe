// Package main is the entry point for the gantt CLI.
package main

import (
	"fmt"
	"os"

	"github.com/runoshun/gantt/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// The container is built from --config and --tasks once flags are parsed.
	rootCmd := cli.NewRootCommand(nil, version)
	return rootCmd.Execute()
}
