// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

// Command firepath inspects and validates hierarchical document
// database resource names from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/firepath-foundation/firepath/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		printUsage()
		return fmt.Errorf("subcommand required")
	}

	subcommand := os.Args[1]
	switch subcommand {
	case "inspect":
		return runInspect(os.Args[2:])
	case "check":
		return runCheck(os.Args[2:])
	case "parent":
		return runParent(os.Args[2:])
	case "version", "--version":
		fmt.Printf("firepath %s\n", version.Info())
		return nil
	case "-h", "--help", "help":
		printUsage()
		return nil
	default:
		printUsage()
		return fmt.Errorf("unknown subcommand: %q", subcommand)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: firepath <subcommand> [flags]

Subcommands:
  inspect     Classify names and print their components
  check       Validate names against an expected kind
  parent      Print the parent of each name
  version     Print version information

Run 'firepath <subcommand> --help' for subcommand flags.
`)
}
