// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

func runParent(args []string) error {
	flags := pflag.NewFlagSet("parent", pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: firepath parent <name>...\n\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		return fmt.Errorf("at least one name required")
	}

	for _, input := range flags.Args() {
		parent, err := parentOf(input)
		if err != nil {
			return fmt.Errorf("%q: %w", input, err)
		}
		fmt.Println(parent)
	}
	return nil
}

// parentOf returns the canonical string of the parent of input, for
// any kind that has one.
func parentOf(input string) (string, error) {
	result, err := classify(input)
	if err != nil {
		return "", err
	}
	if result.Parent == "" {
		return "", fmt.Errorf("%s has no parent", result.Kind)
	}
	return result.Parent, nil
}
