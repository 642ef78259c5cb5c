// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/firepath-foundation/firepath"
)

func runCheck(args []string) error {
	flags := pflag.NewFlagSet("check", pflag.ContinueOnError)
	wantKind := flags.String("type", "", "expected kind (document-name, collection-name, root-document-name, database-name, document-path, collection-path); empty accepts any")
	listFile := flags.String("file", "", "YAML file containing a list of names to check, in addition to arguments")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: firepath check [flags] [name...]\n\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}

	names := flags.Args()
	if *listFile != "" {
		fromFile, err := readNameList(*listFile)
		if err != nil {
			return err
		}
		names = append(names, fromFile...)
	}
	if len(names) == 0 {
		return fmt.Errorf("no names to check: pass arguments or --file")
	}

	failures := 0
	for _, input := range names {
		if err := checkName(input, *wantKind); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", input, err)
			failures++
			continue
		}
		fmt.Printf("%s: ok\n", input)
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d names invalid", failures, len(names))
	}
	return nil
}

// checkName validates input against wantKind. An empty wantKind
// accepts any of the recognized kinds.
func checkName(input, wantKind string) error {
	var err error
	switch wantKind {
	case "":
		_, err = classify(input)
	case kindDocumentName:
		_, err = firepath.ParseDocumentName(input)
	case kindCollectionName:
		_, err = firepath.ParseCollectionName(input)
	case kindRootDocumentName:
		_, err = firepath.ParseRootDocumentName(input)
	case kindDatabaseName:
		_, err = firepath.ParseDatabaseName(input)
	case kindDocumentPath:
		_, err = firepath.ParseDocumentPath(input)
	case kindCollectionPath:
		_, err = firepath.ParseCollectionPath(input)
	default:
		return fmt.Errorf("unknown type %q", wantKind)
	}
	return err
}

// readNameList loads a YAML sequence of strings from path.
func readNameList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading name list: %w", err)
	}
	var names []string
	if err := yaml.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("parsing name list %s: %w", path, err)
	}
	return names, nil
}
