// Copyright 2026 The Firepath Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/firepath-foundation/firepath"
)

// Kind labels reported by inspect and accepted by check --type.
const (
	kindDocumentName     = "document-name"
	kindCollectionName   = "collection-name"
	kindRootDocumentName = "root-document-name"
	kindDatabaseName     = "database-name"
	kindDocumentPath     = "document-path"
	kindCollectionPath   = "collection-path"
)

// inspection is the parsed view of a single input, shared by the
// table, JSON, and YAML renderings.
type inspection struct {
	Input        string `json:"input"                   yaml:"input"`
	Kind         string `json:"kind"                    yaml:"kind"`
	ProjectID    string `json:"project_id,omitempty"    yaml:"project_id,omitempty"`
	DatabaseID   string `json:"database_id,omitempty"   yaml:"database_id,omitempty"`
	CollectionID string `json:"collection_id,omitempty" yaml:"collection_id,omitempty"`
	DocumentID   string `json:"document_id,omitempty"   yaml:"document_id,omitempty"`
	Parent       string `json:"parent,omitempty"        yaml:"parent,omitempty"`
}

func runInspect(args []string) error {
	flags := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
	outputJSON := flags.Bool("json", false, "output as JSON")
	outputYAML := flags.Bool("yaml", false, "output as YAML")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: firepath inspect [flags] <name>...\n\n")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *outputJSON && *outputYAML {
		return fmt.Errorf("--json and --yaml are mutually exclusive")
	}
	if flags.NArg() == 0 {
		return fmt.Errorf("at least one name required")
	}

	inspections := make([]inspection, 0, flags.NArg())
	for _, input := range flags.Args() {
		result, err := classify(input)
		if err != nil {
			return fmt.Errorf("%q: %w", input, err)
		}
		inspections = append(inspections, result)
	}

	switch {
	case *outputJSON:
		return writeJSON(os.Stdout, inspections)
	case *outputYAML:
		return yaml.NewEncoder(os.Stdout).Encode(inspections)
	default:
		return writeInspectionTable(os.Stdout, inspections)
	}
}

// classify parses input as the most fully qualified form it satisfies.
// Fully qualified names are tried before relative paths so that a
// rooted name is never misreported as a path.
func classify(input string) (inspection, error) {
	if name, err := firepath.ParseDocumentName(input); err == nil {
		return inspection{
			Input:        input,
			Kind:         kindDocumentName,
			ProjectID:    name.DatabaseName().ProjectID().String(),
			DatabaseID:   name.DatabaseName().DatabaseID().String(),
			CollectionID: name.CollectionID().String(),
			DocumentID:   name.DocumentID().String(),
			Parent:       name.Parent().String(),
		}, nil
	}
	if name, err := firepath.ParseCollectionName(input); err == nil {
		result := inspection{
			Input:        input,
			Kind:         kindCollectionName,
			ProjectID:    name.DatabaseName().ProjectID().String(),
			DatabaseID:   name.DatabaseName().DatabaseID().String(),
			CollectionID: name.CollectionID().String(),
		}
		if parent, ok := name.Parent(); ok {
			result.Parent = parent.String()
		} else {
			result.Parent = name.RootDocumentName().String()
		}
		return result, nil
	}
	if name, err := firepath.ParseRootDocumentName(input); err == nil {
		return inspection{
			Input:      input,
			Kind:       kindRootDocumentName,
			ProjectID:  name.DatabaseName().ProjectID().String(),
			DatabaseID: name.DatabaseName().DatabaseID().String(),
			Parent:     name.DatabaseName().String(),
		}, nil
	}
	if name, err := firepath.ParseDatabaseName(input); err == nil {
		return inspection{
			Input:      input,
			Kind:       kindDatabaseName,
			ProjectID:  name.ProjectID().String(),
			DatabaseID: name.DatabaseID().String(),
		}, nil
	}
	if path, err := firepath.ParseDocumentPath(input); err == nil {
		return inspection{
			Input:        input,
			Kind:         kindDocumentPath,
			CollectionID: path.CollectionID().String(),
			DocumentID:   path.DocumentID().String(),
			Parent:       path.Parent().String(),
		}, nil
	}
	if path, err := firepath.ParseCollectionPath(input); err == nil {
		result := inspection{
			Input:        input,
			Kind:         kindCollectionPath,
			CollectionID: path.CollectionID().String(),
		}
		if parent, ok := path.Parent(); ok {
			result.Parent = parent.String()
		}
		return result, nil
	}
	return inspection{}, fmt.Errorf("not a resource name or relative path")
}

func writeInspectionTable(w io.Writer, inspections []inspection) error {
	tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "KIND\tPROJECT\tDATABASE\tCOLLECTION\tDOCUMENT\n")
	for _, result := range inspections {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			result.Kind,
			orDash(result.ProjectID), orDash(result.DatabaseID),
			orDash(result.CollectionID), orDash(result.DocumentID))
	}
	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
