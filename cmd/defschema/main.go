package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"go-tower-siege/internal/defs"
)

func main() {
	var outPath string
	var check string
	flag.StringVar(&outPath, "out", "", "path to write the JSON schema")
	flag.StringVar(&check, "check", "", "optional definitions directory to validate before writing")
	flag.Parse()

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "--out is required")
		os.Exit(1)
	}

	if check != "" {
		if _, err := defs.LoadDir(check); err != nil {
			fmt.Fprintf(os.Stderr, "definitions in %s are invalid: %v\n", check, err)
			os.Exit(1)
		}
	}

	if err := writeSchema(outPath, defs.Schema()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write schema: %v\n", err)
		os.Exit(1)
	}
}

func writeSchema(outPath string, schema *jsonschema.Schema) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}
	return os.Rename(tmpPath, outPath)
}
