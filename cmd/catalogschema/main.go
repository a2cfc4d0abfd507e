// catalogschema writes the JSON schema of the content catalog file.
//
// Usage:
//
//	go run ./cmd/catalogschema -out schemas/catalog.schema.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/udisondev/warband/internal/data"
)

func main() {
	out := flag.String("out", "schemas/catalog.schema.json", "output path")
	flag.Parse()

	if err := write(*out); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
	slog.Info("catalog schema written", "path", *out)
}

func write(path string) error {
	payload, err := json.MarshalIndent(data.Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding schema: %w", err)
	}
	payload = append(payload, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, payload, 0o644); err != nil {
		return fmt.Errorf("writing schema: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing schema: %w", err)
	}
	return nil
}
