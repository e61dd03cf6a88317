package compiler

import (
	"os"
	"path/filepath"
)

// WriteFiles creates outputDir if needed and writes each generated file
// into it. It only ever runs after every earlier stage has succeeded, so a
// failing pipeline never leaves partial output on disk.
func WriteFiles(outputDir string, files []GeneratedFile) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return &IOError{Op: "create output directory " + outputDir, Err: err}
	}
	for _, f := range files {
		path := filepath.Join(outputDir, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return &IOError{Op: "write " + path, Err: err}
		}
	}
	return nil
}
