// Package fs writes rendered reports to the local filesystem.
package fs

import (
	"os"
	"path/filepath"

	"github.com/mjarosz/relwatch"
)

// Ensure Writer implements relwatch.OutputWriter at compile time.
var _ relwatch.OutputWriter = (*Writer)(nil)

// Writer persists rendered report output as UTF-8 files.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteOutput writes content to path, creating parent directories as
// needed.
func (w *Writer) WriteOutput(path string, content string) error {
	if path == "" {
		return relwatch.Errorf(relwatch.EINVALID, "output path required")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, []byte(content), 0644)
}
