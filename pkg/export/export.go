// Package export writes generated briefings to markdown files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"morning-brief/pkg/domain"
)

// Exporter saves summaries as markdown files in a fixed directory
type Exporter struct {
	dir string
}

// NewExporter creates an exporter writing into the given directory
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// Filename builds the deterministic export name from the summary date and
// the first characters of its id
func Filename(summary domain.Summary) string {
	date := strings.ReplaceAll(summary.Date, "/", "-")
	id := summary.ID
	if len(id) > 6 {
		id = id[:6]
	}
	return fmt.Sprintf("MorningBrief_%s_%s.md", date, id)
}

// Save writes the summary content to its export file and returns the path
func (e *Exporter) Save(summary domain.Summary) (string, error) {
	if err := os.MkdirAll(e.dir, 0o750); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(e.dir, Filename(summary))
	if err := os.WriteFile(path, []byte(summary.Content), 0o600); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return path, nil
}
