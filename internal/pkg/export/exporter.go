// Package export writes the finished run aggregate to a JSON file.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oddsweep/oddsweep/internal/pkg/models"
)

// Export is the on-disk run document.
type Export struct {
	RunID       string          `json:"run_id"`
	Timestamp   time.Time       `json:"timestamp"`
	TotalEvents int             `json:"total_events"`
	Events      []*models.Event `json:"events"`
}

type Exporter struct {
	dir string
}

// NewExporter writes runs under dir, one file per run.
func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// WriteRun serializes the aggregate to <dir>/run_<id>.json and returns
// the path.
func (e *Exporter) WriteRun(runID string, events []*models.Event) (string, error) {
	doc := Export{
		RunID:       runID,
		Timestamp:   time.Now().UTC(),
		TotalEvents: len(events),
		Events:      events,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal run %s: %w", runID, err)
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}
	path := filepath.Join(e.dir, fmt.Sprintf("run_%s.json", runID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}
