package exporter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"ventascli/internal/analysis"
)

// JSONExporter dumps the full analysis result as one JSON document.
type JSONExporter struct {
	logger *slog.Logger
}

// NewJSONExporter creates a JSON exporter. A nil logger falls back to
// the default.
func NewJSONExporter(logger *slog.Logger) *JSONExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONExporter{logger: logger.With(slog.String("component", "exporter"))}
}

// Export writes the result to path, creating parent directories as
// needed.
func (e *JSONExporter) Export(res *analysis.Result, path string) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	e.logger.Info("result exported",
		slog.String("run_id", res.RunID),
		slog.String("path", path))

	return nil
}
