package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Paths resolves the directories the pipeline reads from and writes to.
// All members are absolute once Resolve has run.
type Paths struct {
	InputDir  string
	OutputDir string
	LogsDir   string
}

// ResolvePaths builds a Paths from configuration, making relative
// directories absolute against the current working directory.
func ResolvePaths(cfg PathsConfig) (*Paths, error) {
	base, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}

	abs := func(dir string) string {
		if filepath.IsAbs(dir) {
			return dir
		}
		return filepath.Join(base, dir)
	}

	return &Paths{
		InputDir:  abs(cfg.InputDir),
		OutputDir: abs(cfg.OutputDir),
		LogsDir:   abs(cfg.LogsDir),
	}, nil
}

// EnsureDirectories creates all required directories if missing.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.InputDir, p.OutputDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetLogPath returns the path for a log file inside the logs directory.
func (p *Paths) GetLogPath(name string) string {
	return filepath.Join(p.LogsDir, name)
}

// ReportPath returns the output path for the report generated from the
// given input file, e.g. ventas.xlsx -> reporte_ventas.xlsx.
func (p *Paths) ReportPath(inputFile string) string {
	base := filepath.Base(inputFile)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(p.OutputDir, fmt.Sprintf("reporte_%s.xlsx", name))
}
