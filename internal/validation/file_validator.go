// Package validation checks input files before the pipeline reads
// them, so schema and parsing failures surface with clear messages
// instead of opaque reader errors.
package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"ventascli/internal/errors"
)

// maxInputSize caps input files at 100 MB. Exports beyond that are
// almost certainly not sales data.
const maxInputSize = 100 << 20

// FileValidator validates sales export files.
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a validator. A nil logger falls back to the
// default.
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{logger: logger.With(slog.String("component", "file_validator"))}
}

// ValidateInputFile checks that path exists, is a regular file with a
// supported extension (.xlsx or .csv) and is neither empty nor
// implausibly large.
func (v *FileValidator) ValidateInputFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewValidationError(fmt.Sprintf("input file does not exist: %s", path)).
				WithContext("path", path)
		}
		return errors.NewStorageError("failed to stat input file", err).WithContext("path", path)
	}

	if info.IsDir() {
		return errors.NewValidationError(fmt.Sprintf("input path is a directory: %s", path)).
			WithContext("path", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".xlsx" && ext != ".csv" {
		return errors.NewValidationError(fmt.Sprintf("unsupported file type %q, expected .xlsx or .csv", ext)).
			WithContext("path", path)
	}

	if info.Size() == 0 {
		return errors.NewValidationError(fmt.Sprintf("input file is empty: %s", path)).
			WithContext("path", path)
	}
	if info.Size() > maxInputSize {
		return errors.NewValidationError(fmt.Sprintf("input file exceeds %d MB: %s", maxInputSize>>20, path)).
			WithContext("path", path).
			WithContext("size", info.Size())
	}

	v.logger.Debug("input file validated",
		slog.String("path", path),
		slog.Int64("size", info.Size()))

	return nil
}

// ValidateOutputDirectory checks that dir exists and is writable by
// creating and removing a probe file.
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.NewValidationError(fmt.Sprintf("output directory does not exist: %s", dir)).
			WithContext("dir", dir)
	}
	if !info.IsDir() {
		return errors.NewValidationError(fmt.Sprintf("output path is not a directory: %s", dir)).
			WithContext("dir", dir)
	}

	probe := filepath.Join(dir, ".write_probe")
	if err := os.WriteFile(probe, nil, 0644); err != nil {
		return errors.NewValidationError(fmt.Sprintf("output directory is not writable: %s", dir)).
			WithContext("dir", dir)
	}
	os.Remove(probe)

	return nil
}
