package services

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"ventascli/internal/analysis"
	"ventascli/internal/config"
	"ventascli/internal/dataset"
	"ventascli/internal/errors"
	"ventascli/internal/exporter"
	"ventascli/internal/report"
	"ventascli/internal/validation"
)

// AnalysisService runs the analysis pipeline and keeps the most recent
// snapshot for query endpoints.
type AnalysisService struct {
	cfg    *config.Config
	paths  *config.Paths
	logger *slog.Logger

	validator *validation.FileValidator
	renderer  *report.Renderer
	tables    *exporter.TableExporter
	json      *exporter.JSONExporter

	mu       sync.RWMutex
	ds       *dataset.Dataset
	analyzer *analysis.Analyzer
	result   *analysis.Result
}

// NewAnalysisService wires the pipeline dependencies.
func NewAnalysisService(cfg *config.Config, paths *config.Paths, logger *slog.Logger) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("service", "analysis"))

	writer := exporter.NewCSVWriter(paths, logger)
	return &AnalysisService{
		cfg:       cfg,
		paths:     paths,
		logger:    logger,
		validator: validation.NewFileValidator(logger),
		renderer:  report.NewRenderer(logger),
		tables:    exporter.NewTableExporter(writer, cfg.Analysis.ParetoDetailN),
		json:      exporter.NewJSONExporter(logger),
	}
}

// AnalyzeFile runs read, normalize and analyze over one input file and
// stores the snapshot. Schema and empty-dataset failures abort the run.
func (s *AnalysisService) AnalyzeFile(ctx context.Context, path string) (*analysis.Result, error) {
	s.logger.InfoContext(ctx, "analyzing input file", slog.String("path", path))

	if err := s.validator.ValidateInputFile(path); err != nil {
		return nil, err
	}

	header, cells, err := dataset.ReadFile(path)
	if err != nil {
		return nil, err
	}

	ds, err := dataset.NewNormalizer(s.logger).Normalize(header, cells)
	if err != nil {
		return nil, err
	}

	analyzer := analysis.NewAnalyzer(ds, s.cfg.Analysis.TopN, s.logger)
	result, err := analyzer.Run(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.ds = ds
	s.analyzer = analyzer
	s.result = result
	s.mu.Unlock()

	return result, nil
}

// GenerateReport runs the full pipeline for one input file and writes
// the Excel report next to the configured output directory. Returns the
// report path.
func (s *AnalysisService) GenerateReport(ctx context.Context, inputPath string) (string, error) {
	result, err := s.AnalyzeFile(ctx, inputPath)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	ds := s.ds
	s.mu.RUnlock()

	outPath := s.paths.ReportPath(inputPath)
	if err := s.renderer.Render(ctx, result, ds, outPath); err != nil {
		return "", err
	}

	base := baseName(inputPath)
	if err := s.tables.ExportResult(result, filepath.Join("tablas", base)); err != nil {
		return "", err
	}
	if err := s.json.Export(result, filepath.Join(s.paths.OutputDir, base+".json")); err != nil {
		return "", err
	}

	return outPath, nil
}

// Result returns the latest analysis snapshot.
func (s *AnalysisService) Result() (*analysis.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.result == nil {
		return nil, errors.NewNotFoundError("no analysis has been run yet")
	}
	return s.result, nil
}

// Top re-ranks the stored products by the given metric.
func (s *AnalysisService) Top(metric analysis.Metric, n int) ([]analysis.ProductAggregate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.analyzer == nil {
		return nil, errors.NewNotFoundError("no analysis has been run yet")
	}
	return s.analyzer.Top(metric, n), nil
}

// TopPricePerKg re-ranks the stored products by revenue density.
func (s *AnalysisService) TopPricePerKg(n int) ([]analysis.ProductAggregate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.analyzer == nil {
		return nil, errors.NewNotFoundError("no analysis has been run yet")
	}
	return s.analyzer.TopPricePerKg(n), nil
}

// Pareto returns the concentration table for one metric from the stored
// snapshot.
func (s *AnalysisService) Pareto(metric analysis.Metric) (analysis.ParetoTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.analyzer == nil {
		return analysis.ParetoTable{}, errors.NewNotFoundError("no analysis has been run yet")
	}
	return s.analyzer.Pareto(metric), nil
}

func baseName(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}
