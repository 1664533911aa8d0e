package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"ventascli/internal/config"
	"ventascli/internal/files"
	"ventascli/internal/infrastructure"
	"ventascli/internal/services"
)

func main() {
	inDir := flag.String("in", "", "input directory with .xlsx/.csv sales exports (defaults to configured input dir)")
	outDir := flag.String("out", "", "output directory for reports (defaults to configured output dir)")
	file := flag.String("file", "", "analyze a single file instead of scanning the input directory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *inDir != "" {
		cfg.Paths.InputDir = *inDir
	}
	if *outDir != "" {
		cfg.Paths.OutputDir = *outDir
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", slog.String("error", err.Error()))
		os.Exit(1)
	}

	paths, err := config.ResolvePaths(cfg.Paths)
	if err != nil {
		logger.Error("Failed to resolve paths", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := paths.EnsureDirectories(); err != nil {
		logger.Error("Failed to create directories", slog.String("error", err.Error()))
		os.Exit(1)
	}

	service := services.NewAnalysisService(cfg, paths, logger)
	ctx := context.Background()

	inputs, err := collectInputFiles(paths.InputDir, *file)
	if err != nil {
		logger.Error("Failed to collect input files", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(inputs) == 0 {
		logger.Error("No input files found", slog.String("dir", paths.InputDir))
		fmt.Fprintf(os.Stderr, "no .xlsx or .csv files found in %s\n", paths.InputDir)
		os.Exit(1)
	}

	logger.Info("Starting batch analysis",
		slog.Int("files", len(inputs)),
		slog.String("input_dir", paths.InputDir),
		slog.String("output_dir", paths.OutputDir))

	failed := 0
	for _, path := range inputs {
		reportPath, err := service.GenerateReport(ctx, path)
		if err != nil {
			failed++
			logger.Error("Analysis failed",
				slog.String("file", filepath.Base(path)),
				slog.String("error", err.Error()))
			fmt.Fprintf(os.Stderr, "FAIL %s: %v\n", filepath.Base(path), err)
			continue
		}
		logger.Info("Report generated",
			slog.String("file", filepath.Base(path)),
			slog.String("report", reportPath))
		fmt.Printf("OK   %s -> %s\n", filepath.Base(path), reportPath)
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d files failed\n", failed, len(inputs))
		os.Exit(1)
	}
}

// collectInputFiles returns the files to analyze. With an explicit file
// argument it resolves that single path; otherwise it scans dir for
// .xlsx and .csv exports.
func collectInputFiles(dir, single string) ([]string, error) {
	if single != "" {
		if !filepath.IsAbs(single) {
			single = filepath.Join(dir, single)
		}
		if _, err := os.Stat(single); err != nil {
			return nil, fmt.Errorf("input file not accessible: %w", err)
		}
		return []string{single}, nil
	}

	found, err := files.NewDiscovery(dir).FindSalesFiles(".")
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(found))
	for i, f := range found {
		paths[i] = f.Path
	}
	return paths, nil
}
