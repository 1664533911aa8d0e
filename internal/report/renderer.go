package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"ventascli/internal/analysis"
	"ventascli/internal/dataset"
	"ventascli/internal/errors"
)

// Sheet names, kept in Spanish so the workbook reads the same as the
// reports the sales team already uses.
const (
	sheetSummary        = "Resumen General"
	sheetDecision       = "Matriz de Decisión"
	sheetBCG            = "Segmentación BCG"
	sheetPareto         = "Ley de Pareto (80-20)"
	sheetProducts       = "Análisis de Productos"
	sheetCategories     = "Análisis de Categorías"
	sheetTemporal       = "Análisis Temporal"
	sheetParetoWeight   = "Pareto por Peso"
	sheetParetoQuantity = "Pareto por Cantidad"
	sheetComparison     = "Peso vs Cantidad"
	sheetWeightDist     = "Distribución por Peso"
	sheetRawData        = "Datos Completos"
)

// chartRowLimit caps how many products feed each chart so the diagrams
// stay readable on large catalogs.
const chartRowLimit = 20

// Renderer writes a full analysis result to an Excel workbook.
type Renderer struct {
	logger *slog.Logger
}

// NewRenderer creates a renderer. A nil logger falls back to the default.
func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger.With(slog.String("component", "report"))}
}

// Render builds the complete workbook for one analysis run and saves it
// to path.
func (r *Renderer) Render(ctx context.Context, res *analysis.Result, ds *dataset.Dataset, path string) error {
	start := time.Now()

	f := excelize.NewFile()
	defer f.Close()

	st, err := buildStyles(f)
	if err != nil {
		return errors.NewStorageError("failed to register workbook styles", err)
	}

	if err := f.SetSheetName("Sheet1", sheetSummary); err != nil {
		return errors.NewStorageError("failed to initialize workbook", err)
	}

	b := &builder{f: f, st: st, res: res, ds: ds}

	steps := []func() error{
		b.summarySheet,
		b.decisionSheet,
		b.bcgSheet,
		b.paretoSheet,
		b.productsSheet,
		b.categoriesSheet,
		b.temporalSheet,
		b.paretoWeightSheet,
		b.paretoQuantitySheet,
		b.comparisonSheet,
		b.weightDistSheet,
		b.rawDataSheet,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return errors.NewStorageError("failed to build report sheet", err)
		}
	}

	f.SetActiveSheet(0)

	if err := f.SaveAs(path); err != nil {
		return errors.NewStorageError("failed to save report", err).WithContext("path", path)
	}

	r.logger.InfoContext(ctx, "report generated",
		slog.String("run_id", res.RunID),
		slog.String("path", path),
		slog.Duration("duration", time.Since(start)))

	return nil
}

// builder carries the workbook state through the per-sheet writers.
type builder struct {
	f   *excelize.File
	st  *styles
	res *analysis.Result
	ds  *dataset.Dataset
}

// cellName converts 1-based coordinates to an A1 reference. Coordinates
// are always generated in range here, so conversion cannot fail.
func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// absRange builds an absolute single-column range reference for chart
// series, quoting the sheet name.
func absRange(sheet string, col, fromRow, toRow int) string {
	letter, _ := excelize.ColumnNumberToName(col)
	return fmt.Sprintf("'%s'!$%s$%d:$%s$%d", sheet, letter, fromRow, letter, toRow)
}

// newSheet creates a sheet and applies the usual column widths.
func (b *builder) newSheet(name string, widths map[string]float64) error {
	if name != sheetSummary {
		if _, err := b.f.NewSheet(name); err != nil {
			return err
		}
	}
	for cols, width := range widths {
		span := strings.SplitN(cols, ":", 2)
		if err := b.f.SetColWidth(name, span[0], span[1], width); err != nil {
			return err
		}
	}
	return nil
}

// title writes a merged title row followed by an optional subtitle row.
// Returns the next free row.
func (b *builder) title(sheet string, span int, titleText, subtitleText string) (int, error) {
	if err := b.f.MergeCell(sheet, cellName(1, 1), cellName(span, 1)); err != nil {
		return 0, err
	}
	if err := b.f.SetCellValue(sheet, "A1", titleText); err != nil {
		return 0, err
	}
	if err := b.f.SetCellStyle(sheet, "A1", cellName(span, 1), b.st.title); err != nil {
		return 0, err
	}

	row := 3
	if subtitleText != "" {
		if err := b.f.MergeCell(sheet, cellName(1, 2), cellName(span, 2)); err != nil {
			return 0, err
		}
		if err := b.f.SetCellValue(sheet, "A2", subtitleText); err != nil {
			return 0, err
		}
		if err := b.f.SetCellStyle(sheet, "A2", cellName(span, 2), b.st.subtitle); err != nil {
			return 0, err
		}
		row = 4
	}
	return row, nil
}

// writeHeaders writes one styled header row and returns the next row.
func (b *builder) writeHeaders(sheet string, row int, headers []string) (int, error) {
	for i, h := range headers {
		if err := b.f.SetCellValue(sheet, cellName(i+1, row), h); err != nil {
			return 0, err
		}
	}
	if err := b.f.SetCellStyle(sheet, cellName(1, row), cellName(len(headers), row), b.st.header); err != nil {
		return 0, err
	}
	return row + 1, nil
}

// writeCells writes one data row, applying the matching style per cell.
func (b *builder) writeCells(sheet string, row int, values []any, cellStyles []int) error {
	for i, v := range values {
		ref := cellName(i+1, row)
		if v != nil {
			if err := b.f.SetCellValue(sheet, ref, v); err != nil {
				return err
			}
		}
		if err := b.f.SetCellStyle(sheet, ref, ref, cellStyles[i]); err != nil {
			return err
		}
	}
	return nil
}

// labelValue writes a label/value pair across columns A and B.
func (b *builder) labelValue(sheet string, row int, label string, value any, valueStyle int) error {
	return b.writeCells(sheet, row, []any{label, value}, []int{b.st.normal, valueStyle})
}

// sectionHeader writes a subtitle band across the first span columns.
func (b *builder) sectionHeader(sheet string, row, span int, text string) error {
	if err := b.f.MergeCell(sheet, cellName(1, row), cellName(span, row)); err != nil {
		return err
	}
	if err := b.f.SetCellValue(sheet, cellName(1, row), text); err != nil {
		return err
	}
	return b.f.SetCellStyle(sheet, cellName(1, row), cellName(span, row), b.st.subtitle)
}
