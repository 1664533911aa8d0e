package exporter

import (
	"fmt"
	"strconv"

	"ventascli/internal/analysis"
)

// TableExporter writes one CSV per analysis table. paretoDetailN caps
// the rows written to the Pareto detail files; zero means all rows.
type TableExporter struct {
	writer        *CSVWriter
	paretoDetailN int
}

// NewTableExporter creates a table exporter on top of a CSV writer.
func NewTableExporter(writer *CSVWriter, paretoDetailN int) *TableExporter {
	return &TableExporter{writer: writer, paretoDetailN: paretoDetailN}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ExportResult writes every table of the result under dir, one file per
// table. File names stay stable across runs so downstream spreadsheets
// can refresh in place.
func (e *TableExporter) ExportResult(res *analysis.Result, dir string) error {
	exports := []struct {
		file    string
		headers []string
		records [][]string
	}{
		{"categorias.csv", categoryHeaders, categoryRecords(res.Categories)},
		{"ventas_mensuales.csv", monthHeaders, monthRecords(res.Months)},
		{"crecimiento_mensual.csv", growthHeaders, growthRecords(res.Growth)},
		{"pareto_facturacion.csv", paretoHeaders, paretoRecords(res.ParetoRevenue, e.paretoDetailN)},
		{"pareto_peso.csv", paretoHeaders, paretoRecords(res.ParetoWeight, e.paretoDetailN)},
		{"pareto_cantidad.csv", paretoHeaders, paretoRecords(res.ParetoQuantity, e.paretoDetailN)},
		{"matriz_decision.csv", priorityHeaders, priorityRecords(res.Priority)},
		{"segmentacion_bcg.csv", bcgHeaders, bcgRecords(res.BCG)},
		{"top_cantidad.csv", productHeaders, productRecords(res.TopQuantity)},
		{"top_facturacion.csv", productHeaders, productRecords(res.TopRevenue)},
		{"precio_por_kg.csv", productHeaders, productRecords(res.TopPricePerKg)},
	}

	for _, export := range exports {
		path := fmt.Sprintf("%s/%s", dir, export.file)
		err := e.writer.WriteCSV(path, WriteOptions{
			Headers:   export.headers,
			Records:   export.records,
			BOMPrefix: true,
		})
		if err != nil {
			return fmt.Errorf("export %s: %w", export.file, err)
		}
	}

	return nil
}

var categoryHeaders = []string{"categoria", "facturacion", "cantidad", "peso_total", "ordenes", "porcentaje"}

func categoryRecords(rows []analysis.CategoryRow) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Category, num(r.InvoicedAmount), num(r.Quantity),
			num(r.TotalWeight), strconv.Itoa(r.Orders), num(r.SharePercent),
		})
	}
	return records
}

var monthHeaders = []string{"mes", "facturacion", "cantidad", "peso_total", "ordenes"}

func monthRecords(rows []analysis.MonthRow) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Month, num(r.InvoicedAmount), num(r.Quantity),
			num(r.TotalWeight), strconv.Itoa(r.Orders),
		})
	}
	return records
}

var growthHeaders = []string{"mes", "facturacion", "crecimiento_pct", "diferencia"}

func growthRecords(rows []analysis.GrowthRow) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Month, num(r.InvoicedAmount), num(r.GrowthPercent), num(r.Difference),
		})
	}
	return records
}

var paretoHeaders = []string{"codigo", "nombre", "valor", "acumulado", "pct_acumulado", "pct_individual"}

func paretoRecords(table analysis.ParetoTable, limit int) [][]string {
	rows := table.Rows
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Code, r.Name, num(r.Value), num(r.Cumulative),
			num(r.CumulativePercent), num(r.IndividualPercent),
		})
	}
	return records
}

var priorityHeaders = []string{
	"codigo", "nombre", "cantidad", "facturacion", "peso_total",
	"precio_por_kg", "eficiencia_facturacion", "eficiencia_mano_obra",
	"indice", "prioridad", "recomendacion",
}

func priorityRecords(rows []analysis.PriorityRow) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Code, r.Name, num(r.Quantity), num(r.InvoicedAmount), num(r.TotalWeight),
			num(r.PricePerKg), num(r.RevenueEfficiency), num(r.LaborEfficiency),
			num(r.Index), r.Tier, r.Recommendation,
		})
	}
	return records
}

var bcgHeaders = []string{"codigo", "nombre", "peso_total", "facturacion", "cantidad", "precio_por_kg", "segmento"}

func bcgRecords(rows []analysis.BCGRow) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Code, r.Name, num(r.TotalWeight), num(r.InvoicedAmount),
			num(r.Quantity), num(r.PricePerKg), r.Segment,
		})
	}
	return records
}

var productHeaders = []string{"codigo", "nombre", "cantidad", "peso_total", "facturacion", "precio_por_kg"}

func productRecords(rows []analysis.ProductAggregate) [][]string {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Code, r.Name, num(r.Quantity), num(r.TotalWeight),
			num(r.InvoicedAmount), num(r.PricePerKg()),
		})
	}
	return records
}
