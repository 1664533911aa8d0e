package exporter

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventascli/internal/analysis"
	"ventascli/internal/config"
	"ventascli/internal/dataset"
)

func sampleResult(t *testing.T) *analysis.Result {
	t.Helper()

	mk := func(v float64) *float64 { return &v }
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	ds := &dataset.Dataset{
		Client: "Cliente Prueba",
		Rows: []dataset.Row{
			{
				OrderID:        "OV-1",
				ProductCode:    "A",
				ProductName:    "Pieza A",
				Category:       "Fundición",
				Date:           &date,
				MonthKey:       "2024-01",
				Quantity:       mk(2),
				TotalWeight:    mk(10),
				UnitPrice:      mk(5),
				InvoicedUnits:  mk(2),
				InvoicedAmount: mk(10),
			},
		},
	}

	result, err := analysis.NewAnalyzer(ds, 10, nil).Run(context.Background())
	require.NoError(t, err)
	return result
}

func TestCSVWriterWriteCSV(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(&config.Paths{OutputDir: dir}, nil)

	err := writer.WriteCSV("sub/out.csv", WriteOptions{
		Headers:   []string{"a", "b"},
		Records:   [][]string{{"1", "2"}, {"3", "4"}},
		BOMPrefix: true,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "sub", "out.csv"))
	require.NoError(t, err)

	text := string(content)
	assert.True(t, strings.HasPrefix(text, "\xef\xbb\xbf"), "expected UTF-8 BOM")
	assert.Contains(t, text, "a,b")
	assert.Contains(t, text, "3,4")
}

func TestCSVWriterAppend(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(&config.Paths{OutputDir: dir}, nil)

	require.NoError(t, writer.WriteCSV("out.csv", WriteOptions{
		Headers: []string{"a"},
		Records: [][]string{{"1"}},
	}))
	require.NoError(t, writer.WriteCSV("out.csv", WriteOptions{
		Records: [][]string{{"2"}},
		Append:  true,
	}))

	content, err := os.ReadFile(filepath.Join(dir, "out.csv"))
	require.NoError(t, err)
	assert.Equal(t, "a\n1\n2\n", string(content))
}

func TestTableExporterExportResult(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(&config.Paths{OutputDir: dir}, nil)
	exporter := NewTableExporter(writer, 50)

	require.NoError(t, exporter.ExportResult(sampleResult(t), "tablas"))

	entries, err := os.ReadDir(filepath.Join(dir, "tablas"))
	require.NoError(t, err)
	require.Len(t, entries, 11)

	content, err := os.ReadFile(filepath.Join(dir, "tablas", "pareto_facturacion.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Pieza A")
}

func TestTableExporterParetoDetailLimit(t *testing.T) {
	dir := t.TempDir()
	writer := NewCSVWriter(&config.Paths{OutputDir: dir}, nil)
	exporter := NewTableExporter(writer, 1)

	mk := func(v float64) *float64 { return &v }
	ds := &dataset.Dataset{
		Client: "Cliente Prueba",
		Rows: []dataset.Row{
			{OrderID: "OV-1", ProductCode: "A", ProductName: "Pieza A", Quantity: mk(1), UnitPrice: mk(5), InvoicedUnits: mk(1), InvoicedAmount: mk(5)},
			{OrderID: "OV-2", ProductCode: "B", ProductName: "Pieza B", Quantity: mk(1), UnitPrice: mk(50), InvoicedUnits: mk(1), InvoicedAmount: mk(50)},
		},
	}
	result, err := analysis.NewAnalyzer(ds, 10, nil).Run(context.Background())
	require.NoError(t, err)

	require.NoError(t, exporter.ExportResult(result, "tablas"))

	content, err := os.ReadFile(filepath.Join(dir, "tablas", "pareto_facturacion.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Pieza B")
	assert.NotContains(t, string(content), "Pieza A")
}

func TestJSONExporterExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "resultado.json")
	result := sampleResult(t)

	require.NoError(t, NewJSONExporter(nil).Export(result, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded analysis.Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, result.RunID, decoded.RunID)
	assert.Equal(t, "Cliente Prueba", decoded.Client)
}
