package report

import (
	"fmt"

	"ventascli/internal/analysis"
)

func (b *builder) paretoSheet() error {
	if err := b.newSheet(sheetPareto, map[string]float64{"A:F": 18}); err != nil {
		return err
	}

	row, err := b.title(sheetPareto, 6, "ANÁLISIS DE PARETO (LEY 80/20)", "")
	if err != nil {
		return err
	}

	table := b.res.ParetoRevenue

	if err := b.sectionHeader(sheetPareto, row, 6, "PRODUCTOS VITALES (80% de la facturación)"); err != nil {
		return err
	}
	row++
	if err := b.writeCells(sheetPareto, row,
		[]any{"Cantidad de Productos", table.VitalCount, fmt.Sprintf("%.2f%% del total", table.VitalPercent)},
		[]int{b.st.normal, b.st.integer, b.st.normal}); err != nil {
		return err
	}
	row++
	if err := b.writeCells(sheetPareto, row,
		[]any{"Facturación", table.VitalValue, ""},
		[]int{b.st.normal, b.st.currency, b.st.normal}); err != nil {
		return err
	}
	row += 2

	if err := b.sectionHeader(sheetPareto, row, 6, "PRODUCTOS TRIVIALES (20% restante)"); err != nil {
		return err
	}
	row++
	if err := b.writeCells(sheetPareto, row,
		[]any{"Cantidad de Productos", table.TrivialCount, fmt.Sprintf("%.2f%% del total", table.TrivialPercent)},
		[]int{b.st.normal, b.st.integer, b.st.normal}); err != nil {
		return err
	}
	row++
	if err := b.writeCells(sheetPareto, row,
		[]any{"Facturación", table.TrivialValue, ""},
		[]int{b.st.normal, b.st.currency, b.st.normal}); err != nil {
		return err
	}
	row += 2

	interpretation := fmt.Sprintf(
		"El %.2f%% de tus productos (%d productos) genera el 80%% de tu facturación. Enfócate en estos productos vitales.",
		table.VitalPercent, table.VitalCount)
	if err := b.f.MergeCell(sheetPareto, cellName(1, row), cellName(6, row)); err != nil {
		return err
	}
	if err := b.f.SetCellValue(sheetPareto, cellName(1, row), interpretation); err != nil {
		return err
	}
	if err := b.f.SetCellStyle(sheetPareto, cellName(1, row), cellName(6, row), b.st.wrap); err != nil {
		return err
	}
	row += 2

	return b.paretoTable(sheetPareto, row, "Facturación", table, b.st.currency)
}

func (b *builder) paretoWeightSheet() error {
	if err := b.newSheet(sheetParetoWeight, map[string]float64{"A:F": 18}); err != nil {
		return err
	}

	table := b.res.ParetoWeight
	row, err := b.title(sheetParetoWeight, 6,
		"PARETO POR PESO - Capacidad de Fundición (kg)",
		fmt.Sprintf("%d productos (%.1f%%) consumen el 80%% del peso total",
			table.VitalCount, table.VitalPercent))
	if err != nil {
		return err
	}

	return b.paretoTable(sheetParetoWeight, row, "Peso Total (kg)", table, b.st.number)
}

func (b *builder) paretoQuantitySheet() error {
	if err := b.newSheet(sheetParetoQuantity, map[string]float64{"A:F": 18}); err != nil {
		return err
	}

	table := b.res.ParetoQuantity
	row, err := b.title(sheetParetoQuantity, 6,
		"PARETO POR CANTIDAD - Mano de Obra (piezas)",
		fmt.Sprintf("%d productos (%.1f%%) representan el 80%% de las piezas producidas",
			table.VitalCount, table.VitalPercent))
	if err != nil {
		return err
	}

	return b.paretoTable(sheetParetoQuantity, row, "Cantidad", table, b.st.integer)
}

// paretoTable writes the ordered concentration table plus the column and
// cumulative-percent combo chart.
func (b *builder) paretoTable(sheet string, row int, valueHeader string, table analysis.ParetoTable, valueStyle int) error {
	headers := []string{"Código", "Nombre", valueHeader, "Acumulado", "% Acumulado", "% Individual"}
	row, err := b.writeHeaders(sheet, row, headers)
	if err != nil {
		return err
	}

	firstDataRow := row
	for _, p := range table.Rows {
		values := []any{p.Code, p.Name, p.Value, p.Cumulative, p.CumulativePercent, p.IndividualPercent}
		cellStyles := []int{b.st.normal, b.st.normal, valueStyle, valueStyle, b.st.number, b.st.number}
		if err := b.writeCells(sheet, row, values, cellStyles); err != nil {
			return err
		}
		row++
	}

	if len(table.Rows) == 0 {
		return nil
	}

	lastChartRow := firstDataRow + len(table.Rows) - 1
	if limit := firstDataRow + chartRowLimit - 1; lastChartRow > limit {
		lastChartRow = limit
	}

	return b.addParetoChart(sheet, cellName(8, firstDataRow),
		fmt.Sprintf("Diagrama de Pareto - %s", valueHeader),
		valueHeader,
		absRange(sheet, 2, firstDataRow, lastChartRow),
		absRange(sheet, 3, firstDataRow, lastChartRow),
		absRange(sheet, 5, firstDataRow, lastChartRow))
}
