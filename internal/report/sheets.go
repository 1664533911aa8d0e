package report

import (
	"fmt"

	"ventascli/internal/dataset"
)

func (b *builder) summarySheet() error {
	if err := b.newSheet(sheetSummary, map[string]float64{"A:A": 35, "B:B": 20}); err != nil {
		return err
	}

	row, err := b.title(sheetSummary, 2, fmt.Sprintf("REPORTE DE VENTAS - %s", b.res.Client), "")
	if err != nil {
		return err
	}

	if err := b.labelValue(sheetSummary, row-1, "Generado", b.res.GeneratedAt.Format("2006-01-02 15:04"), b.st.normal); err != nil {
		return err
	}
	row++

	if err := b.sectionHeader(sheetSummary, row, 2, "INDICADORES PRINCIPALES"); err != nil {
		return err
	}
	row++

	s := b.res.Summary
	kpis := []struct {
		label string
		value any
		style int
	}{
		{"Total Facturado", s.TotalInvoiced, b.st.currency},
		{"Total de Órdenes", s.TotalOrders, b.st.integer},
		{"Productos Únicos", s.UniqueProducts, b.st.integer},
		{"Peso Total (kg)", s.TotalWeight, b.st.number},
		{"Cantidad Total", s.TotalQuantity, b.st.integer},
		{"Ticket Promedio por Orden", s.AvgOrderValue, b.st.currency},
		{"Peso Promedio por Orden (kg)", s.AvgOrderWeight, b.st.number},
		{"Precio Promedio por Kg", s.AvgPricePerKg, b.st.currency},
	}
	for _, kpi := range kpis {
		if err := b.labelValue(sheetSummary, row, kpi.label, kpi.value, kpi.style); err != nil {
			return err
		}
		row++
	}

	row += 2
	if err := b.sectionHeader(sheetSummary, row, 2, "FRECUENCIA DE COMPRA"); err != nil {
		return err
	}
	row++

	c := b.res.Cadence
	cadence := []struct {
		label string
		value any
		style int
	}{
		{"Primera Compra", c.FirstOrder, b.st.normal},
		{"Última Compra", c.LastOrder, b.st.normal},
		{"Días Totales de Relación", c.TotalDays, b.st.integer},
		{"Total de Órdenes", c.TotalOrders, b.st.integer},
		{"Días Promedio entre Compras", c.AvgDaysBetween, b.st.number},
		{"Compras Promedio por Mes", c.OrdersPerMonth, b.st.number},
	}
	for _, item := range cadence {
		if err := b.labelValue(sheetSummary, row, item.label, item.value, item.style); err != nil {
			return err
		}
		row++
	}

	return nil
}

func (b *builder) decisionSheet() error {
	widths := map[string]float64{"A:B": 14, "C:J": 15, "K:K": 55}
	if err := b.newSheet(sheetDecision, widths); err != nil {
		return err
	}

	row, err := b.title(sheetDecision, 11,
		"MATRIZ DE DECISIÓN - ÍNDICE GLOBAL DE PRIORIZACIÓN",
		"Índice Global = 60% eficiencia de facturación ($ por kg) + 40% eficiencia de mano de obra (menos piezas)")
	if err != nil {
		return err
	}

	headers := []string{
		"Código", "Nombre", "Cantidad", "Facturación", "Peso Total (kg)",
		"$ por Kg", "Efic. Facturación", "Efic. Mano de Obra", "Índice Global",
		"Prioridad", "Recomendación",
	}
	row, err = b.writeHeaders(sheetDecision, row, headers)
	if err != nil {
		return err
	}

	for _, p := range b.res.Priority {
		cellStyles := []int{
			b.st.normal, b.st.normal, b.st.integer, b.st.currency, b.st.number,
			b.st.currency, b.st.number, b.st.number, b.st.number,
			b.st.tierStyle(p.Tier), b.st.wrap,
		}
		values := []any{
			p.Code, p.Name, p.Quantity, p.InvoicedAmount, p.TotalWeight,
			p.PricePerKg, p.RevenueEfficiency, p.LaborEfficiency, p.Index,
			p.Tier, p.Recommendation,
		}
		if err := b.writeCells(sheetDecision, row, values, cellStyles); err != nil {
			return err
		}
		row++
	}

	return nil
}

func (b *builder) bcgSheet() error {
	if err := b.newSheet(sheetBCG, map[string]float64{"A:B": 16, "C:G": 16}); err != nil {
		return err
	}

	row, err := b.title(sheetBCG, 7,
		"SEGMENTACIÓN BCG - PESO vs FACTURACIÓN",
		"Vacas Lecheras son ideales (bajo peso, alta facturación). Estrellas son buenas pero consumen más fundición.")
	if err != nil {
		return err
	}

	headers := []string{"Código", "Nombre", "Peso Total (kg)", "Facturación", "Cantidad", "$ por Kg", "Segmento"}
	row, err = b.writeHeaders(sheetBCG, row, headers)
	if err != nil {
		return err
	}

	firstDataRow := row
	for _, p := range b.res.BCG {
		values := []any{p.Code, p.Name, p.TotalWeight, p.InvoicedAmount, p.Quantity, p.PricePerKg, p.Segment}
		cellStyles := []int{
			b.st.normal, b.st.normal, b.st.number, b.st.currency,
			b.st.integer, b.st.currency, b.st.normal,
		}
		if err := b.writeCells(sheetBCG, row, values, cellStyles); err != nil {
			return err
		}
		row++
	}

	if len(b.res.BCG) > 0 {
		return b.addScatterChart(sheetBCG, cellName(9, firstDataRow),
			"Matriz BCG: Peso Total vs Facturación",
			"Peso Total (kg)", "Facturación",
			absRange(sheetBCG, 3, firstDataRow, row-1),
			absRange(sheetBCG, 4, firstDataRow, row-1))
	}
	return nil
}

func (b *builder) productsSheet() error {
	if err := b.newSheet(sheetProducts, map[string]float64{"A:A": 14, "B:B": 40, "C:E": 16}); err != nil {
		return err
	}

	row, err := b.title(sheetProducts, 5, "ANÁLISIS DE PRODUCTOS", "")
	if err != nil {
		return err
	}

	headers := []string{"Código", "Nombre", "Cantidad", "Peso Total (kg)", "Facturación"}

	topQty := make([]productLine, 0, len(b.res.TopQuantity))
	for _, p := range b.res.TopQuantity {
		topQty = append(topQty, productLine{p.Code, p.Name, p.Quantity, p.TotalWeight, p.InvoicedAmount, p.PricePerKg()})
	}
	row, err = b.productBlock(row, "TOP PRODUCTOS POR CANTIDAD", headers, topQty)
	if err != nil {
		return err
	}

	topRevenue := make([]productLine, 0, len(b.res.TopRevenue))
	for _, p := range b.res.TopRevenue {
		topRevenue = append(topRevenue, productLine{p.Code, p.Name, p.Quantity, p.TotalWeight, p.InvoicedAmount, p.PricePerKg()})
	}
	revenueStart := row
	row, err = b.productBlock(row, "TOP PRODUCTOS POR FACTURACIÓN", headers, topRevenue)
	if err != nil {
		return err
	}
	if len(topRevenue) > 0 {
		firstDataRow := revenueStart + 2
		lastDataRow := revenueStart + 1 + len(topRevenue)
		err = b.addBarChart(sheetProducts, cellName(7, revenueStart),
			"Top productos por facturación", "Facturación",
			absRange(sheetProducts, 2, firstDataRow, lastDataRow),
			absRange(sheetProducts, 5, firstDataRow, lastDataRow))
		if err != nil {
			return err
		}
	}

	rateHeaders := []string{"Código", "Nombre", "Peso Total (kg)", "Facturación", "$ por Kg"}
	topRate := make([]productLine, 0, len(b.res.TopPricePerKg))
	for _, p := range b.res.TopPricePerKg {
		topRate = append(topRate, productLine{p.Code, p.Name, p.Quantity, p.TotalWeight, p.InvoicedAmount, p.PricePerKg()})
	}
	_, err = b.rateBlock(row, "TOP PRODUCTOS POR PRECIO/KG", rateHeaders, topRate)
	return err
}

// productLine flattens a product aggregate for sheet writing.
type productLine struct {
	code, name                string
	qty, weight, amount, rate float64
}

func (b *builder) productBlock(row int, caption string, headers []string, products []productLine) (int, error) {
	if err := b.sectionHeader(sheetProducts, row, len(headers), caption); err != nil {
		return 0, err
	}
	row, err := b.writeHeaders(sheetProducts, row+1, headers)
	if err != nil {
		return 0, err
	}
	for _, p := range products {
		values := []any{p.code, p.name, p.qty, p.weight, p.amount}
		cellStyles := []int{b.st.normal, b.st.normal, b.st.integer, b.st.number, b.st.currency}
		if err := b.writeCells(sheetProducts, row, values, cellStyles); err != nil {
			return 0, err
		}
		row++
	}
	return row + 1, nil
}

func (b *builder) rateBlock(row int, caption string, headers []string, products []productLine) (int, error) {
	if err := b.sectionHeader(sheetProducts, row, len(headers), caption); err != nil {
		return 0, err
	}
	row, err := b.writeHeaders(sheetProducts, row+1, headers)
	if err != nil {
		return 0, err
	}
	for _, p := range products {
		values := []any{p.code, p.name, p.weight, p.amount, p.rate}
		cellStyles := []int{b.st.normal, b.st.normal, b.st.number, b.st.currency, b.st.currency}
		if err := b.writeCells(sheetProducts, row, values, cellStyles); err != nil {
			return 0, err
		}
		row++
	}
	return row + 1, nil
}

func (b *builder) categoriesSheet() error {
	if err := b.newSheet(sheetCategories, map[string]float64{"A:A": 28, "B:F": 16}); err != nil {
		return err
	}

	row, err := b.title(sheetCategories, 6, "ANÁLISIS DE CATEGORÍAS", "")
	if err != nil {
		return err
	}

	headers := []string{"Categoría", "Facturación", "Cantidad", "Peso Total (kg)", "Órdenes", "% del Total"}
	row, err = b.writeHeaders(sheetCategories, row, headers)
	if err != nil {
		return err
	}

	firstDataRow := row
	for _, c := range b.res.Categories {
		values := []any{c.Category, c.InvoicedAmount, c.Quantity, c.TotalWeight, c.Orders, c.SharePercent}
		cellStyles := []int{
			b.st.normal, b.st.currency, b.st.integer,
			b.st.number, b.st.integer, b.st.number,
		}
		if err := b.writeCells(sheetCategories, row, values, cellStyles); err != nil {
			return err
		}
		row++
	}

	if len(b.res.Categories) > 0 {
		return b.addPieChart(sheetCategories, cellName(8, firstDataRow),
			"Facturación por Categoría",
			absRange(sheetCategories, 1, firstDataRow, row-1),
			absRange(sheetCategories, 2, firstDataRow, row-1))
	}
	return nil
}

func (b *builder) temporalSheet() error {
	if err := b.newSheet(sheetTemporal, map[string]float64{"A:A": 14, "B:E": 16}); err != nil {
		return err
	}

	row, err := b.title(sheetTemporal, 5, "ANÁLISIS TEMPORAL", "")
	if err != nil {
		return err
	}

	if err := b.sectionHeader(sheetTemporal, row, 5, "VENTAS POR MES"); err != nil {
		return err
	}
	row, err = b.writeHeaders(sheetTemporal, row+1, []string{"Mes", "Facturación", "Cantidad", "Peso Total (kg)", "Órdenes"})
	if err != nil {
		return err
	}

	firstDataRow := row
	for _, m := range b.res.Months {
		values := []any{m.Month, m.InvoicedAmount, m.Quantity, m.TotalWeight, m.Orders}
		cellStyles := []int{b.st.normal, b.st.currency, b.st.integer, b.st.number, b.st.integer}
		if err := b.writeCells(sheetTemporal, row, values, cellStyles); err != nil {
			return err
		}
		row++
	}
	lastMonthRow := row - 1

	row += 2
	if err := b.sectionHeader(sheetTemporal, row, 5, "CRECIMIENTO MENSUAL"); err != nil {
		return err
	}
	row, err = b.writeHeaders(sheetTemporal, row+1, []string{"Mes", "Facturación", "Crecimiento %", "Diferencia"})
	if err != nil {
		return err
	}
	for _, g := range b.res.Growth {
		values := []any{g.Month, g.InvoicedAmount, g.GrowthPercent, g.Difference}
		cellStyles := []int{b.st.normal, b.st.currency, b.st.number, b.st.currency}
		if err := b.writeCells(sheetTemporal, row, values, cellStyles); err != nil {
			return err
		}
		row++
	}

	if len(b.res.Months) > 0 {
		return b.addLineChart(sheetTemporal, cellName(7, firstDataRow),
			"Evolución Mensual de Facturación",
			"Facturación",
			absRange(sheetTemporal, 1, firstDataRow, lastMonthRow),
			absRange(sheetTemporal, 2, firstDataRow, lastMonthRow))
	}
	return nil
}

func (b *builder) comparisonSheet() error {
	if err := b.newSheet(sheetComparison, map[string]float64{"A:A": 14, "B:B": 40, "C:E": 16}); err != nil {
		return err
	}

	row, err := b.title(sheetComparison, 5,
		"COMPARATIVA: PESO vs CANTIDAD POR PRODUCTO",
		"Productos pesados con pocas piezas rinden distinto que productos livianos de alto volumen.")
	if err != nil {
		return err
	}

	headers := []string{"Código", "Nombre", "Cantidad", "Peso Total (kg)", "Facturación"}
	row, err = b.writeHeaders(sheetComparison, row, headers)
	if err != nil {
		return err
	}

	for _, c := range b.res.Comparison {
		values := []any{c.Code, c.Name, c.Quantity, c.TotalWeight, c.InvoicedAmount}
		cellStyles := []int{b.st.normal, b.st.normal, b.st.integer, b.st.number, b.st.currency}
		if err := b.writeCells(sheetComparison, row, values, cellStyles); err != nil {
			return err
		}
		row++
	}

	return nil
}

func (b *builder) weightDistSheet() error {
	if err := b.newSheet(sheetWeightDist, map[string]float64{"A:C": 22}); err != nil {
		return err
	}

	row, err := b.title(sheetWeightDist, 3,
		"DISTRIBUCIÓN DE PRODUCTOS POR RANGO DE PESO",
		"Agrupa las líneas de venta según su peso total para identificar patrones de producción.")
	if err != nil {
		return err
	}

	headers := []string{"Rango de Peso (kg)", "Cantidad de Líneas", "Porcentaje"}
	row, err = b.writeHeaders(sheetWeightDist, row, headers)
	if err != nil {
		return err
	}

	firstDataRow := row
	for _, bucket := range b.res.WeightBuckets {
		values := []any{bucket.Label, bucket.Count, bucket.Percent}
		cellStyles := []int{b.st.normal, b.st.integer, b.st.number}
		if err := b.writeCells(sheetWeightDist, row, values, cellStyles); err != nil {
			return err
		}
		row++
	}

	if len(b.res.WeightBuckets) > 0 {
		return b.addPieChart(sheetWeightDist, cellName(5, firstDataRow),
			"Distribución por Rango de Peso",
			absRange(sheetWeightDist, 1, firstDataRow, row-1),
			absRange(sheetWeightDist, 2, firstDataRow, row-1))
	}
	return nil
}

func (b *builder) rawDataSheet() error {
	if err := b.newSheet(sheetRawData, map[string]float64{"A:A": 12, "B:B": 12, "C:C": 40, "D:M": 15}); err != nil {
		return err
	}

	headers := []string{
		dataset.ColOrderID, dataset.ColProductCode, dataset.ColProductName,
		dataset.ColCategory, dataset.ColDate, dataset.ColQuantity,
		dataset.ColNetWeight, dataset.ColTotalWeight, dataset.ColUnitPrice,
		dataset.ColInvoicedUnits, "MONTO_FACTURADO", "MES",
	}
	row, err := b.writeHeaders(sheetRawData, 1, headers)
	if err != nil {
		return err
	}

	numOrNil := func(v *float64) any {
		if v == nil {
			return nil
		}
		return *v
	}

	for _, line := range b.ds.Rows {
		var date any
		if line.Date != nil {
			date = line.Date.Format("2006-01-02")
		}
		values := []any{
			line.OrderID, line.ProductCode, line.ProductName, line.Category,
			date, numOrNil(line.Quantity), numOrNil(line.NetWeight),
			numOrNil(line.TotalWeight), numOrNil(line.UnitPrice),
			numOrNil(line.InvoicedUnits), numOrNil(line.InvoicedAmount),
			line.MonthKey,
		}
		cellStyles := []int{
			b.st.normal, b.st.normal, b.st.normal, b.st.normal,
			b.st.normal, b.st.integer, b.st.number,
			b.st.number, b.st.currency,
			b.st.integer, b.st.currency,
			b.st.normal,
		}
		if err := b.writeCells(sheetRawData, row, values, cellStyles); err != nil {
			return err
		}
		row++
	}

	return nil
}
