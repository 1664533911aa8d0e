package analysis

import (
	"sort"

	"ventascli/internal/dataset"
)

// aggregateProducts folds every order line into per-product totals. The
// returned slice preserves first-seen input order, which later stages
// rely on for deterministic tie-breaking in their stable sorts.
func aggregateProducts(ds *dataset.Dataset) []ProductAggregate {
	type key struct{ code, name string }

	index := make(map[key]int)
	var products []ProductAggregate

	for _, row := range ds.Rows {
		k := key{row.ProductCode, row.ProductName}
		i, ok := index[k]
		if !ok {
			i = len(products)
			index[k] = i
			products = append(products, ProductAggregate{Code: row.ProductCode, Name: row.ProductName})
		}
		products[i].Quantity += dataset.Float(row.Quantity)
		products[i].TotalWeight += dataset.Float(row.TotalWeight)
		products[i].InvoicedAmount += dataset.Float(row.InvoicedAmount)
	}

	return products
}

// buildSummary computes the headline KPIs. Per-order averages are taken
// over distinct order IDs, not over individual lines.
func buildSummary(ds *dataset.Dataset, products []ProductAggregate) Summary {
	s := Summary{
		Client:         ds.Client,
		UniqueProducts: len(products),
	}

	orderAmounts := make(map[string]float64)
	orderWeights := make(map[string]float64)

	for _, row := range ds.Rows {
		s.TotalInvoiced += dataset.Float(row.InvoicedAmount)
		s.TotalWeight += dataset.Float(row.TotalWeight)
		s.TotalQuantity += dataset.Float(row.Quantity)

		if row.OrderID != "" {
			orderAmounts[row.OrderID] += dataset.Float(row.InvoicedAmount)
			orderWeights[row.OrderID] += dataset.Float(row.TotalWeight)
		}
	}

	s.TotalOrders = len(orderAmounts)
	if s.TotalOrders > 0 {
		var amountSum, weightSum float64
		for _, v := range orderAmounts {
			amountSum += v
		}
		for _, v := range orderWeights {
			weightSum += v
		}
		s.AvgOrderValue = Round2(amountSum / float64(s.TotalOrders))
		s.AvgOrderWeight = Round2(weightSum / float64(s.TotalOrders))
	}

	s.TotalInvoiced = Round2(s.TotalInvoiced)
	s.TotalWeight = Round2(s.TotalWeight)
	s.AvgPricePerKg = Round2(SafeDiv(s.TotalInvoiced, s.TotalWeight))

	return s
}

// buildCategories groups lines by category and attaches each category's
// share of the grand invoiced amount. Lines without a category are
// excluded; the result is sorted by invoiced amount descending.
func buildCategories(ds *dataset.Dataset) []CategoryRow {
	index := make(map[string]int)
	orders := make(map[string]map[string]struct{})
	var rows []CategoryRow

	for _, row := range ds.Rows {
		if row.Category == "" {
			continue
		}
		i, ok := index[row.Category]
		if !ok {
			i = len(rows)
			index[row.Category] = i
			rows = append(rows, CategoryRow{Category: row.Category})
			orders[row.Category] = make(map[string]struct{})
		}
		rows[i].InvoicedAmount += dataset.Float(row.InvoicedAmount)
		rows[i].Quantity += dataset.Float(row.Quantity)
		rows[i].TotalWeight += dataset.Float(row.TotalWeight)
		if row.OrderID != "" {
			orders[row.Category][row.OrderID] = struct{}{}
		}
	}

	var total float64
	for i := range rows {
		rows[i].Orders = len(orders[rows[i].Category])
		total += rows[i].InvoicedAmount
	}
	for i := range rows {
		rows[i].InvoicedAmount = Round2(rows[i].InvoicedAmount)
		rows[i].TotalWeight = Round2(rows[i].TotalWeight)
		rows[i].SharePercent = Percent(rows[i].InvoicedAmount, total)
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].InvoicedAmount > rows[b].InvoicedAmount
	})

	return rows
}

// buildMonths groups lines into YYYY-MM buckets in chronological order.
// Lines without a parseable date carry no month and are excluded.
func buildMonths(ds *dataset.Dataset) []MonthRow {
	index := make(map[string]int)
	orders := make(map[string]map[string]struct{})
	var rows []MonthRow

	for _, row := range ds.Rows {
		if row.MonthKey == "" {
			continue
		}
		i, ok := index[row.MonthKey]
		if !ok {
			i = len(rows)
			index[row.MonthKey] = i
			rows = append(rows, MonthRow{Month: row.MonthKey})
			orders[row.MonthKey] = make(map[string]struct{})
		}
		rows[i].InvoicedAmount += dataset.Float(row.InvoicedAmount)
		rows[i].Quantity += dataset.Float(row.Quantity)
		rows[i].TotalWeight += dataset.Float(row.TotalWeight)
		if row.OrderID != "" {
			orders[row.MonthKey][row.OrderID] = struct{}{}
		}
	}

	for i := range rows {
		rows[i].Orders = len(orders[rows[i].Month])
		rows[i].InvoicedAmount = Round2(rows[i].InvoicedAmount)
		rows[i].TotalWeight = Round2(rows[i].TotalWeight)
	}

	// YYYY-MM keys sort chronologically as strings.
	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].Month < rows[b].Month
	})

	return rows
}
