package analysis

import "sort"

// paretoVitalThreshold is the cumulative-percent cutoff that separates
// the vital few from the trivial many.
const paretoVitalThreshold = 80.0

// metricValue extracts the ranked dimension from a product aggregate.
func metricValue(p ProductAggregate, metric Metric) float64 {
	switch metric {
	case MetricWeight:
		return p.TotalWeight
	case MetricRevenue:
		return p.InvoicedAmount
	default:
		return p.Quantity
	}
}

// topBy returns the n highest products by the given metric. The sort is
// stable, so ties keep their first-seen input order.
func topBy(products []ProductAggregate, metric Metric, n int) []ProductAggregate {
	ranked := make([]ProductAggregate, len(products))
	copy(ranked, products)

	sort.SliceStable(ranked, func(a, b int) bool {
		return metricValue(ranked[a], metric) > metricValue(ranked[b], metric)
	})

	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// topByPricePerKg ranks products by invoiced amount per kilogram.
// Products without any recorded weight are excluded rather than ranked
// at zero.
func topByPricePerKg(products []ProductAggregate, n int) []ProductAggregate {
	var ranked []ProductAggregate
	for _, p := range products {
		if p.TotalWeight > 0 {
			ranked = append(ranked, p)
		}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].PricePerKg() > ranked[b].PricePerKg()
	})

	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// buildPareto produces the full concentration table over one metric.
// A product belongs to the vital few while the cumulative share ahead of
// it is still below the 80% threshold, so the product that crosses the
// line is itself vital. When the grand total is zero every cumulative
// share is zero and all products count as vital.
func buildPareto(products []ProductAggregate, metric Metric) ParetoTable {
	ranked := make([]ProductAggregate, len(products))
	copy(ranked, products)

	sort.SliceStable(ranked, func(a, b int) bool {
		return metricValue(ranked[a], metric) > metricValue(ranked[b], metric)
	})

	table := ParetoTable{
		Metric:        metric,
		TotalProducts: len(ranked),
	}

	for _, p := range ranked {
		table.GrandTotal += metricValue(p, metric)
	}

	var cumulative float64
	for _, p := range ranked {
		value := metricValue(p, metric)
		priorPercent := SafeDiv(cumulative, table.GrandTotal) * 100
		cumulative += value

		row := ParetoRow{
			Code:              p.Code,
			Name:              p.Name,
			Value:             Round2(value),
			Cumulative:        Round2(cumulative),
			CumulativePercent: Percent(cumulative, table.GrandTotal),
			IndividualPercent: Percent(value, table.GrandTotal),
		}
		table.Rows = append(table.Rows, row)

		if priorPercent < paretoVitalThreshold {
			table.VitalCount++
			table.VitalValue += value
		} else {
			table.TrivialValue += value
		}
	}

	table.TrivialCount = table.TotalProducts - table.VitalCount
	table.VitalPercent = Percent(float64(table.VitalCount), float64(table.TotalProducts))
	table.TrivialPercent = Percent(float64(table.TrivialCount), float64(table.TotalProducts))
	table.VitalValue = Round2(table.VitalValue)
	table.TrivialValue = Round2(table.TrivialValue)
	table.GrandTotal = Round2(table.GrandTotal)

	return table
}
