package analysis

import (
	"fmt"
	"sort"
)

// Weights of the composite priority index. Revenue density dominates,
// handling effort refines.
const (
	priorityRevenueWeight = 0.6
	priorityLaborWeight   = 0.4
)

// Tier cutoffs on the 0-100 priority index.
const (
	tierHighCutoff   = 70.0
	tierMediumCutoff = 40.0
)

// buildPriorityMatrix scores every product on a 0-100 composite index:
// revenue per kilogram normalized against the best product, blended with
// a labor-efficiency term that rewards products moving fewer units. The
// result is sorted by index descending.
func buildPriorityMatrix(products []ProductAggregate) []PriorityRow {
	var maxPricePerKg, maxQuantity float64
	for _, p := range products {
		if v := p.PricePerKg(); v > maxPricePerKg {
			maxPricePerKg = v
		}
		if p.Quantity > maxQuantity {
			maxQuantity = p.Quantity
		}
	}

	rows := make([]PriorityRow, 0, len(products))
	for _, p := range products {
		pricePerKg := Round2(p.PricePerKg())
		revenueEff := SafeDiv(p.PricePerKg(), maxPricePerKg) * 100
		laborEff := (1 - SafeDiv(p.Quantity, maxQuantity)) * 100
		index := Round2(priorityRevenueWeight*revenueEff + priorityLaborWeight*laborEff)

		row := PriorityRow{
			Code:              p.Code,
			Name:              p.Name,
			Quantity:          p.Quantity,
			InvoicedAmount:    Round2(p.InvoicedAmount),
			TotalWeight:       Round2(p.TotalWeight),
			PricePerKg:        pricePerKg,
			RevenueEfficiency: Round2(revenueEff),
			LaborEfficiency:   Round2(laborEff),
			Index:             index,
		}
		row.Tier, row.Recommendation = classifyPriority(index, pricePerKg, p.Quantity)
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].Index > rows[b].Index
	})

	return rows
}

func classifyPriority(index, pricePerKg, quantity float64) (string, string) {
	switch {
	case index >= tierHighCutoff:
		return TierHigh, fmt.Sprintf(
			"Mantener y promover: genera $%.2f/kg moviendo solo %.0f unidades", pricePerKg, quantity)
	case index >= tierMediumCutoff:
		return TierMedium, fmt.Sprintf(
			"Evaluar precio o volumen: $%.2f/kg con %.0f unidades vendidas", pricePerKg, quantity)
	default:
		return TierLow, fmt.Sprintf(
			"Revisar rentabilidad: solo $%.2f/kg frente a %.0f unidades manejadas", pricePerKg, quantity)
	}
}

// buildBCG classifies every product on the weight vs revenue matrix
// using the median of each axis as the split. A value equal to its
// median counts as high. Output is grouped by segment in fixed priority
// order; within a segment products keep their first-seen order.
func buildBCG(products []ProductAggregate) []BCGRow {
	weights := make([]float64, 0, len(products))
	revenues := make([]float64, 0, len(products))
	for _, p := range products {
		weights = append(weights, p.TotalWeight)
		revenues = append(revenues, p.InvoicedAmount)
	}
	medianWeight := median(weights)
	medianRevenue := median(revenues)

	classify := func(p ProductAggregate) string {
		highWeight := p.TotalWeight >= medianWeight
		highRevenue := p.InvoicedAmount >= medianRevenue
		switch {
		case !highWeight && highRevenue:
			return SegmentCashCow
		case highWeight && highRevenue:
			return SegmentStar
		case highWeight && !highRevenue:
			return SegmentChallenger
		default:
			return SegmentDog
		}
	}

	var rows []BCGRow
	for _, segment := range []string{SegmentCashCow, SegmentStar, SegmentChallenger, SegmentDog} {
		for _, p := range products {
			if classify(p) != segment {
				continue
			}
			rows = append(rows, BCGRow{
				Code:           p.Code,
				Name:           p.Name,
				TotalWeight:    Round2(p.TotalWeight),
				InvoicedAmount: Round2(p.InvoicedAmount),
				Quantity:       p.Quantity,
				PricePerKg:     Round2(p.PricePerKg()),
				Segment:        segment,
			})
		}
	}

	return rows
}
