package analysis

import (
	"fmt"
	"sort"

	"ventascli/internal/dataset"
)

// weightBucketSize is the band width of the per-line weight histogram.
const weightBucketSize = 10.0

// buildWeightDistribution buckets order lines into 10 kg bands by total
// weight. Lines without a parseable weight are skipped. The final band
// is open-ended so outliers land in a single ">N kg" bucket.
func buildWeightDistribution(ds *dataset.Dataset) []WeightBucket {
	var weights []float64
	var maxWeight float64
	for _, row := range ds.Rows {
		if row.TotalWeight == nil {
			continue
		}
		w := *row.TotalWeight
		weights = append(weights, w)
		if w > maxWeight {
			maxWeight = w
		}
	}
	if len(weights) == 0 {
		return nil
	}

	size := int(weightBucketSize)
	closed := (int(maxWeight) + size - 1) / size
	counts := make([]int, closed+1)
	for _, w := range weights {
		i := int(w / weightBucketSize)
		if i > closed {
			i = closed
		}
		counts[i]++
	}

	total := len(weights)
	var buckets []WeightBucket
	for i, count := range counts {
		label := fmt.Sprintf("%d-%d kg", i*size, (i+1)*size)
		if i == closed {
			// Overflow band for weights at or past the last bin edge.
			if count == 0 {
				continue
			}
			label = fmt.Sprintf(">%d kg", closed*size)
		}
		buckets = append(buckets, WeightBucket{
			Label:   label,
			Count:   count,
			Percent: Percent(float64(count), float64(total)),
		})
	}

	return buckets
}

// buildComparison contrasts each product's piece count against its
// weight and revenue footprint, heaviest products first.
func buildComparison(products []ProductAggregate) []ProductComparison {
	rows := make([]ProductComparison, 0, len(products))
	for _, p := range products {
		rows = append(rows, ProductComparison{
			Code:           p.Code,
			Name:           p.Name,
			Quantity:       p.Quantity,
			TotalWeight:    Round2(p.TotalWeight),
			InvoicedAmount: Round2(p.InvoicedAmount),
		})
	}

	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].TotalWeight > rows[b].TotalWeight
	})

	return rows
}
