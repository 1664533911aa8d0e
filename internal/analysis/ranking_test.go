package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopByQuantity(t *testing.T) {
	products := aggregateProducts(sampleDataset(t))

	top := topBy(products, MetricQuantity, 10)

	require.Len(t, top, 2)
	assert.Equal(t, "A", top[0].Code)
	assert.Equal(t, "B", top[1].Code)
}

func TestTopByRevenueTruncates(t *testing.T) {
	products := aggregateProducts(sampleDataset(t))

	top := topBy(products, MetricRevenue, 1)

	require.Len(t, top, 1)
	assert.Equal(t, "B", top[0].Code)
}

func TestTopByStableOnTies(t *testing.T) {
	products := []ProductAggregate{
		{Code: "X", Name: "X", Quantity: 5},
		{Code: "Y", Name: "Y", Quantity: 5},
		{Code: "Z", Name: "Z", Quantity: 5},
	}

	top := topBy(products, MetricQuantity, 3)

	assert.Equal(t, "X", top[0].Code)
	assert.Equal(t, "Y", top[1].Code)
	assert.Equal(t, "Z", top[2].Code)
}

func TestTopByPricePerKgExcludesZeroWeight(t *testing.T) {
	products := []ProductAggregate{
		{Code: "H", Name: "Heavy", Quantity: 10, TotalWeight: 50, InvoicedAmount: 500},
		{Code: "Z", Name: "Weightless", Quantity: 99, TotalWeight: 0, InvoicedAmount: 999},
	}

	top := topByPricePerKg(products, 10)

	require.Len(t, top, 1)
	assert.Equal(t, "H", top[0].Code)

	// The zero-weight product still ranks by quantity, with a zeroed ratio.
	byQty := topBy(products, MetricQuantity, 10)
	require.Len(t, byQty, 2)
	assert.Equal(t, "Z", byQty[0].Code)
	assert.Zero(t, byQty[0].PricePerKg())
}

func TestBuildParetoRevenue(t *testing.T) {
	products := aggregateProducts(sampleDataset(t))

	table := buildPareto(products, MetricRevenue)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, "B", table.Rows[0].Code)
	assert.Equal(t, 86.96, table.Rows[0].CumulativePercent)
	assert.Equal(t, "A", table.Rows[1].Code)
	assert.Equal(t, 100.0, table.Rows[1].CumulativePercent)

	assert.Equal(t, 115.0, table.GrandTotal)
	assert.Equal(t, 2, table.TotalProducts)
	assert.Equal(t, 1, table.VitalCount)
	assert.Equal(t, 1, table.TrivialCount)
	assert.Equal(t, 100.0, table.VitalValue)
	assert.Equal(t, 15.0, table.TrivialValue)
	assert.Equal(t, 50.0, table.VitalPercent)
}

func TestBuildParetoCumulativeMonotonic(t *testing.T) {
	products := []ProductAggregate{
		{Code: "A", Name: "A", InvoicedAmount: 40},
		{Code: "B", Name: "B", InvoicedAmount: 25},
		{Code: "C", Name: "C", InvoicedAmount: 20},
		{Code: "D", Name: "D", InvoicedAmount: 10},
		{Code: "E", Name: "E", InvoicedAmount: 5},
	}

	table := buildPareto(products, MetricRevenue)

	prev := 0.0
	for _, row := range table.Rows {
		assert.GreaterOrEqual(t, row.CumulativePercent, prev)
		prev = row.CumulativePercent
	}
	assert.Equal(t, 100.0, table.Rows[len(table.Rows)-1].CumulativePercent)
	assert.Equal(t, table.TotalProducts, table.VitalCount+table.TrivialCount)

	// 40+25+20 = 85 crosses the threshold at C, so A, B and C are vital.
	assert.Equal(t, 3, table.VitalCount)
}

func TestBuildParetoAllZeroValues(t *testing.T) {
	products := []ProductAggregate{
		{Code: "A", Name: "A"},
		{Code: "B", Name: "B"},
	}

	table := buildPareto(products, MetricWeight)

	assert.Zero(t, table.GrandTotal)
	for _, row := range table.Rows {
		assert.Zero(t, row.CumulativePercent)
	}
	assert.Equal(t, 2, table.VitalCount)
	assert.Zero(t, table.TrivialCount)
}

func TestBuildParetoEmpty(t *testing.T) {
	table := buildPareto(nil, MetricQuantity)

	assert.Zero(t, table.TotalProducts)
	assert.Zero(t, table.VitalCount)
	assert.Empty(t, table.Rows)
}

func TestMetricValid(t *testing.T) {
	tests := []struct {
		metric Metric
		want   bool
	}{
		{MetricQuantity, true},
		{MetricRevenue, true},
		{MetricWeight, true},
		{Metric("margin"), false},
		{Metric(""), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.metric.Valid(), "metric %q", tt.metric)
	}
}
