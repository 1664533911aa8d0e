package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateProducts(t *testing.T) {
	products := aggregateProducts(sampleDataset(t))

	require.Len(t, products, 2)

	assert.Equal(t, "A", products[0].Code)
	assert.Equal(t, 3.0, products[0].Quantity)
	assert.Equal(t, 15.0, products[0].TotalWeight)
	assert.Equal(t, 15.0, products[0].InvoicedAmount)

	assert.Equal(t, "B", products[1].Code)
	assert.Equal(t, 1.0, products[1].Quantity)
	assert.Equal(t, 1.0, products[1].TotalWeight)
	assert.Equal(t, 100.0, products[1].InvoicedAmount)
}

func TestAggregateProductsKeyedByCodeAndName(t *testing.T) {
	ds := sampleDataset(t)
	// Same code under a different name is a distinct product.
	ds.Rows = append(ds.Rows, line(t, "OV-3", "A", "Pieza A v2", "Fundición", "2024-03-01", 1, 1, 1, 1))

	products := aggregateProducts(ds)
	require.Len(t, products, 3)
	assert.Equal(t, "Pieza A v2", products[2].Name)
}

func TestBuildSummary(t *testing.T) {
	ds := sampleDataset(t)
	s := buildSummary(ds, aggregateProducts(ds))

	assert.Equal(t, "Fundición Demo", s.Client)
	assert.Equal(t, 115.0, s.TotalInvoiced)
	assert.Equal(t, 2, s.TotalOrders)
	assert.Equal(t, 2, s.UniqueProducts)
	assert.Equal(t, 16.0, s.TotalWeight)
	assert.Equal(t, 4.0, s.TotalQuantity)
	assert.Equal(t, 57.5, s.AvgOrderValue)
	assert.Equal(t, 8.0, s.AvgOrderWeight)
	assert.Equal(t, 7.19, s.AvgPricePerKg)
}

func TestBuildSummaryEmptyOrders(t *testing.T) {
	ds := sampleDataset(t)
	for i := range ds.Rows {
		ds.Rows[i].OrderID = ""
	}

	s := buildSummary(ds, aggregateProducts(ds))

	assert.Equal(t, 0, s.TotalOrders)
	assert.Zero(t, s.AvgOrderValue)
	assert.Zero(t, s.AvgOrderWeight)
	assert.Equal(t, 115.0, s.TotalInvoiced)
}

func TestBuildCategories(t *testing.T) {
	rows := buildCategories(sampleDataset(t))

	require.Len(t, rows, 2)

	assert.Equal(t, "Mecanizado", rows[0].Category)
	assert.Equal(t, 100.0, rows[0].InvoicedAmount)
	assert.Equal(t, 86.96, rows[0].SharePercent)
	assert.Equal(t, 1, rows[0].Orders)

	assert.Equal(t, "Fundición", rows[1].Category)
	assert.Equal(t, 15.0, rows[1].InvoicedAmount)
	assert.Equal(t, 13.04, rows[1].SharePercent)
	assert.Equal(t, 2, rows[1].Orders)
}

func TestBuildCategoriesSkipsUncategorized(t *testing.T) {
	ds := sampleDataset(t)
	ds.Rows[0].Category = ""

	rows := buildCategories(ds)

	require.Len(t, rows, 2)
	assert.Equal(t, 5.0, rows[1].InvoicedAmount)
}

func TestBuildMonths(t *testing.T) {
	rows := buildMonths(sampleDataset(t))

	require.Len(t, rows, 2)

	assert.Equal(t, "2024-01", rows[0].Month)
	assert.Equal(t, 10.0, rows[0].InvoicedAmount)
	assert.Equal(t, 1, rows[0].Orders)

	assert.Equal(t, "2024-02", rows[1].Month)
	assert.Equal(t, 105.0, rows[1].InvoicedAmount)
	assert.Equal(t, 2.0, rows[1].Quantity)
	assert.Equal(t, 1, rows[1].Orders)
}

func TestBuildMonthsSkipsUndatedRows(t *testing.T) {
	ds := sampleDataset(t)
	ds.Rows[2].Date = nil
	ds.Rows[2].MonthKey = ""

	rows := buildMonths(ds)

	require.Len(t, rows, 2)
	assert.Equal(t, 5.0, rows[1].InvoicedAmount)
}
