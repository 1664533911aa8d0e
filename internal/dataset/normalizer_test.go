package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ventascli/internal/errors"
)

var fullHeader = []string{
	ColOrderID, ColProductCode, ColProductName, ColCategory, ColDate,
	ColQuantity, ColNetWeight, ColTotalWeight, ColUnitPrice, ColInvoicedUnits,
	ColClient,
}

func TestNormalizeBasicRow(t *testing.T) {
	cells := [][]string{
		{"OV-1", "A", "Pieza A", "Fundición", "2024-01-10", "2", "9", "10", "5", "2", "Cliente Uno"},
	}

	ds, err := NewNormalizer(nil).Normalize(fullHeader, cells)
	require.NoError(t, err)

	assert.Equal(t, "Cliente Uno", ds.Client)
	require.Len(t, ds.Rows, 1)

	row := ds.Rows[0]
	assert.Equal(t, "OV-1", row.OrderID)
	assert.Equal(t, "A", row.ProductCode)
	assert.Equal(t, "Pieza A", row.ProductName)
	assert.Equal(t, "Fundición", row.Category)
	assert.Equal(t, "2024-01", row.MonthKey)
	require.NotNil(t, row.InvoicedAmount)
	assert.Equal(t, 10.0, *row.InvoicedAmount)
}

func TestNormalizeMissingStructuralColumn(t *testing.T) {
	header := []string{ColOrderID, ColProductCode, ColProductName, ColDate, ColQuantity}

	_, err := NewNormalizer(nil).Normalize(header, nil)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeSchema))
	assert.Contains(t, err.Error(), ColUnitPrice)
}

func TestNormalizeDropsRowsWithoutCodeOrName(t *testing.T) {
	cells := [][]string{
		{"OV-1", "", "Pieza A", "", "2024-01-10", "1", "", "", "5", "1", ""},
		{"OV-2", "B", "", "", "2024-01-11", "1", "", "", "5", "1", ""},
		{"OV-3", "C", "Pieza C", "", "2024-01-12", "1", "", "", "5", "1", ""},
	}

	ds, err := NewNormalizer(nil).Normalize(fullHeader, cells)
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "C", ds.Rows[0].ProductCode)
}

func TestNormalizeEmptyDataset(t *testing.T) {
	cells := [][]string{
		{"OV-1", "", "", "", "", "", "", "", "", "", ""},
	}

	_, err := NewNormalizer(nil).Normalize(fullHeader, cells)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrTypeEmptyDataset))
}

func TestNormalizeUnparseableCellsBecomeNil(t *testing.T) {
	cells := [][]string{
		{"OV-1", "A", "Pieza A", "", "not-a-date", "abc", "", "1,250.5", "5", "", ""},
	}

	ds, err := NewNormalizer(nil).Normalize(fullHeader, cells)
	require.NoError(t, err)

	row := ds.Rows[0]
	assert.Nil(t, row.Date)
	assert.Empty(t, row.MonthKey)
	assert.Nil(t, row.Quantity)
	assert.Nil(t, row.InvoicedUnits)
	assert.Nil(t, row.InvoicedAmount)
	require.NotNil(t, row.TotalWeight)
	assert.Equal(t, 1250.5, *row.TotalWeight)
}

func TestNormalizeShortRows(t *testing.T) {
	cells := [][]string{
		{"OV-1", "A", "Pieza A"},
	}

	ds, err := NewNormalizer(nil).Normalize(fullHeader, cells)
	require.NoError(t, err)
	require.Len(t, ds.Rows, 1)
	assert.Nil(t, ds.Rows[0].Quantity)
	assert.Equal(t, UnknownClient, ds.Client)
}

func TestNormalizeHeaderWhitespaceAndBOM(t *testing.T) {
	header := []string{
		" " + ColOrderID + " ", "\ufeff" + ColProductCode, ColProductName,
		ColCategory, ColDate, ColQuantity, ColNetWeight, ColTotalWeight,
		ColUnitPrice, ColInvoicedUnits, ColClient,
	}
	cells := [][]string{
		{"OV-1", "A", "Pieza A", "", "2024-01-10", "1", "", "", "5", "1", ""},
	}

	ds, err := NewNormalizer(nil).Normalize(header, cells)
	require.NoError(t, err)
	assert.Equal(t, "A", ds.Rows[0].ProductCode)
	assert.Equal(t, "OV-1", ds.Rows[0].OrderID)
}

func TestNormalizeClientFallsBackToFirstNonEmpty(t *testing.T) {
	cells := [][]string{
		{"OV-1", "A", "Pieza A", "", "2024-01-10", "1", "", "", "5", "1", ""},
		{"OV-2", "B", "Pieza B", "", "2024-01-11", "1", "", "", "5", "1", "Cliente Real"},
	}

	ds, err := NewNormalizer(nil).Normalize(fullHeader, cells)
	require.NoError(t, err)
	assert.Equal(t, "Cliente Real", ds.Client)
}

func TestParseDateLayouts(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Time
	}{
		{"iso", "2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"iso datetime", "2024-03-15 10:30:00", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"slash dmy", "15/03/2024", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"excel serial", "45366", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseDate(tt.value)
			require.NotNil(t, got)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}

	assert.Nil(t, parseDate(""))
	assert.Nil(t, parseDate("yesterday"))
}

func TestParseNumber(t *testing.T) {
	v := parseNumber("1,234.56")
	require.NotNil(t, v)
	assert.Equal(t, 1234.56, *v)

	assert.Nil(t, parseNumber(""))
	assert.Nil(t, parseNumber("n/a"))

	neg := parseNumber("-3.5")
	require.NotNil(t, neg)
	assert.Equal(t, -3.5, *neg)
}

func TestFloatHelper(t *testing.T) {
	assert.Equal(t, 0.0, Float(nil))
	v := 4.2
	assert.Equal(t, 4.2, Float(&v))
}
