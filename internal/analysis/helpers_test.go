package analysis

import (
	"testing"
	"time"

	"ventascli/internal/dataset"
)

func fp(v float64) *float64 {
	return &v
}

func dt(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad test date %q: %v", value, err)
	}
	return &parsed
}

// line builds a cleaned row the way the normalizer would emit it,
// including the derived invoiced amount and month bucket.
func line(t *testing.T, order, code, name, category, date string, qty, weight, price, invoiced float64) dataset.Row {
	t.Helper()

	row := dataset.Row{
		OrderID:        order,
		ProductCode:    code,
		ProductName:    name,
		Category:       category,
		Quantity:       fp(qty),
		TotalWeight:    fp(weight),
		UnitPrice:      fp(price),
		InvoicedUnits:  fp(invoiced),
		InvoicedAmount: fp(invoiced * price),
	}
	if date != "" {
		row.Date = dt(t, date)
		row.MonthKey = row.Date.Format("2006-01")
	}
	return row
}

// sampleDataset is the three-line reference fixture: product A across
// two orders plus a light, expensive product B.
func sampleDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	return &dataset.Dataset{
		Client: "Fundición Demo",
		Rows: []dataset.Row{
			line(t, "OV-1", "A", "Pieza A", "Fundición", "2024-01-10", 2, 10, 5, 2),
			line(t, "OV-2", "A", "Pieza A", "Fundición", "2024-02-15", 1, 5, 5, 1),
			line(t, "OV-2", "B", "Pieza B", "Mecanizado", "2024-02-15", 1, 1, 100, 1),
		},
	}
}
