package dataset

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"ventascli/internal/errors"
)

// structuralColumns must all be present in the header for the pipeline to
// run at all. Missing any of them is a schema error, not a data error.
var structuralColumns = []string{
	ColProductCode,
	ColProductName,
	ColDate,
	ColQuantity,
	ColUnitPrice,
}

// dateLayouts are tried in order when parsing the date column.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"01-02-06",
	"1/2/06 15:04",
	time.RFC3339,
}

// Normalizer turns raw tabular rows into a cleaned Dataset.
type Normalizer struct {
	logger *slog.Logger
}

// NewNormalizer creates a normalizer. A nil logger falls back to the default.
func NewNormalizer(logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{logger: logger.With(slog.String("component", "normalizer"))}
}

// Normalize cleans the raw rows: header whitespace is trimmed, the date and
// numeric columns are coerced (unparseable cells become nil, the row stays),
// the invoiced amount is derived per row, and rows without a product code or
// name are dropped. Returns a schema error when a structural column is
// absent and an empty-dataset error when no row survives.
func (n *Normalizer) Normalize(header []string, cells [][]string) (*Dataset, error) {
	cols := indexColumns(header)

	for _, col := range structuralColumns {
		if _, ok := cols[col]; !ok {
			return nil, errors.NewSchemaError(col)
		}
	}

	ds := &Dataset{Client: UnknownClient}

	if clientCol, ok := cols[ColClient]; ok {
		for _, raw := range cells {
			if clientCol < len(raw) {
				if client := strings.TrimSpace(raw[clientCol]); client != "" {
					ds.Client = client
					break
				}
			}
		}
	}

	dropped := 0
	for _, raw := range cells {
		row, ok := n.normalizeRow(raw, cols)
		if !ok {
			dropped++
			continue
		}
		ds.Rows = append(ds.Rows, row)
	}

	n.logger.Info("dataset normalized",
		slog.String("client", ds.Client),
		slog.Int("rows", len(ds.Rows)),
		slog.Int("dropped", dropped))

	if len(ds.Rows) == 0 {
		return nil, errors.NewEmptyDatasetError()
	}

	return ds, nil
}

// normalizeRow cleans a single raw row. ok is false when the row must be
// dropped (missing product code or name).
func (n *Normalizer) normalizeRow(raw []string, cols map[string]int) (Row, bool) {
	get := func(col string) string {
		if idx, ok := cols[col]; ok && idx < len(raw) {
			return strings.TrimSpace(raw[idx])
		}
		return ""
	}

	row := Row{
		OrderID:     get(ColOrderID),
		ProductCode: get(ColProductCode),
		ProductName: get(ColProductName),
		Category:    get(ColCategory),
	}

	if row.ProductCode == "" || row.ProductName == "" {
		return Row{}, false
	}

	row.Date = parseDate(get(ColDate))
	row.Quantity = parseNumber(get(ColQuantity))
	row.NetWeight = parseNumber(get(ColNetWeight))
	row.TotalWeight = parseNumber(get(ColTotalWeight))
	row.UnitPrice = parseNumber(get(ColUnitPrice))
	row.InvoicedUnits = parseNumber(get(ColInvoicedUnits))

	if row.InvoicedUnits != nil && row.UnitPrice != nil {
		amount := *row.InvoicedUnits * *row.UnitPrice
		row.InvoicedAmount = &amount
	}

	if row.Date != nil {
		row.MonthKey = row.Date.Format("2006-01")
	}

	return row, true
}

// indexColumns maps trimmed header names to their positions. The last
// occurrence wins when a header repeats.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		clean := strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if clean != "" {
			cols[clean] = i
		}
	}
	return cols
}

// parseDate tries the known layouts, then an Excel serial day number.
// Returns nil when nothing matches.
func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}

	// Excel stores dates as days since 1899-12-30.
	if serial, err := strconv.ParseFloat(value, 64); err == nil && serial > 0 {
		epoch := time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)
		t := epoch.AddDate(0, 0, int(serial))
		return &t
	}

	return nil
}

// parseNumber coerces a cell to float64, tolerating comma thousands
// separators. Returns nil for empty or non-numeric cells.
func parseNumber(value string) *float64 {
	if value == "" {
		return nil
	}

	clean := strings.ReplaceAll(value, ",", "")
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return nil
	}
	return &f
}
