package dataset

import (
	"time"
)

// Column names expected in the input header. Matching is exact after
// surrounding whitespace is trimmed.
const (
	ColOrderID       = "OV"
	ColProductCode   = "CODIGO"
	ColProductName   = "NOMBRE"
	ColCategory      = "CATEGORIA"
	ColDate          = "FECHA"
	ColQuantity      = "CANT"
	ColNetWeight     = "PESO NETO"
	ColTotalWeight   = "PESO TOTAL"
	ColUnitPrice     = "PRECIO UNITARIO"
	ColInvoicedUnits = "FACTURADO"
	ColClient        = "CLIENTE"
)

// UnknownClient is reported when the input carries no client column.
const UnknownClient = "Cliente Desconocido"

// Row is a single cleaned sales order line. Numeric fields are nil when the
// source cell could not be parsed; ProductCode and ProductName are always
// non-empty.
type Row struct {
	OrderID       string
	ProductCode   string
	ProductName   string
	Category      string
	Date          *time.Time
	Quantity      *float64
	NetWeight     *float64
	TotalWeight   *float64
	UnitPrice     *float64
	InvoicedUnits *float64

	// InvoicedAmount is InvoicedUnits × UnitPrice, nil if either is nil.
	InvoicedAmount *float64

	// MonthKey is the YYYY-MM bucket derived from Date, empty when Date is nil.
	MonthKey string
}

// Dataset is the immutable cleaned snapshot every analysis stage reads.
type Dataset struct {
	Client string
	Rows   []Row
}

// Float returns the dereferenced value or zero when the field is nil.
func Float(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
