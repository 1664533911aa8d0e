package analysis

import (
	"time"
)

// Metric identifies the dimension a ranking or concentration table is
// built over.
type Metric string

const (
	MetricQuantity Metric = "quantity"
	MetricRevenue  Metric = "revenue"
	MetricWeight   Metric = "weight"
)

// Valid reports whether the metric is one of the supported dimensions.
func (m Metric) Valid() bool {
	switch m {
	case MetricQuantity, MetricRevenue, MetricWeight:
		return true
	}
	return false
}

// Priority tiers for the decision matrix.
const (
	TierHigh   = "Alta"
	TierMedium = "Media"
	TierLow    = "Baja"
)

// BCG-style segments, in fixed output priority order.
const (
	SegmentCashCow    = "Vaca Lechera"
	SegmentStar       = "Estrella"
	SegmentChallenger = "Desafiante"
	SegmentDog        = "Perro"
)

// Summary holds the headline KPIs for one client's dataset.
type Summary struct {
	Client         string  `json:"client"`
	TotalInvoiced  float64 `json:"total_invoiced"`
	TotalOrders    int     `json:"total_orders"`
	UniqueProducts int     `json:"unique_products"`
	TotalWeight    float64 `json:"total_weight"`
	TotalQuantity  float64 `json:"total_quantity"`
	AvgOrderValue  float64 `json:"avg_order_value"`
	AvgOrderWeight float64 `json:"avg_order_weight"`
	AvgPricePerKg  float64 `json:"avg_price_per_kg"`
}

// ProductAggregate accumulates one product's totals across every order
// line. Derived ratios are computed from the sums on demand so they can
// never drift from the accumulated values.
type ProductAggregate struct {
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Quantity       float64 `json:"quantity"`
	TotalWeight    float64 `json:"total_weight"`
	InvoicedAmount float64 `json:"invoiced_amount"`
}

// PricePerKg returns the invoiced amount per kilogram, zero when the
// product has no recorded weight.
func (p ProductAggregate) PricePerKg() float64 {
	return SafeDiv(p.InvoicedAmount, p.TotalWeight)
}

// UnitWeight returns the average weight per unit sold.
func (p ProductAggregate) UnitWeight() float64 {
	return SafeDiv(p.TotalWeight, p.Quantity)
}

// UnitRevenue returns the average invoiced amount per unit sold.
func (p ProductAggregate) UnitRevenue() float64 {
	return SafeDiv(p.InvoicedAmount, p.Quantity)
}

// CategoryRow is one category's accumulated totals plus its share of the
// grand invoiced amount.
type CategoryRow struct {
	Category       string  `json:"category"`
	InvoicedAmount float64 `json:"invoiced_amount"`
	Quantity       float64 `json:"quantity"`
	TotalWeight    float64 `json:"total_weight"`
	Orders         int     `json:"orders"`
	SharePercent   float64 `json:"share_percent"`
}

// MonthRow is one calendar month's accumulated totals, keyed YYYY-MM.
type MonthRow struct {
	Month          string  `json:"month"`
	InvoicedAmount float64 `json:"invoiced_amount"`
	Quantity       float64 `json:"quantity"`
	TotalWeight    float64 `json:"total_weight"`
	Orders         int     `json:"orders"`
}

// ParetoRow annotates a product with its running concentration numbers
// for one metric.
type ParetoRow struct {
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	Value             float64 `json:"value"`
	Cumulative        float64 `json:"cumulative"`
	CumulativePercent float64 `json:"cumulative_percent"`
	IndividualPercent float64 `json:"individual_percent"`
}

// ParetoTable is the full concentration analysis over one metric: the
// ordered rows plus the vital-few/trivial-many partition at the 80%
// cumulative threshold.
type ParetoTable struct {
	Metric         Metric      `json:"metric"`
	Rows           []ParetoRow `json:"rows"`
	TotalProducts  int         `json:"total_products"`
	VitalCount     int         `json:"vital_count"`
	TrivialCount   int         `json:"trivial_count"`
	VitalPercent   float64     `json:"vital_percent"`
	TrivialPercent float64     `json:"trivial_percent"`
	VitalValue     float64     `json:"vital_value"`
	TrivialValue   float64     `json:"trivial_value"`
	GrandTotal     float64     `json:"grand_total"`
}

// GrowthRow is one month's invoiced amount with its change versus the
// prior month.
type GrowthRow struct {
	Month          string  `json:"month"`
	InvoicedAmount float64 `json:"invoiced_amount"`
	GrowthPercent  float64 `json:"growth_percent"`
	Difference     float64 `json:"difference"`
}

// Cadence summarizes how often the client places orders.
type Cadence struct {
	AvgDaysBetween float64 `json:"avg_days_between"`
	OrdersPerMonth float64 `json:"orders_per_month"`
	FirstOrder     string  `json:"first_order"`
	LastOrder      string  `json:"last_order"`
	TotalDays      int     `json:"total_days"`
	TotalOrders    int     `json:"total_orders"`
}

// PriorityRow is one product's composite priority score in the decision
// matrix.
type PriorityRow struct {
	Code              string  `json:"code"`
	Name              string  `json:"name"`
	Quantity          float64 `json:"quantity"`
	InvoicedAmount    float64 `json:"invoiced_amount"`
	TotalWeight       float64 `json:"total_weight"`
	PricePerKg        float64 `json:"price_per_kg"`
	RevenueEfficiency float64 `json:"revenue_efficiency"`
	LaborEfficiency   float64 `json:"labor_efficiency"`
	Index             float64 `json:"index"`
	Tier              string  `json:"tier"`
	Recommendation    string  `json:"recommendation"`
}

// BCGRow is one product's quadrant classification on the weight vs
// revenue matrix.
type BCGRow struct {
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	TotalWeight    float64 `json:"total_weight"`
	InvoicedAmount float64 `json:"invoiced_amount"`
	Quantity       float64 `json:"quantity"`
	PricePerKg     float64 `json:"price_per_kg"`
	Segment        string  `json:"segment"`
}

// WeightBucket is one 10 kg band of the per-line weight distribution.
type WeightBucket struct {
	Label   string  `json:"label"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// ProductComparison contrasts a product's piece count against its weight
// and revenue footprint.
type ProductComparison struct {
	Code           string  `json:"code"`
	Name           string  `json:"name"`
	Quantity       float64 `json:"quantity"`
	TotalWeight    float64 `json:"total_weight"`
	InvoicedAmount float64 `json:"invoiced_amount"`
}

// Result aggregates everything a single pipeline run produces. All
// numeric values are finite; NaN and infinities are normalized to zero
// before the result leaves this package.
type Result struct {
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
	Client      string    `json:"client"`
	RowCount    int       `json:"row_count"`

	Summary    Summary       `json:"summary"`
	Categories []CategoryRow `json:"categories"`
	Months     []MonthRow    `json:"months"`
	Growth     []GrowthRow   `json:"growth"`
	Cadence    Cadence       `json:"cadence"`

	TopQuantity   []ProductAggregate `json:"top_quantity"`
	TopRevenue    []ProductAggregate `json:"top_revenue"`
	TopPricePerKg []ProductAggregate `json:"top_price_per_kg"`

	ParetoRevenue  ParetoTable `json:"pareto_revenue"`
	ParetoWeight   ParetoTable `json:"pareto_weight"`
	ParetoQuantity ParetoTable `json:"pareto_quantity"`

	Priority []PriorityRow `json:"priority"`
	BCG      []BCGRow      `json:"bcg"`

	WeightBuckets []WeightBucket      `json:"weight_buckets"`
	Comparison    []ProductComparison `json:"comparison"`
}
