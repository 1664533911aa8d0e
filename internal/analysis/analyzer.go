package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"ventascli/internal/dataset"
)

// DefaultTopN bounds the ranking tables when the caller does not ask for
// a specific size.
const DefaultTopN = 10

// Analyzer runs every analysis stage over one cleaned dataset. The
// dataset is treated as an immutable snapshot, so the stages after
// aggregation can run concurrently.
type Analyzer struct {
	ds       *dataset.Dataset
	products []ProductAggregate
	topN     int
	logger   *slog.Logger
}

// NewAnalyzer prepares an analyzer over the given snapshot. A topN of
// zero or less falls back to DefaultTopN; a nil logger falls back to the
// default logger.
func NewAnalyzer(ds *dataset.Dataset, topN int, logger *slog.Logger) *Analyzer {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		ds:       ds,
		products: aggregateProducts(ds),
		topN:     topN,
		logger:   logger.With(slog.String("component", "analyzer")),
	}
}

// Products returns the per-product aggregates in first-seen order.
func (a *Analyzer) Products() []ProductAggregate {
	return a.products
}

// Summary computes the headline KPIs.
func (a *Analyzer) Summary() Summary {
	return buildSummary(a.ds, a.products)
}

// Categories groups the dataset by category, largest revenue first.
func (a *Analyzer) Categories() []CategoryRow {
	return buildCategories(a.ds)
}

// Months groups the dataset into chronological month buckets.
func (a *Analyzer) Months() []MonthRow {
	return buildMonths(a.ds)
}

// Growth derives month-over-month revenue change.
func (a *Analyzer) Growth() []GrowthRow {
	return buildGrowth(buildMonths(a.ds))
}

// Cadence measures the client's ordering rhythm.
func (a *Analyzer) Cadence() Cadence {
	return buildCadence(a.ds)
}

// Top returns the n highest products by the given metric.
func (a *Analyzer) Top(metric Metric, n int) []ProductAggregate {
	if n <= 0 {
		n = a.topN
	}
	return topBy(a.products, metric, n)
}

// TopPricePerKg ranks products by revenue density, skipping products
// with no recorded weight.
func (a *Analyzer) TopPricePerKg(n int) []ProductAggregate {
	if n <= 0 {
		n = a.topN
	}
	return topByPricePerKg(a.products, n)
}

// Pareto builds the concentration table over one metric.
func (a *Analyzer) Pareto(metric Metric) ParetoTable {
	return buildPareto(a.products, metric)
}

// Priority scores every product on the composite decision index.
func (a *Analyzer) Priority() []PriorityRow {
	return buildPriorityMatrix(a.products)
}

// BCG classifies products on the weight vs revenue matrix.
func (a *Analyzer) BCG() []BCGRow {
	return buildBCG(a.products)
}

// WeightDistribution buckets order lines into 10 kg bands.
func (a *Analyzer) WeightDistribution() []WeightBucket {
	return buildWeightDistribution(a.ds)
}

// Comparison contrasts piece counts against weight and revenue.
func (a *Analyzer) Comparison() []ProductComparison {
	return buildComparison(a.products)
}

// Run executes every stage and assembles the full result. The four
// stage groups are independent once the product aggregates exist, so
// they run concurrently; each goroutine writes a disjoint set of result
// fields.
func (a *Analyzer) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	result := &Result{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Client:      a.ds.Client,
		RowCount:    len(a.ds.Rows),
	}

	a.logger.InfoContext(ctx, "analysis started",
		slog.String("run_id", result.RunID),
		slog.String("client", result.Client),
		slog.Int("rows", result.RowCount),
		slog.Int("products", len(a.products)))

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		result.Summary = a.Summary()
		result.Categories = a.Categories()
		result.Months = a.Months()
		return ctx.Err()
	})

	g.Go(func() error {
		result.TopQuantity = a.Top(MetricQuantity, a.topN)
		result.TopRevenue = a.Top(MetricRevenue, a.topN)
		result.TopPricePerKg = a.TopPricePerKg(a.topN)
		result.ParetoRevenue = a.Pareto(MetricRevenue)
		result.ParetoWeight = a.Pareto(MetricWeight)
		result.ParetoQuantity = a.Pareto(MetricQuantity)
		return ctx.Err()
	})

	g.Go(func() error {
		result.Growth = a.Growth()
		result.Cadence = a.Cadence()
		return ctx.Err()
	})

	g.Go(func() error {
		result.Priority = a.Priority()
		result.BCG = a.BCG()
		result.WeightBuckets = a.WeightDistribution()
		result.Comparison = a.Comparison()
		return ctx.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sanitizeResult(result)

	a.logger.InfoContext(ctx, "analysis completed",
		slog.String("run_id", result.RunID),
		slog.Duration("duration", time.Since(start)))

	return result, nil
}

// sanitizeResult normalizes every numeric field so renderers only ever
// see finite values.
func sanitizeResult(r *Result) {
	s := &r.Summary
	s.TotalInvoiced = Sanitize(s.TotalInvoiced)
	s.TotalWeight = Sanitize(s.TotalWeight)
	s.TotalQuantity = Sanitize(s.TotalQuantity)
	s.AvgOrderValue = Sanitize(s.AvgOrderValue)
	s.AvgOrderWeight = Sanitize(s.AvgOrderWeight)
	s.AvgPricePerKg = Sanitize(s.AvgPricePerKg)

	for i := range r.Categories {
		c := &r.Categories[i]
		c.InvoicedAmount = Sanitize(c.InvoicedAmount)
		c.Quantity = Sanitize(c.Quantity)
		c.TotalWeight = Sanitize(c.TotalWeight)
		c.SharePercent = Sanitize(c.SharePercent)
	}
	for i := range r.Months {
		m := &r.Months[i]
		m.InvoicedAmount = Sanitize(m.InvoicedAmount)
		m.Quantity = Sanitize(m.Quantity)
		m.TotalWeight = Sanitize(m.TotalWeight)
	}
	for i := range r.Growth {
		g := &r.Growth[i]
		g.InvoicedAmount = Sanitize(g.InvoicedAmount)
		g.GrowthPercent = Sanitize(g.GrowthPercent)
		g.Difference = Sanitize(g.Difference)
	}

	r.Cadence.AvgDaysBetween = Sanitize(r.Cadence.AvgDaysBetween)
	r.Cadence.OrdersPerMonth = Sanitize(r.Cadence.OrdersPerMonth)

	sanitizeProducts(r.TopQuantity)
	sanitizeProducts(r.TopRevenue)
	sanitizeProducts(r.TopPricePerKg)

	sanitizePareto(&r.ParetoRevenue)
	sanitizePareto(&r.ParetoWeight)
	sanitizePareto(&r.ParetoQuantity)

	for i := range r.Priority {
		p := &r.Priority[i]
		p.Quantity = Sanitize(p.Quantity)
		p.InvoicedAmount = Sanitize(p.InvoicedAmount)
		p.TotalWeight = Sanitize(p.TotalWeight)
		p.PricePerKg = Sanitize(p.PricePerKg)
		p.RevenueEfficiency = Sanitize(p.RevenueEfficiency)
		p.LaborEfficiency = Sanitize(p.LaborEfficiency)
		p.Index = Sanitize(p.Index)
	}
	for i := range r.BCG {
		b := &r.BCG[i]
		b.TotalWeight = Sanitize(b.TotalWeight)
		b.InvoicedAmount = Sanitize(b.InvoicedAmount)
		b.Quantity = Sanitize(b.Quantity)
		b.PricePerKg = Sanitize(b.PricePerKg)
	}
	for i := range r.WeightBuckets {
		r.WeightBuckets[i].Percent = Sanitize(r.WeightBuckets[i].Percent)
	}
	for i := range r.Comparison {
		c := &r.Comparison[i]
		c.Quantity = Sanitize(c.Quantity)
		c.TotalWeight = Sanitize(c.TotalWeight)
		c.InvoicedAmount = Sanitize(c.InvoicedAmount)
	}
}

func sanitizeProducts(products []ProductAggregate) {
	for i := range products {
		products[i].Quantity = Sanitize(products[i].Quantity)
		products[i].TotalWeight = Sanitize(products[i].TotalWeight)
		products[i].InvoicedAmount = Sanitize(products[i].InvoicedAmount)
	}
}

func sanitizePareto(t *ParetoTable) {
	t.GrandTotal = Sanitize(t.GrandTotal)
	t.VitalValue = Sanitize(t.VitalValue)
	t.TrivialValue = Sanitize(t.TrivialValue)
	t.VitalPercent = Sanitize(t.VitalPercent)
	t.TrivialPercent = Sanitize(t.TrivialPercent)
	for i := range t.Rows {
		row := &t.Rows[i]
		row.Value = Sanitize(row.Value)
		row.Cumulative = Sanitize(row.Cumulative)
		row.CumulativePercent = Sanitize(row.CumulativePercent)
		row.IndividualPercent = Sanitize(row.IndividualPercent)
	}
}
