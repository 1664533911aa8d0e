package analysis

import (
	"sort"
	"time"

	"ventascli/internal/dataset"
)

// daysPerMonth is the mean Gregorian month length used to project order
// counts onto a monthly rate.
const daysPerMonth = 30.44

// buildGrowth derives month-over-month change from the chronological
// month table. The first month has no predecessor, so its growth and
// difference are zero. A zero prior month also yields zero growth
// instead of an infinite jump.
func buildGrowth(months []MonthRow) []GrowthRow {
	rows := make([]GrowthRow, 0, len(months))

	for i, m := range months {
		row := GrowthRow{
			Month:          m.Month,
			InvoicedAmount: m.InvoicedAmount,
		}
		if i > 0 {
			prev := months[i-1].InvoicedAmount
			row.Difference = Round2(m.InvoicedAmount - prev)
			row.GrowthPercent = Round2(SafeDiv(m.InvoicedAmount-prev, prev) * 100)
		}
		rows = append(rows, row)
	}

	return rows
}

// buildCadence measures how often the client orders: the mean gap in
// days between consecutive orders and the order count projected to a
// monthly rate. Each order is dated by its earliest line; orders with no
// parseable date are left out. With fewer than two dated orders the gap
// is zero, the span is zero, and the monthly rate falls back to the
// order count itself; two or more orders on a single day report a zero
// rate because the span is zero.
func buildCadence(ds *dataset.Dataset) Cadence {
	earliest := make(map[string]time.Time)
	for _, row := range ds.Rows {
		if row.OrderID == "" || row.Date == nil {
			continue
		}
		if t, ok := earliest[row.OrderID]; !ok || row.Date.Before(t) {
			earliest[row.OrderID] = *row.Date
		}
	}

	c := Cadence{
		FirstOrder:  "N/A",
		LastOrder:   "N/A",
		TotalOrders: len(earliest),
	}
	if len(earliest) == 0 {
		return c
	}

	dates := make([]time.Time, 0, len(earliest))
	for _, t := range earliest {
		dates = append(dates, t)
	}
	sort.Slice(dates, func(a, b int) bool { return dates[a].Before(dates[b]) })

	first, last := dates[0], dates[len(dates)-1]
	c.FirstOrder = first.Format("2006-01-02")
	c.LastOrder = last.Format("2006-01-02")
	c.TotalDays = int(last.Sub(first).Hours() / 24)

	if len(dates) < 2 {
		c.OrdersPerMonth = float64(len(dates))
		return c
	}

	var gapSum float64
	for i := 1; i < len(dates); i++ {
		gapSum += dates[i].Sub(dates[i-1]).Hours() / 24
	}
	c.AvgDaysBetween = Round1(gapSum / float64(len(dates)-1))

	// A zero span means every order landed on one day; the monthly
	// rate is undefined there and reports as zero.
	if c.TotalDays > 0 {
		c.OrdersPerMonth = Round2(float64(len(dates)) / (float64(c.TotalDays) / daysPerMonth))
	}

	return c
}
