package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/record"
	"github.com/dezporcento/tipshare-backend-go/internal/domain/stats"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Day labels attached by the presence projection.
const (
	LabelToday     = "Today"
	LabelYesterday = "Yesterday"
)

// Payment status labels attached by the payment projection.
const (
	LabelPaid    = "Paid"
	LabelPending = "Pending"
)

// parseAmount coerces a stored decimal string to a value. Anything that
// does not parse counts as zero so a single malformed row never poisons
// a whole aggregation.
func parseAmount(raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ComputeGlobalTotals rolls the whole record set up into one totals value.
// Single pass; order of the input is irrelevant. Empty input yields zeros.
func ComputeGlobalTotals(records []record.WorkRecord) stats.GlobalTotals {
	names := make(map[string]struct{})
	workDays := make(map[string]struct{})

	grandTotal := decimal.Zero
	totalPaid := decimal.Zero
	totalPending := decimal.Zero

	for _, rec := range records {
		names[rec.Name] = struct{}{}
		workDays[rec.WorkDate] = struct{}{}

		amount := parseAmount(rec.TipShareAmount)
		grandTotal = grandTotal.Add(amount)
		if rec.Paid {
			totalPaid = totalPaid.Add(amount)
		} else {
			totalPending = totalPending.Add(amount)
		}
	}

	return stats.GlobalTotals{
		DistinctEmployeeCount: len(names),
		RecordCount:           len(records),
		DistinctWorkDayCount:  len(workDays),
		GrandTotal:            grandTotal,
		TotalPaid:             totalPaid,
		TotalPending:          totalPending,
	}
}

type rankingAccumulator struct {
	name          string
	daysWorked    int
	totalReceived decimal.Decimal
	maxDaily      decimal.Decimal
	minDaily      decimal.Decimal
	minSet        bool
	totalPaid     decimal.Decimal
	totalPending  decimal.Decimal
}

// ComputeRanking groups records by the exact name string and orders the
// per-employee aggregates by total received, descending. Names are grouped
// literally: no trimming or case folding, matching how records are keyed
// upstream. Ties keep the first-occurrence order of the input.
func ComputeRanking(records []record.WorkRecord) []stats.RankingEntry {
	groups := make(map[string]*rankingAccumulator)
	order := make([]string, 0)

	for _, rec := range records {
		acc, ok := groups[rec.Name]
		if !ok {
			acc = &rankingAccumulator{
				name:          rec.Name,
				totalReceived: decimal.Zero,
				maxDaily:      decimal.Zero,
				minDaily:      decimal.Zero,
				totalPaid:     decimal.Zero,
				totalPending:  decimal.Zero,
			}
			groups[rec.Name] = acc
			order = append(order, rec.Name)
		}

		amount := parseAmount(rec.TipShareAmount)

		acc.daysWorked++
		acc.totalReceived = acc.totalReceived.Add(amount)
		if amount.GreaterThan(acc.maxDaily) {
			acc.maxDaily = amount
		}
		if !acc.minSet || amount.LessThan(acc.minDaily) {
			acc.minDaily = amount
			acc.minSet = true
		}
		if rec.Paid {
			acc.totalPaid = acc.totalPaid.Add(amount)
		} else {
			acc.totalPending = acc.totalPending.Add(amount)
		}
	}

	entries := make([]stats.RankingEntry, 0, len(order))
	for _, name := range order {
		acc := groups[name]

		average := decimal.Zero
		if acc.daysWorked > 0 {
			average = acc.totalReceived.Div(decimal.NewFromInt(int64(acc.daysWorked)))
		}

		entries = append(entries, stats.RankingEntry{
			Name:          acc.name,
			DaysWorked:    acc.daysWorked,
			TotalReceived: acc.totalReceived,
			AveragePerDay: average,
			MaxDaily:      acc.maxDaily,
			MinDaily:      acc.minDaily,
			TotalPaid:     acc.totalPaid,
			TotalPending:  acc.totalPending,
		})
	}

	// Stable: equal totals keep first-occurrence order
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalReceived.GreaterThan(entries[j].TotalReceived)
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

type spanAccumulator struct {
	name          string
	firstWorkDate string
	lastWorkDate  string
	daysWorked    int
	totalReceived decimal.Decimal
}

// ComputeDateSpans produces one first/last-work-date rollup per distinct
// name, in first-occurrence order. ISO dates compare lexicographically the
// same as chronologically, so min/max is plain string comparison.
func ComputeDateSpans(records []record.WorkRecord) []stats.EmployeeDateSpan {
	groups := make(map[string]*spanAccumulator)
	order := make([]string, 0)

	for _, rec := range records {
		acc, ok := groups[rec.Name]
		if !ok {
			acc = &spanAccumulator{
				name:          rec.Name,
				firstWorkDate: rec.WorkDate,
				lastWorkDate:  rec.WorkDate,
				totalReceived: decimal.Zero,
			}
			groups[rec.Name] = acc
			order = append(order, rec.Name)
		}

		acc.daysWorked++
		acc.totalReceived = acc.totalReceived.Add(parseAmount(rec.TipShareAmount))

		if rec.WorkDate < acc.firstWorkDate {
			acc.firstWorkDate = rec.WorkDate
		}
		if rec.WorkDate > acc.lastWorkDate {
			acc.lastWorkDate = rec.WorkDate
		}
	}

	spans := make([]stats.EmployeeDateSpan, 0, len(order))
	for _, name := range order {
		acc := groups[name]
		spans = append(spans, stats.EmployeeDateSpan{
			Name:            acc.name,
			FirstWorkDate:   acc.firstWorkDate,
			LastWorkDate:    acc.lastWorkDate,
			DaysWorkedCount: acc.daysWorked,
			TotalReceived:   acc.totalReceived,
		})
	}

	return spans
}

// ProjectPresence annotates each record with a relative day label without
// touching the underlying values. Order and cardinality of the input are
// preserved exactly.
func ProjectPresence(records []record.WorkRecord, today time.Time) []stats.PresenceRow {
	todayStr := today.Format(dateLayout)
	yesterdayStr := today.AddDate(0, 0, -1).Format(dateLayout)

	rows := make([]stats.PresenceRow, 0, len(records))
	for _, rec := range records {
		label := rec.WorkDate
		switch rec.WorkDate {
		case todayStr:
			label = LabelToday
		case yesterdayStr:
			label = LabelYesterday
		}

		rows = append(rows, stats.PresenceRow{
			ID:             rec.ID,
			Name:           rec.Name,
			WorkDate:       rec.WorkDate,
			DayLabel:       label,
			CheckIn:        rec.CheckIn,
			CheckOut:       rec.CheckOut,
			TipShareAmount: rec.TipShareAmount,
			Note:           rec.Note,
		})
	}

	return rows
}

// ProjectPaymentStatus annotates each record with a payment status label.
// Order and cardinality of the input are preserved exactly.
func ProjectPaymentStatus(records []record.WorkRecord) []stats.PaymentRow {
	rows := make([]stats.PaymentRow, 0, len(records))
	for _, rec := range records {
		status := LabelPending
		if rec.Paid {
			status = LabelPaid
		}

		rows = append(rows, stats.PaymentRow{
			ID:             rec.ID,
			Name:           rec.Name,
			WorkDate:       rec.WorkDate,
			TipShareAmount: rec.TipShareAmount,
			Advance:        rec.Advance,
			PaymentMethod:  rec.PaymentMethod,
			Paid:           rec.Paid,
			PaymentStatus:  status,
		})
	}

	return rows
}
