package stats

import (
	"context"

	"github.com/shopspring/decimal"
)

// GlobalTotals is the whole-table rollup shown on the statistics screen.
type GlobalTotals struct {
	DistinctEmployeeCount int             `json:"distinct_employee_count"`
	RecordCount           int             `json:"record_count"`
	DistinctWorkDayCount  int             `json:"distinct_work_day_count"`
	GrandTotal            decimal.Decimal `json:"grand_total"`
	TotalPaid             decimal.Decimal `json:"total_paid"`
	TotalPending          decimal.Decimal `json:"total_pending"`
}

// RankingEntry is one employee's aggregate, ordered by total received.
// TotalPaid + TotalPending always equals TotalReceived.
type RankingEntry struct {
	Rank          int             `json:"rank"`
	Name          string          `json:"name"`
	DaysWorked    int             `json:"days_worked"`
	TotalReceived decimal.Decimal `json:"total_received"`
	AveragePerDay decimal.Decimal `json:"average_per_day"`
	MaxDaily      decimal.Decimal `json:"max_daily"`
	MinDaily      decimal.Decimal `json:"min_daily"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	TotalPending  decimal.Decimal `json:"total_pending"`
}

// EmployeeDateSpan is one employee's first/last work date rollup.
type EmployeeDateSpan struct {
	Name            string          `json:"name"`
	FirstWorkDate   string          `json:"first_work_date"`
	LastWorkDate    string          `json:"last_work_date"`
	DaysWorkedCount int             `json:"days_worked_count"`
	TotalReceived   decimal.Decimal `json:"total_received"`
}

// PresenceRow is a work record annotated with a relative day label
// ("Today", "Yesterday", or the raw date). Values are passed through
// untouched.
type PresenceRow struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	WorkDate       string `json:"work_date"`
	DayLabel       string `json:"day_label"`
	CheckIn        string `json:"check_in"`
	CheckOut       string `json:"check_out"`
	TipShareAmount string `json:"tip_share_amount"`
	Note           string `json:"note,omitempty"`
}

// PaymentRow is a work record annotated with a payment status label.
type PaymentRow struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	WorkDate       string  `json:"work_date"`
	TipShareAmount string  `json:"tip_share_amount"`
	Advance        *string `json:"advance,omitempty"`
	PaymentMethod  string  `json:"payment_method"`
	Paid           bool    `json:"paid"`
	PaymentStatus  string  `json:"payment_status"`
}

// OverviewResponse bundles the statistics screen payload.
type OverviewResponse struct {
	Totals    GlobalTotals       `json:"totals"`
	Ranking   []RankingEntry     `json:"ranking"`
	DateSpans []EmployeeDateSpan `json:"date_spans"`
}

// StatsService exposes the aggregation engine over the record store.
type StatsService interface {
	Overview(ctx context.Context) (*OverviewResponse, error)
	Totals(ctx context.Context) (GlobalTotals, error)
	Ranking(ctx context.Context) ([]RankingEntry, error)
	DateSpans(ctx context.Context) ([]EmployeeDateSpan, error)
	PresenceHistory(ctx context.Context, limit int) ([]PresenceRow, error)
	PaymentHistory(ctx context.Context, limit int) ([]PaymentRow, error)
}
