package record

import (
	"time"
)

// AdvanceType is the payment method used for an advance ("vale")
type AdvanceType string

const (
	AdvancePix  AdvanceType = "pix"
	AdvanceCash AdvanceType = "cash"
)

// WorkRecord is one employee's work and pay data for a single calendar day.
// Name is the grouping key for all statistics; it is a plain string match,
// not a foreign key into the employee directory. TipShareAmount and Advance
// are kept as raw decimal strings exactly as stored; the stats engine parses
// them and coerces anything unparsable to zero.
type WorkRecord struct {
	ID             string
	Name           string
	TipShareAmount string
	WorkDate       string // ISO YYYY-MM-DD, sorts lexicographically == chronologically
	CheckIn        string
	CheckOut       string
	Advance        *string
	AdvanceType    *AdvanceType
	Paid           bool
	PaymentMethod  string
	Note           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DayNote is a shared observation attached to one work day, not to a
// single record.
type DayNote struct {
	WorkDate  string
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
