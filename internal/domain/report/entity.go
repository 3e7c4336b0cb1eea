package report

import (
	"time"

	"github.com/shopspring/decimal"
)

// Format is a report artifact format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
	FormatXLSX Format = "xlsx"
)

// Formats lists every artifact generated for a daily report, in the
// order they are attached to the e-mail.
var Formats = []Format{FormatCSV, FormatJSON, FormatHTML, FormatXLSX}

// Valid reports whether f is a known artifact format.
func (f Format) Valid() bool {
	switch f {
	case FormatCSV, FormatJSON, FormatHTML, FormatXLSX:
		return true
	}
	return false
}

// ContentType returns the MIME type used when serving or attaching the artifact.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	case FormatHTML:
		return "text/html"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

// Dispatch is one recorded report send for a work day.
type Dispatch struct {
	ID            string
	WorkDate      string
	Weekday       string
	EmployeeCount int
	TotalAmount   decimal.Decimal
	EmailSent     bool
	SentAt        time.Time
}
