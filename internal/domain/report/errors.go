package report

import "errors"

// Report domain errors
var (
	ErrNoRecordsForDay  = errors.New("no work records found for this work day")
	ErrUnknownFormat    = errors.New("unknown report format")
	ErrDispatchNotFound = errors.New("report dispatch not found")
)
