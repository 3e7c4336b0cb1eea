package record

import "errors"

// Work record domain errors
var (
	ErrRecordNotFound  = errors.New("work record not found")
	ErrDuplicateRecord = errors.New("a record for this employee on this work day already exists")
	ErrDayNoteNotFound = errors.New("no note found for this work day")
)
