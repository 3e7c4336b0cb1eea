package record

import (
	"context"
)

// WorkRecordRepository defines data access methods for work-day payment records.
type WorkRecordRepository interface {
	// Create inserts a new work record
	Create(ctx context.Context, rec WorkRecord) (WorkRecord, error)

	// GetByID retrieves a work record by ID
	GetByID(ctx context.Context, id string) (WorkRecord, error)

	// GetByNameAndDate retrieves the record for one employee on one work day.
	// Used to reject duplicate daily entries.
	GetByNameAndDate(ctx context.Context, name, workDate string) (*WorkRecord, error)

	// Update replaces an existing work record
	Update(ctx context.Context, rec WorkRecord) error

	// Delete removes a work record
	Delete(ctx context.Context, id string) error

	// List retrieves records ordered by name, optionally filtered by work day
	List(ctx context.Context, filter ListWorkRecordsFilter) ([]WorkRecord, error)

	// ListAll retrieves every record; input for the stats engine
	ListAll(ctx context.Context) ([]WorkRecord, error)

	// ListRecent retrieves records ordered by work date descending,
	// capped at limit. Input for the history projections.
	ListRecent(ctx context.Context, limit int) ([]WorkRecord, error)

	// ListByDate retrieves all records for one work day, name-ordered.
	// Input for the daily report.
	ListByDate(ctx context.Context, workDate string) ([]WorkRecord, error)

	// DistinctNames returns the unique employee names present in the table
	DistinctNames(ctx context.Context) ([]string, error)

	// GetDayNote retrieves the shared note for one work day
	GetDayNote(ctx context.Context, workDate string) (DayNote, error)

	// UpsertDayNote creates or replaces the shared note for one work day
	UpsertDayNote(ctx context.Context, note DayNote) (DayNote, error)
}

// WorkRecordService defines the business operations over work records.
type WorkRecordService interface {
	Create(ctx context.Context, req CreateWorkRecordRequest) (WorkRecordResponse, error)
	Get(ctx context.Context, id string) (WorkRecordResponse, error)
	Update(ctx context.Context, req UpdateWorkRecordRequest) (WorkRecordResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListWorkRecordsFilter) ([]WorkRecordResponse, error)
	DistinctNames(ctx context.Context) ([]string, error)
	GetDayNote(ctx context.Context, workDate string) (DayNoteResponse, error)
	UpsertDayNote(ctx context.Context, req UpsertDayNoteRequest) (DayNoteResponse, error)
}
