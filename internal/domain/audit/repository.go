package audit

import "context"

// AuditRepository stores audit log entries.
type AuditRepository interface {
	Insert(ctx context.Context, e Entry) (Entry, error)
	List(ctx context.Context, filter ListFilter) ([]Entry, error)
	DeleteAll(ctx context.Context) error
}

// AuditService records changes and serves the log screen. Record never
// fails the caller's operation: persistence errors are logged and swallowed.
type AuditService interface {
	Record(ctx context.Context, action Action, tableName string, recordID *string, oldData, newData any)
	List(ctx context.Context, filter ListFilter) ([]EntryResponse, error)
	Clear(ctx context.Context) error
}
