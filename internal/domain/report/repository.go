package report

import "context"

// DispatchRepository stores the report send log.
type DispatchRepository interface {
	Create(ctx context.Context, d Dispatch) (Dispatch, error)
	List(ctx context.Context) ([]Dispatch, error)
	ExistsForDate(ctx context.Context, workDate string) (bool, error)
}

// ReportService generates, stores and delivers daily reports.
type ReportService interface {
	// Send builds every artifact for the work day, stores them, e-mails
	// them to the configured recipient and records the dispatch.
	Send(ctx context.Context, req SendReportRequest) (*SendReportResponse, error)

	// Artifact generates a single report document for download.
	Artifact(ctx context.Context, workDate string, format Format) (*Artifact, error)

	// ListDispatches returns the send log, most recent first.
	ListDispatches(ctx context.Context) ([]DispatchResponse, error)
}
