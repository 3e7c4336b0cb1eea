package postgresql

import (
	"context"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/report"
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/database"
)

type dispatchRepositoryImpl struct {
	db *database.DB
}

func NewDispatchRepository(db *database.DB) report.DispatchRepository {
	return &dispatchRepositoryImpl{db: db}
}

// Create implements report.DispatchRepository.
func (r *dispatchRepositoryImpl) Create(ctx context.Context, d report.Dispatch) (report.Dispatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO report_dispatches (work_date, weekday, employee_count, total_amount, email_sent, sent_at)
		VALUES ($1::date, $2, $3, $4, $5, $6)
		RETURNING id, to_char(work_date, 'YYYY-MM-DD'), weekday, employee_count, total_amount, email_sent, sent_at
	`

	var created report.Dispatch
	err := q.QueryRow(ctx, query,
		d.WorkDate,
		d.Weekday,
		d.EmployeeCount,
		d.TotalAmount,
		d.EmailSent,
		d.SentAt,
	).Scan(
		&created.ID,
		&created.WorkDate,
		&created.Weekday,
		&created.EmployeeCount,
		&created.TotalAmount,
		&created.EmailSent,
		&created.SentAt,
	)
	if err != nil {
		return report.Dispatch{}, err
	}
	return created, nil
}

// List implements report.DispatchRepository.
func (r *dispatchRepositoryImpl) List(ctx context.Context) ([]report.Dispatch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, to_char(work_date, 'YYYY-MM-DD'), weekday, employee_count, total_amount, email_sent, sent_at
		FROM report_dispatches
		ORDER BY sent_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dispatches []report.Dispatch
	for rows.Next() {
		var d report.Dispatch
		err := rows.Scan(
			&d.ID,
			&d.WorkDate,
			&d.Weekday,
			&d.EmployeeCount,
			&d.TotalAmount,
			&d.EmailSent,
			&d.SentAt,
		)
		if err != nil {
			return nil, err
		}
		dispatches = append(dispatches, d)
	}
	return dispatches, rows.Err()
}

// ExistsForDate implements report.DispatchRepository.
func (r *dispatchRepositoryImpl) ExistsForDate(ctx context.Context, workDate string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM report_dispatches WHERE work_date = $1::date AND email_sent)`,
		workDate,
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}
