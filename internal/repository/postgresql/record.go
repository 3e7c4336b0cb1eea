package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/record"
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/database"
)

type workRecordRepositoryImpl struct {
	db *database.DB
}

func NewWorkRecordRepository(db *database.DB) record.WorkRecordRepository {
	return &workRecordRepositoryImpl{db: db}
}

// recordColumns is the canonical select list. Money columns are cast to
// text so the stored value reaches the stats engine byte for byte.
const recordColumns = `
	id, name, tip_share_amount::text, to_char(work_date, 'YYYY-MM-DD'),
	check_in, check_out, advance::text, advance_type, paid, payment_method,
	note, created_at, updated_at
`

func scanWorkRecord(row pgx.Row) (record.WorkRecord, error) {
	var rec record.WorkRecord
	err := row.Scan(
		&rec.ID,
		&rec.Name,
		&rec.TipShareAmount,
		&rec.WorkDate,
		&rec.CheckIn,
		&rec.CheckOut,
		&rec.Advance,
		&rec.AdvanceType,
		&rec.Paid,
		&rec.PaymentMethod,
		&rec.Note,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}

func (r *workRecordRepositoryImpl) collect(ctx context.Context, query string, args ...any) ([]record.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []record.WorkRecord
	for rows.Next() {
		rec, err := scanWorkRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Create implements record.WorkRecordRepository.
func (r *workRecordRepositoryImpl) Create(ctx context.Context, rec record.WorkRecord) (record.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_records (
			name, tip_share_amount, work_date, check_in, check_out,
			advance, advance_type, paid, payment_method, note
		) VALUES ($1, $2::numeric, $3::date, $4, $5, $6::numeric, $7, $8, $9, $10)
		RETURNING ` + recordColumns

	return scanWorkRecord(q.QueryRow(ctx, query,
		rec.Name,
		rec.TipShareAmount,
		rec.WorkDate,
		rec.CheckIn,
		rec.CheckOut,
		rec.Advance,
		rec.AdvanceType,
		rec.Paid,
		rec.PaymentMethod,
		rec.Note,
	))
}

// GetByID implements record.WorkRecordRepository.
func (r *workRecordRepositoryImpl) GetByID(ctx context.Context, id string) (record.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + recordColumns + ` FROM work_records WHERE id = $1`

	rec, err := scanWorkRecord(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return record.WorkRecord{}, record.ErrRecordNotFound
	}
	return rec, err
}

// GetByNameAndDate implements record.WorkRecordRepository.
func (r *workRecordRepositoryImpl) GetByNameAndDate(ctx context.Context, name, workDate string) (*record.WorkRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + recordColumns + ` FROM work_records WHERE name = $1 AND work_date = $2::date`

	rec, err := scanWorkRecord(q.QueryRow(ctx, query, name, workDate))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update implements record.WorkRecordRepository.
func (r *workRecordRepositoryImpl) Update(ctx context.Context, rec record.WorkRecord) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_records
		SET name = $1, tip_share_amount = $2::numeric, work_date = $3::date,
			check_in = $4, check_out = $5, advance = $6::numeric,
			advance_type = $7, paid = $8, payment_method = $9, note = $10,
			updated_at = NOW()
		WHERE id = $11
	`

	tag, err := q.Exec(ctx, query,
		rec.Name,
		rec.TipShareAmount,
		rec.WorkDate,
		rec.CheckIn,
		rec.CheckOut,
		rec.Advance,
		rec.AdvanceType,
		rec.Paid,
		rec.PaymentMethod,
		rec.Note,
		rec.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return record.ErrRecordNotFound
	}
	return nil
}

// Delete implements record.WorkRecordRepository.
func (r *workRecordRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return record.ErrRecordNotFound
	}
	return nil
}

// List implements record.WorkRecordRepository.
func (r *workRecordRepositoryImpl) List(ctx context.Context, filter record.ListWorkRecordsFilter) ([]record.WorkRecord, error) {
	if filter.WorkDate != "" {
		return r.ListByDate(ctx, filter.WorkDate)
	}

	query := `SELECT ` + recordColumns + ` FROM work_records ORDER BY work_date DESC, name ASC`
	return r.collect(ctx, query)
}

// ListAll implements record.WorkRecordRepository.
func (r *workRecordRepositoryImpl) ListAll(ctx context.Context) ([]record.WorkRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM work_records ORDER BY created_at ASC`
	return r.collect(ctx, query)
}

// ListRecent implements record.WorkRecordRepository.
func (r *workRecordRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]record.WorkRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM work_records ORDER BY work_date DESC, created_at DESC LIMIT $1`
	return r.collect(ctx, query, limit)
}

// ListByDate implements record.WorkRecordRepository.
func (r *workRecordRepositoryImpl) ListByDate(ctx context.Context, workDate string) ([]record.WorkRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM work_records WHERE work_date = $1::date ORDER BY name ASC`
	return r.collect(ctx, query, workDate)
}

// DistinctNames implements record.WorkRecordRepository.
func (r *workRecordRepositoryImpl) DistinctNames(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT DISTINCT name FROM work_records ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// GetDayNote implements record.WorkRecordRepository.
func (r *workRecordRepositoryImpl) GetDayNote(ctx context.Context, workDate string) (record.DayNote, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT to_char(work_date, 'YYYY-MM-DD'), note, created_at, updated_at
		FROM day_notes
		WHERE work_date = $1::date
	`

	var note record.DayNote
	err := q.QueryRow(ctx, query, workDate).Scan(
		&note.WorkDate,
		&note.Note,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return record.DayNote{}, record.ErrDayNoteNotFound
	}
	return note, err
}

// UpsertDayNote implements record.WorkRecordRepository.
func (r *workRecordRepositoryImpl) UpsertDayNote(ctx context.Context, note record.DayNote) (record.DayNote, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO day_notes (work_date, note)
		VALUES ($1::date, $2)
		ON CONFLICT (work_date)
		DO UPDATE SET note = EXCLUDED.note, updated_at = NOW()
		RETURNING to_char(work_date, 'YYYY-MM-DD'), note, created_at, updated_at
	`

	var saved record.DayNote
	err := q.QueryRow(ctx, query, note.WorkDate, note.Note).Scan(
		&saved.WorkDate,
		&saved.Note,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	return saved, err
}
