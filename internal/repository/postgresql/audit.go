package postgresql

import (
	"context"
	"fmt"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/audit"
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/database"
)

type auditRepositoryImpl struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepositoryImpl{db: db}
}

// Insert implements audit.AuditRepository.
func (r *auditRepositoryImpl) Insert(ctx context.Context, e audit.Entry) (audit.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO audit_logs (action, table_name, record_id, old_data, new_data, actor, source_ip)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, action, table_name, record_id, old_data, new_data, actor, source_ip, created_at
	`

	var created audit.Entry
	err := q.QueryRow(ctx, query,
		e.Action,
		e.TableName,
		e.RecordID,
		e.OldData,
		e.NewData,
		e.Actor,
		e.SourceIP,
	).Scan(
		&created.ID,
		&created.Action,
		&created.TableName,
		&created.RecordID,
		&created.OldData,
		&created.NewData,
		&created.Actor,
		&created.SourceIP,
		&created.CreatedAt,
	)
	if err != nil {
		return audit.Entry{}, err
	}
	return created, nil
}

// List implements audit.AuditRepository.
func (r *auditRepositoryImpl) List(ctx context.Context, filter audit.ListFilter) ([]audit.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, action, table_name, record_id, old_data, new_data, actor, source_ip, created_at
		FROM audit_logs
		WHERE 1=1
	`
	var args []any

	if filter.TableName != "" {
		args = append(args, filter.TableName)
		query += fmt.Sprintf(" AND table_name = $%d", len(args))
	}
	if filter.Action != "" {
		args = append(args, filter.Action)
		query += fmt.Sprintf(" AND action = $%d", len(args))
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var e audit.Entry
		err := rows.Scan(
			&e.ID,
			&e.Action,
			&e.TableName,
			&e.RecordID,
			&e.OldData,
			&e.NewData,
			&e.Actor,
			&e.SourceIP,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteAll implements audit.AuditRepository.
func (r *auditRepositoryImpl) DeleteAll(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM audit_logs`)
	return err
}
