package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/employee"
	"github.com/dezporcento/tipshare-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (name, pix_key)
		VALUES ($1, $2)
		RETURNING id, name, pix_key, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query, emp.Name, emp.PixKey).Scan(
		&created.ID,
		&created.Name,
		&created.PixKey,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, pix_key, created_at, updated_at FROM employees WHERE id = $1`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID,
		&emp.Name,
		&emp.PixKey,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, err
}

// GetByName implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByName(ctx context.Context, name string) (*employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, pix_key, created_at, updated_at FROM employees WHERE name = $1`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, name).Scan(
		&emp.ID,
		&emp.Name,
		&emp.PixKey,
		&emp.CreatedAt,
		&emp.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $1, pix_key = $2, updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, emp.Name, emp.PixKey, emp.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, pix_key, created_at, updated_at FROM employees ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.PixKey, &emp.CreatedAt, &emp.UpdatedAt); err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}
