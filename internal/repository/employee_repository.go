package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/david8219501/leader-app-server-08-09-25/internal/domain"
)

// EmployeeRepository handles persistence for roster entries. GetForManager
// is the tenancy check: it matches on both the employee id and the owning
// manager id, so an employee id alone never authorizes a mutation.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) error
	ListByManager(ctx context.Context, managerID int64) ([]domain.Employee, error)
	GetForManager(ctx context.Context, id, managerID int64) (*domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id int64) error
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository instantiates the repository.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) Create(ctx context.Context, employee *domain.Employee) error {
	const query = `
        INSERT INTO employees (first_name, last_name, phone, manager_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		employee.FirstName,
		employee.LastName,
		employee.Phone,
		employee.ManagerID,
	).Scan(&employee.ID)
}

func (r *employeeRepository) ListByManager(ctx context.Context, managerID int64) ([]domain.Employee, error) {
	const query = `
        SELECT id, first_name, last_name, phone, manager_id
        FROM employees WHERE manager_id=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Employee{}
	for rows.Next() {
		var employee domain.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.FirstName,
			&employee.LastName,
			&employee.Phone,
			&employee.ManagerID,
		); err != nil {
			return nil, err
		}
		result = append(result, employee)
	}
	return result, rows.Err()
}

func (r *employeeRepository) GetForManager(ctx context.Context, id, managerID int64) (*domain.Employee, error) {
	const query = `
        SELECT id, first_name, last_name, phone, manager_id
        FROM employees WHERE id=$1 AND manager_id=$2`

	var employee domain.Employee
	if err := r.pool.QueryRow(ctx, query, id, managerID).Scan(
		&employee.ID,
		&employee.FirstName,
		&employee.LastName,
		&employee.Phone,
		&employee.ManagerID,
	); err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) Update(ctx context.Context, employee *domain.Employee) error {
	const query = `
        UPDATE employees
        SET first_name=$1, last_name=$2, phone=$3
        WHERE id=$4`

	_, err := r.pool.Exec(ctx, query,
		employee.FirstName,
		employee.LastName,
		employee.Phone,
		employee.ID,
	)
	return err
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM employees WHERE id=$1`

	_, err := r.pool.Exec(ctx, query, id)
	return err
}
