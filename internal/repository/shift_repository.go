package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/david8219501/leader-app-server-08-09-25/internal/domain"
)

// ShiftRepository handles persistence for shift assignments. There is no
// uniqueness constraint on the slot key: repeated creates produce distinct
// rows, and the delete operations are set deletes that succeed on zero
// matches.
type ShiftRepository interface {
	Create(ctx context.Context, shift *domain.Shift) error
	ListWeek(ctx context.Context, managerID int64, weekStartDate string) ([]domain.Shift, error)
	DeleteSlot(ctx context.Context, managerID int64, weekStartDate, day, shiftType string) error
	DeleteWeek(ctx context.Context, managerID int64, weekStartDate string) error
}

type shiftRepository struct {
	pool *pgxpool.Pool
}

// NewShiftRepository instantiates the repository.
func NewShiftRepository(pool *pgxpool.Pool) ShiftRepository {
	return &shiftRepository{pool: pool}
}

func (r *shiftRepository) Create(ctx context.Context, shift *domain.Shift) error {
	const query = `
        INSERT INTO shifts (manager_id, employee_id, day, shift_type, week_start_date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		shift.ManagerID,
		shift.EmployeeID,
		shift.Day,
		shift.ShiftType,
		shift.WeekStartDate,
	).Scan(&shift.ID, &shift.CreatedAt)
}

func (r *shiftRepository) ListWeek(ctx context.Context, managerID int64, weekStartDate string) ([]domain.Shift, error) {
	const query = `
        SELECT id, manager_id, employee_id, day, shift_type, week_start_date, created_at
        FROM shifts WHERE manager_id=$1 AND week_start_date=$2`

	rows, err := r.pool.Query(ctx, query, managerID, weekStartDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Shift{}
	for rows.Next() {
		var shift domain.Shift
		if err := rows.Scan(
			&shift.ID,
			&shift.ManagerID,
			&shift.EmployeeID,
			&shift.Day,
			&shift.ShiftType,
			&shift.WeekStartDate,
			&shift.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, shift)
	}
	return result, rows.Err()
}

func (r *shiftRepository) DeleteSlot(ctx context.Context, managerID int64, weekStartDate, day, shiftType string) error {
	const query = `
        DELETE FROM shifts
        WHERE manager_id=$1 AND week_start_date=$2 AND day=$3 AND shift_type=$4`

	_, err := r.pool.Exec(ctx, query, managerID, weekStartDate, day, shiftType)
	return err
}

func (r *shiftRepository) DeleteWeek(ctx context.Context, managerID int64, weekStartDate string) error {
	const query = `DELETE FROM shifts WHERE manager_id=$1 AND week_start_date=$2`

	_, err := r.pool.Exec(ctx, query, managerID, weekStartDate)
	return err
}
