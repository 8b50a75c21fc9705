package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/david8219501/leader-app-server-08-09-25/internal/domain"
)

// ManagerRepository defines persistence access for manager accounts.
type ManagerRepository interface {
	Create(ctx context.Context, manager *domain.Manager) error
	GetByID(ctx context.Context, id int64) (*domain.Manager, error)
	GetByEmail(ctx context.Context, email string) (*domain.Manager, error)
	UpdateProfile(ctx context.Context, id int64, firstName, lastName string, phone *string, email string) error
	UpdatePassword(ctx context.Context, id int64, password string) error
}

type managerRepository struct {
	pool *pgxpool.Pool
}

// NewManagerRepository returns a Postgres-backed implementation.
func NewManagerRepository(pool *pgxpool.Pool) ManagerRepository {
	return &managerRepository{pool: pool}
}

func (r *managerRepository) Create(ctx context.Context, manager *domain.Manager) error {
	const query = `
        INSERT INTO managers (first_name, last_name, phone, email, password)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`

	return r.pool.QueryRow(ctx, query,
		manager.FirstName,
		manager.LastName,
		manager.Phone,
		manager.Email,
		manager.Password,
	).Scan(&manager.ID)
}

func (r *managerRepository) GetByID(ctx context.Context, id int64) (*domain.Manager, error) {
	const query = `
        SELECT id, first_name, last_name, phone, email, password
        FROM managers WHERE id=$1`

	var manager domain.Manager
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&manager.ID,
		&manager.FirstName,
		&manager.LastName,
		&manager.Phone,
		&manager.Email,
		&manager.Password,
	); err != nil {
		return nil, err
	}
	return &manager, nil
}

func (r *managerRepository) GetByEmail(ctx context.Context, email string) (*domain.Manager, error) {
	const query = `
        SELECT id, first_name, last_name, phone, email, password
        FROM managers WHERE email=$1`

	var manager domain.Manager
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&manager.ID,
		&manager.FirstName,
		&manager.LastName,
		&manager.Phone,
		&manager.Email,
		&manager.Password,
	); err != nil {
		return nil, err
	}
	return &manager, nil
}

func (r *managerRepository) UpdateProfile(ctx context.Context, id int64, firstName, lastName string, phone *string, email string) error {
	const query = `
        UPDATE managers
        SET first_name=$1, last_name=$2, phone=$3, email=$4
        WHERE id=$5`

	_, err := r.pool.Exec(ctx, query, firstName, lastName, phone, email, id)
	return err
}

func (r *managerRepository) UpdatePassword(ctx context.Context, id int64, password string) error {
	const query = `UPDATE managers SET password=$1 WHERE id=$2`

	_, err := r.pool.Exec(ctx, query, password, id)
	return err
}
