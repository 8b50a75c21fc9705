package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/david8219501/leader-app-server-08-09-25/internal/domain"
	"github.com/david8219501/leader-app-server-08-09-25/internal/events"
	"github.com/david8219501/leader-app-server-08-09-25/internal/repository"
	apperrors "github.com/david8219501/leader-app-server-08-09-25/pkg/util"
)

// RosterService manages the employees owned by a manager. Mutations require
// the ownership row check before touching anything; the check failing is a
// permission error, not a missing-row error.
type RosterService struct {
	employees  repository.EmployeeRepository
	dispatcher events.Dispatcher
}

// NewRosterService builds the service.
func NewRosterService(employees repository.EmployeeRepository, dispatcher events.Dispatcher) *RosterService {
	return &RosterService{employees: employees, dispatcher: dispatcher}
}

// AddEmployee inserts a roster entry owned by the manager.
func (s *RosterService) AddEmployee(ctx context.Context, managerID int64, firstName, lastName string, phone *string) (*domain.Employee, error) {
	employee := &domain.Employee{
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
		ManagerID: managerID,
	}
	if err := s.employees.Create(ctx, employee); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventEmployeeAdded,
		ManagerID: managerID,
		Payload: events.EmployeeAddedPayload{
			EmployeeID: employee.ID,
			FirstName:  employee.FirstName,
			LastName:   employee.LastName,
		},
	})
	return employee, nil
}

// ListEmployees returns the manager's roster ordered by id.
func (s *RosterService) ListEmployees(ctx context.Context, managerID int64) ([]domain.Employee, error) {
	return s.employees.ListByManager(ctx, managerID)
}

// UpdateEmployee overwrites a roster entry after the ownership check.
func (s *RosterService) UpdateEmployee(ctx context.Context, managerID, employeeID int64, firstName, lastName string, phone *string) error {
	if err := s.checkOwnership(ctx, employeeID, managerID, "no permission to update this employee"); err != nil {
		return err
	}

	return s.employees.Update(ctx, &domain.Employee{
		ID:        employeeID,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	})
}

// DeleteEmployee removes a roster entry after the ownership check. Shift
// rows referencing the employee are left in place.
func (s *RosterService) DeleteEmployee(ctx context.Context, managerID, employeeID int64) error {
	if err := s.checkOwnership(ctx, employeeID, managerID, "no permission to delete this employee"); err != nil {
		return err
	}
	if err := s.employees.Delete(ctx, employeeID); err != nil {
		return err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventEmployeeRemoved,
		ManagerID: managerID,
		Payload:   events.EmployeeRemovedPayload{EmployeeID: employeeID},
	})
	return nil
}

func (s *RosterService) checkOwnership(ctx context.Context, employeeID, managerID int64, denied string) error {
	if _, err := s.employees.GetForManager(ctx, employeeID, managerID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewForbidden(denied)
		}
		return err
	}
	return nil
}

func (s *RosterService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
