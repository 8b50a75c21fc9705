package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/david8219501/leader-app-server-08-09-25/internal/domain"
	"github.com/david8219501/leader-app-server-08-09-25/internal/events"
	"github.com/david8219501/leader-app-server-08-09-25/internal/repository"
)

// ScheduleService manages weekly shift assignments. The employee reference
// on a shift is accepted as-is without a roster lookup, and identical
// creates stack duplicate rows; both behaviors are part of the contract the
// frontend depends on.
type ScheduleService struct {
	shifts     repository.ShiftRepository
	dispatcher events.Dispatcher
}

// NewScheduleService builds the service.
func NewScheduleService(shifts repository.ShiftRepository, dispatcher events.Dispatcher) *ScheduleService {
	return &ScheduleService{shifts: shifts, dispatcher: dispatcher}
}

// CreateShift inserts a shift row for the manager.
func (s *ScheduleService) CreateShift(ctx context.Context, managerID int64, employeeID, day, shiftType, weekStartDate string) (*domain.Shift, error) {
	shift := &domain.Shift{
		ManagerID:     managerID,
		EmployeeID:    employeeID,
		Day:           day,
		ShiftType:     shiftType,
		WeekStartDate: weekStartDate,
	}
	if err := s.shifts.Create(ctx, shift); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventShiftCreated,
		ManagerID: managerID,
		Payload: events.ShiftCreatedPayload{
			ShiftID:       shift.ID,
			EmployeeID:    shift.EmployeeID,
			Day:           shift.Day,
			ShiftType:     shift.ShiftType,
			WeekStartDate: shift.WeekStartDate,
		},
	})
	return shift, nil
}

// ListWeek returns the manager's shifts for one week.
func (s *ScheduleService) ListWeek(ctx context.Context, managerID int64, weekStartDate string) ([]domain.Shift, error) {
	return s.shifts.ListWeek(ctx, managerID, weekStartDate)
}

// ClearSlot deletes every shift matching the four-part slot key. Zero
// matches is a successful no-op.
func (s *ScheduleService) ClearSlot(ctx context.Context, managerID int64, weekStartDate, day, shiftType string) error {
	if err := s.shifts.DeleteSlot(ctx, managerID, weekStartDate, day, shiftType); err != nil {
		return err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventShiftSlotCleared,
		ManagerID: managerID,
		Payload: events.ShiftSlotClearedPayload{
			Day:           day,
			ShiftType:     shiftType,
			WeekStartDate: weekStartDate,
		},
	})
	return nil
}

// ResetWeek deletes every shift for the manager's week. Idempotent like
// ClearSlot.
func (s *ScheduleService) ResetWeek(ctx context.Context, managerID int64, weekStartDate string) error {
	if err := s.shifts.DeleteWeek(ctx, managerID, weekStartDate); err != nil {
		return err
	}

	s.publishEvent(ctx, events.Event{
		Type:      events.EventWeekReset,
		ManagerID: managerID,
		Payload:   events.WeekResetPayload{WeekStartDate: weekStartDate},
	})
	return nil
}

func (s *ScheduleService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
