package service

import (
	"context"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/david8219501/leader-app-server-08-09-25/internal/domain"
	"github.com/david8219501/leader-app-server-08-09-25/internal/events"
)

type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

type stubShiftRepo struct {
	nextID int64
	rows   []domain.Shift
}

func (r *stubShiftRepo) Create(_ context.Context, shift *domain.Shift) error {
	r.nextID++
	shift.ID = r.nextID
	r.rows = append(r.rows, *shift)
	return nil
}

func (r *stubShiftRepo) ListWeek(_ context.Context, managerID int64, weekStartDate string) ([]domain.Shift, error) {
	out := []domain.Shift{}
	for _, row := range r.rows {
		if row.ManagerID == managerID && row.WeekStartDate == weekStartDate {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *stubShiftRepo) DeleteSlot(_ context.Context, managerID int64, weekStartDate, day, shiftType string) error {
	kept := r.rows[:0]
	for _, row := range r.rows {
		if row.ManagerID == managerID && row.WeekStartDate == weekStartDate && row.Day == day && row.ShiftType == shiftType {
			continue
		}
		kept = append(kept, row)
	}
	r.rows = kept
	return nil
}

func (r *stubShiftRepo) DeleteWeek(_ context.Context, managerID int64, weekStartDate string) error {
	kept := r.rows[:0]
	for _, row := range r.rows {
		if row.ManagerID == managerID && row.WeekStartDate == weekStartDate {
			continue
		}
		kept = append(kept, row)
	}
	r.rows = kept
	return nil
}

func TestCreateShiftPublishesEvent(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	svc := NewScheduleService(&stubShiftRepo{}, dispatcher)

	shift, err := svc.CreateShift(context.Background(), 1, "17", "Sunday", "morning", "2024-01-07")
	require.NoError(t, err)
	assert.Equal(t, int64(1), shift.ID)

	require.Len(t, dispatcher.events, 1)
	event := dispatcher.events[0]
	assert.Equal(t, events.EventShiftCreated, event.Type)
	assert.Equal(t, int64(1), event.ManagerID)
	assert.NotEmpty(t, event.ID)
	payload, ok := event.Payload.(events.ShiftCreatedPayload)
	require.True(t, ok)
	assert.Equal(t, "17", payload.EmployeeID)
}

func TestClearSlotAndResetWeekAreIdempotent(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	repo := &stubShiftRepo{}
	svc := NewScheduleService(repo, dispatcher)

	_, err := svc.CreateShift(context.Background(), 1, "17", "Sunday", "morning", "2024-01-07")
	require.NoError(t, err)

	require.NoError(t, svc.ClearSlot(context.Background(), 1, "2024-01-07", "Sunday", "morning"))
	require.NoError(t, svc.ClearSlot(context.Background(), 1, "2024-01-07", "Sunday", "morning"))

	require.NoError(t, svc.ResetWeek(context.Background(), 1, "2024-01-07"))
	require.NoError(t, svc.ResetWeek(context.Background(), 1, "2024-01-07"))

	rows, err := svc.ListWeek(context.Background(), 1, "2024-01-07")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

type missingEmployeeRepo struct{}

func (missingEmployeeRepo) Create(context.Context, *domain.Employee) error { return nil }
func (missingEmployeeRepo) ListByManager(context.Context, int64) ([]domain.Employee, error) {
	return nil, nil
}
func (missingEmployeeRepo) GetForManager(context.Context, int64, int64) (*domain.Employee, error) {
	return nil, pgx.ErrNoRows
}
func (missingEmployeeRepo) Update(context.Context, *domain.Employee) error { return nil }
func (missingEmployeeRepo) Delete(context.Context, int64) error            { return nil }

func TestRosterMutationsDeniedWithoutOwnership(t *testing.T) {
	svc := NewRosterService(missingEmployeeRepo{}, nil)

	err := svc.UpdateEmployee(context.Background(), 1, 99, "Dana", "Levi", nil)
	assert.EqualError(t, err, "no permission to update this employee")

	err = svc.DeleteEmployee(context.Background(), 1, 99)
	assert.EqualError(t, err, "no permission to delete this employee")
}
