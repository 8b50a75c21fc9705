package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventManagerRegistered EventType = "manager_registered"
	EventEmployeeAdded     EventType = "employee_added"
	EventEmployeeRemoved   EventType = "employee_removed"
	EventShiftCreated      EventType = "shift_created"
	EventShiftSlotCleared  EventType = "shift_slot_cleared"
	EventWeekReset         EventType = "week_reset"
)

// Event represents a domain event emitted by services. ManagerID is the
// tenant the event belongs to.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ManagerID int64       `json:"manager_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ManagerRegisteredPayload payload.
type ManagerRegisteredPayload struct {
	Email string `json:"email"`
}

// EmployeeAddedPayload payload.
type EmployeeAddedPayload struct {
	EmployeeID int64  `json:"employee_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
}

// EmployeeRemovedPayload payload.
type EmployeeRemovedPayload struct {
	EmployeeID int64 `json:"employee_id"`
}

// ShiftCreatedPayload payload.
type ShiftCreatedPayload struct {
	ShiftID       int64  `json:"shift_id"`
	EmployeeID    string `json:"employee_id"`
	Day           string `json:"day"`
	ShiftType     string `json:"shift_type"`
	WeekStartDate string `json:"week_start_date"`
}

// ShiftSlotClearedPayload payload.
type ShiftSlotClearedPayload struct {
	Day           string `json:"day"`
	ShiftType     string `json:"shift_type"`
	WeekStartDate string `json:"week_start_date"`
}

// WeekResetPayload payload.
type WeekResetPayload struct {
	WeekStartDate string `json:"week_start_date"`
}
