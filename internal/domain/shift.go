package domain

import "time"

// Shift assigns an employee reference to a day/type slot within a week.
// EmployeeID is an opaque string: callers may send a plain numeric roster id
// or a prefixed identifier for generated entries, and the store does not
// validate it against the employees table.
type Shift struct {
	ID            int64     `json:"id"`
	ManagerID     int64     `json:"manager_id"`
	EmployeeID    string    `json:"employee_id"`
	Day           string    `json:"day"`
	ShiftType     string    `json:"shift_type"`
	WeekStartDate string    `json:"week_start_date"`
	CreatedAt     time.Time `json:"created_at"`
}
