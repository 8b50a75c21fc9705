package domain

// Employee is a roster entry owned by exactly one manager. Rows serialize
// with their column names, matching the wire format clients already consume.
type Employee struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Phone     *string `json:"phone"`
	ManagerID int64   `json:"manager_id"`
}
