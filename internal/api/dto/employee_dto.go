package dto

// EmployeeRequest payload for adding or updating a roster entry.
type EmployeeRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}
