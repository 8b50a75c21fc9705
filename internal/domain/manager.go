package domain

// Manager is the tenant account owning a roster and its weekly schedules.
type Manager struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Password  string `json:"-"`
}
