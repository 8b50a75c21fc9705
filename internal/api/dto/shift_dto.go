package dto

import (
	"encoding/json"
	"strings"
)

// FlexibleID accepts a JSON string or number and normalizes it to a string.
// Shift employee references arrive both ways: numeric roster ids and
// prefixed identifiers for generated entries. JSON null, the empty string
// and a bare 0 all normalize to "", which callers treat as missing.
type FlexibleID string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == `""` || trimmed == "0" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleID(n.String())
	return nil
}

// String returns the normalized identifier.
func (f FlexibleID) String() string {
	return string(f)
}

// IsZero reports whether the reference is missing.
func (f FlexibleID) IsZero() bool {
	return f == ""
}

// CreateShiftRequest payload for pinning an employee onto a weekly slot.
type CreateShiftRequest struct {
	EmployeeID    FlexibleID `json:"employeeId"`
	Day           string     `json:"day"`
	ShiftType     string     `json:"shiftType"`
	WeekStartDate string     `json:"weekStartDate"`
}
