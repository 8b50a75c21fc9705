package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleIDUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		zero bool
	}{
		{"numeric id", `{"employeeId": 17}`, "17", false},
		{"string id", `{"employeeId": "17"}`, "17", false},
		{"prefixed id", `{"employeeId": "gen-abc123"}`, "gen-abc123", false},
		{"null", `{"employeeId": null}`, "", true},
		{"empty string", `{"employeeId": ""}`, "", true},
		{"zero number", `{"employeeId": 0}`, "", true},
		{"absent", `{}`, "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req CreateShiftRequest
			require.NoError(t, json.Unmarshal([]byte(tc.in), &req))
			assert.Equal(t, tc.want, req.EmployeeID.String())
			assert.Equal(t, tc.zero, req.EmployeeID.IsZero())
		})
	}
}

func TestFlexibleIDRejectsNonScalar(t *testing.T) {
	var req CreateShiftRequest
	assert.Error(t, json.Unmarshal([]byte(`{"employeeId": {"id": 1}}`), &req))
}
