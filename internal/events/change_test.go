package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"leave-payroll/internal/events"

	"github.com/stretchr/testify/assert"
)

func TestChange_WireShape(t *testing.T) {
	change := events.LeaveUpdated(events.LeavePayload{
		ID:         7,
		EmployeeID: 3,
		LeaveDays:  2,
		LeaveType:  "PAID",
		Status:     "APPROVED",
	})

	b, err := json.Marshal(change)
	assert.NoError(t, err)
	assert.JSONEq(t,
		`{"type":"LEAVE_UPDATED","data":{"id":7,"employee_id":3,"leave_days":2,"leave_type":"PAID","status":"APPROVED"}}`,
		string(b),
	)
}

func TestChange_UnmarshalRestoresPayloadType(t *testing.T) {
	createdAt := time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)
	in := events.SalaryUpdated(events.SalaryPayload{
		ID:          1,
		EmployeeID:  2,
		Month:       "2026-05",
		FinalSalary: 5000,
		Deductions:  1000,
		Reason:      "Deduction for 5 days UNPAID leave",
		CreatedAt:   createdAt,
	})

	b, err := json.Marshal(in)
	assert.NoError(t, err)

	var out events.Change
	assert.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, events.KindSalaryUpdated, out.Kind)

	payload, ok := out.Data.(events.SalaryPayload)
	assert.True(t, ok)
	assert.Equal(t, int64(5000), payload.FinalSalary)
	assert.True(t, createdAt.Equal(payload.CreatedAt))
}

func TestChange_UnmarshalUnknownKind(t *testing.T) {
	var out events.Change
	err := json.Unmarshal([]byte(`{"type":"SOMETHING","data":{}}`), &out)
	assert.Error(t, err)
}
