package leave

import (
	"fmt"
	"time"

	"leave-payroll/internal/events"
	"leave-payroll/internal/salaryrecord"
)

type SubmitLeaveRequest struct {
	EmployeeID int64  `json:"employee_id" binding:"required,gt=0"`
	LeaveType  string `json:"leave_type" binding:"required,oneof=PAID UNPAID"`
	LeaveDays  int    `json:"leave_days" binding:"required,min=1,max=30"`
}

type LeaveResponse struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	LeaveDays  int       `json:"leave_days"`
	LeaveType  string    `json:"leave_type"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (r LeaveResponse) ToPayload() events.LeavePayload {
	return events.LeavePayload{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		LeaveDays:  r.LeaveDays,
		LeaveType:  r.LeaveType,
		Status:     r.Status,
	}
}

// ApproveResponse is the approval result: the leave plus the salary record it
// produced, if any.
type ApproveResponse struct {
	Leave        LeaveResponse                      `json:"leave"`
	SalaryRecord *salaryrecord.SalaryRecordResponse `json:"salary_record,omitempty"`
}

// DanglingReferenceWarning means the leave was approved but its employee no
// longer exists, so no salary record was written.
type DanglingReferenceWarning struct {
	LeaveRequestID int64
	EmployeeID     int64
}

func (w DanglingReferenceWarning) String() string {
	return fmt.Sprintf("employee %d referenced by leave request %d not found, payroll skipped", w.EmployeeID, w.LeaveRequestID)
}

// Outcome is what a state change produced. Changes are listed in the order
// they must be published.
type Outcome struct {
	Leave    LeaveResponse
	Salary   *salaryrecord.SalaryRecordResponse
	Warnings []DanglingReferenceWarning
	Changes  []events.Change
}

func (o Outcome) WarningMessages() []string {
	if len(o.Warnings) == 0 {
		return nil
	}
	msgs := make([]string, len(o.Warnings))
	for i, w := range o.Warnings {
		msgs[i] = w.String()
	}
	return msgs
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID,
		EmployeeID: l.EmployeeID,
		LeaveDays:  l.LeaveDays,
		LeaveType:  l.LeaveType,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
	}
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
