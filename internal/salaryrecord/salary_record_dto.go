package salaryrecord

import (
	"time"

	"leave-payroll/internal/events"
)

type SalaryRecordResponse struct {
	ID          int64     `json:"id"`
	EmployeeID  int64     `json:"employee_id"`
	Month       string    `json:"month"`
	FinalSalary int64     `json:"final_salary"`
	Deductions  int64     `json:"deductions"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r SalaryRecordResponse) ToPayload() events.SalaryPayload {
	return events.SalaryPayload{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		Month:       r.Month,
		FinalSalary: r.FinalSalary,
		Deductions:  r.Deductions,
		Reason:      r.Reason,
		CreatedAt:   r.CreatedAt,
	}
}

func ToResponse(r SalaryRecord) SalaryRecordResponse {
	return SalaryRecordResponse{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		Month:       r.Month,
		FinalSalary: r.FinalSalary,
		Deductions:  r.Deductions,
		Reason:      r.Reason,
		CreatedAt:   r.CreatedAt,
	}
}

func toListResponse(records []SalaryRecord) []SalaryRecordResponse {
	resp := make([]SalaryRecordResponse, len(records))
	for i, r := range records {
		resp[i] = ToResponse(r)
	}
	return resp
}
