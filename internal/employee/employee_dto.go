package employee

import "leave-payroll/internal/events"

type CreateEmployeeRequest struct {
	Name       string `json:"name" binding:"required"`
	BaseSalary int64  `json:"base_salary" binding:"required,gt=0"`
	Role       string `json:"role" binding:"required,oneof=employee manager"`
}

type EmployeeResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	BaseSalary int64  `json:"base_salary"`
	Role       string `json:"role"`
}

func (r EmployeeResponse) ToPayload() events.EmployeePayload {
	return events.EmployeePayload{
		ID:         r.ID,
		Name:       r.Name,
		BaseSalary: r.BaseSalary,
		Role:       r.Role,
	}
}
