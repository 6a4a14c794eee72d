package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind names a change broadcast to live observers.
type Kind string

const (
	KindLeaveUpdated    Kind = "LEAVE_UPDATED"
	KindSalaryUpdated   Kind = "SALARY_UPDATED"
	KindEmployeeUpdated Kind = "EMPLOYEE_UPDATED"
)

// Payload is implemented only by the payload types below, one per Kind.
type Payload interface {
	kind() Kind
}

type LeavePayload struct {
	ID         int64  `json:"id"`
	EmployeeID int64  `json:"employee_id"`
	LeaveDays  int    `json:"leave_days"`
	LeaveType  string `json:"leave_type"`
	Status     string `json:"status"`
}

type SalaryPayload struct {
	ID          int64     `json:"id"`
	EmployeeID  int64     `json:"employee_id"`
	Month       string    `json:"month"`
	FinalSalary int64     `json:"final_salary"`
	Deductions  int64     `json:"deductions"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
}

type EmployeePayload struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	BaseSalary int64  `json:"base_salary"`
	Role       string `json:"role"`
}

func (LeavePayload) kind() Kind    { return KindLeaveUpdated }
func (SalaryPayload) kind() Kind   { return KindSalaryUpdated }
func (EmployeePayload) kind() Kind { return KindEmployeeUpdated }

// Change is the message observers receive: {"type": KIND, "data": payload}.
type Change struct {
	Kind Kind    `json:"type"`
	Data Payload `json:"data"`
}

func LeaveUpdated(p LeavePayload) Change {
	return Change{Kind: p.kind(), Data: p}
}

func SalaryUpdated(p SalaryPayload) Change {
	return Change{Kind: p.kind(), Data: p}
}

func EmployeeUpdated(p EmployeePayload) Change {
	return Change{Kind: p.kind(), Data: p}
}

func (c *Change) UnmarshalJSON(b []byte) error {
	var raw struct {
		Kind Kind            `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var (
		p   Payload
		err error
	)
	switch raw.Kind {
	case KindLeaveUpdated:
		var v LeavePayload
		err = json.Unmarshal(raw.Data, &v)
		p = v
	case KindSalaryUpdated:
		var v SalaryPayload
		err = json.Unmarshal(raw.Data, &v)
		p = v
	case KindEmployeeUpdated:
		var v EmployeePayload
		err = json.Unmarshal(raw.Data, &v)
		p = v
	default:
		return fmt.Errorf("unknown change kind %q", raw.Kind)
	}
	if err != nil {
		return fmt.Errorf("decode %s payload: %w", raw.Kind, err)
	}

	c.Kind = raw.Kind
	c.Data = p
	return nil
}
