package events

import "time"

const SalaryRecordedTopic = "hr.payroll.salary.recorded.v1"

const SalaryRecordedEventType = "salary_recorded"

// SalaryRecordedEvent is queued in the outbox together with the approval that
// produced the salary record, and relayed to Kafka by the worker.
type SalaryRecordedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	SalaryRecordID int64     `json:"salary_record_id"`
	LeaveRequestID int64     `json:"leave_request_id"`
	EmployeeID     int64     `json:"employee_id"`
	Month          string    `json:"month"`
	FinalSalary    int64     `json:"final_salary"`
	Deductions     int64     `json:"deductions"`
	Reason         string    `json:"reason"`
	OccurredAt     time.Time `json:"occurred_at"`
}
