package leave

import "time"

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

const (
	MinLeaveDays = 1
	MaxLeaveDays = 30
)

// LeaveRequest.EmployeeID has no foreign key; the service checks it on submit.
type LeaveRequest struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	EmployeeID int64     `gorm:"not null;index:idx_leave_requests_employee"`
	LeaveDays  int       `gorm:"not null"`
	LeaveType  string    `gorm:"type:varchar(10);not null"`
	Status     string    `gorm:"type:varchar(10);not null;default:'PENDING'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// IsTerminal reports whether no further transition is allowed from status.
func IsTerminal(status string) bool {
	return status == StatusApproved || status == StatusRejected
}

// canTransition allows PENDING -> APPROVED and PENDING -> REJECTED only.
func canTransition(from, to string) bool {
	return from == StatusPending && (to == StatusApproved || to == StatusRejected)
}
