package salaryrecord

import "time"

// SalaryRecord is one computed pay outcome. Rows are only ever appended.
type SalaryRecord struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	EmployeeID  int64     `gorm:"not null;index:idx_salary_records_employee_created"`
	Month       string    `gorm:"type:char(7);not null"`
	FinalSalary int64     `gorm:"not null"`
	Deductions  int64     `gorm:"not null;default:0"`
	Reason      string    `gorm:"type:text;not null"`
	CreatedAt   time.Time `gorm:"not null;index:idx_salary_records_employee_created"`
}

func (SalaryRecord) TableName() string {
	return "salary_records"
}
