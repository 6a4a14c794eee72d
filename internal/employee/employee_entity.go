package employee

import "time"

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

type Employee struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"type:text;not null"`
	BaseSalary int64  `gorm:"type:bigint;not null"`
	Role       string `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
}

func (Employee) TableName() string {
	return "employees"
}
