package salaryrecord

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_record_repo.go -destination=mock/salary_record_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Append(ctx context.Context, r *SalaryRecord) error
	FindAll(ctx context.Context, employeeID *int64) ([]SalaryRecord, error)
	FindLatestByEmployee(ctx context.Context, employeeID int64) (*SalaryRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Append(ctx context.Context, rec *SalaryRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// FindAll returns the newest records first. The id tiebreak keeps records
// created within the same instant in append order.
func (r *repository) FindAll(ctx context.Context, employeeID *int64) ([]SalaryRecord, error) {
	db := r.db.WithContext(ctx)
	if employeeID != nil {
		db = db.Where("employee_id = ?", *employeeID)
	}

	var records []SalaryRecord
	err := db.Order("created_at DESC, id DESC").Find(&records).Error
	return records, err
}

func (r *repository) FindLatestByEmployee(ctx context.Context, employeeID int64) (*SalaryRecord, error) {
	var rec SalaryRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC, id DESC").
		Take(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}
