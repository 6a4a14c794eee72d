package leave

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindAll(ctx context.Context, employeeID *int64) ([]LeaveRequest, error)
	FindByID(ctx context.Context, id int64) (*LeaveRequest, error)
	// UpdateStatusIfPending moves a PENDING request to status and reports
	// whether a row changed. A request that is missing or already decided
	// is left alone.
	UpdateStatusIfPending(ctx context.Context, id int64, status string, at time.Time) (bool, error)
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

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindAll(ctx context.Context, employeeID *int64) ([]LeaveRequest, error) {
	db := r.db.WithContext(ctx)
	if employeeID != nil {
		db = db.Where("employee_id = ?", *employeeID)
	}

	var leaves []LeaveRequest
	err := db.Order("id DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*LeaveRequest, error) {
	var l LeaveRequest
	if err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) UpdateStatusIfPending(ctx context.Context, id int64, status string, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Updates(map[string]any{
			"status":     status,
			"updated_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
