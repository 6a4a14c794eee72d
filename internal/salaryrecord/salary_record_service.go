package salaryrecord

import (
	"context"

	salaryrecorderrors "leave-payroll/internal/salaryrecord/errors"

	"go.uber.org/zap"
)

type Service interface {
	GetAll(ctx context.Context, employeeID *int64) ([]SalaryRecordResponse, error)
	GetLatest(ctx context.Context, employeeID int64) (SalaryRecordResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salaryrecord.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salaryrecord.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context, employeeID *int64) ([]SalaryRecordResponse, error) {
	if employeeID != nil && *employeeID <= 0 {
		return nil, salaryrecorderrors.ErrInvalidEmployeeID
	}

	records, err := s.repo.FindAll(ctx, employeeID)
	if err != nil {
		s.logger.Error("list salary records failed", zap.Error(err))
		return nil, MapRepositoryError(err)
	}
	return toListResponse(records), nil
}

// GetLatest returns the most recently created record of one employee. Several
// records may share a month, the newest one wins.
func (s *service) GetLatest(ctx context.Context, employeeID int64) (SalaryRecordResponse, error) {
	s.logger.Debug("latest salary record requested", zap.Int64("employee_id", employeeID))
	if employeeID <= 0 {
		return SalaryRecordResponse{}, salaryrecorderrors.ErrInvalidEmployeeID
	}

	rec, err := s.repo.FindLatestByEmployee(ctx, employeeID)
	if err != nil {
		return SalaryRecordResponse{}, MapRepositoryError(err)
	}
	return ToResponse(*rec), nil
}
