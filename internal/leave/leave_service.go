package leave

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"leave-payroll/internal/employee"
	"leave-payroll/internal/events"
	leaveerrors "leave-payroll/internal/leave/errors"
	"leave-payroll/internal/messaging/kafka"
	"leave-payroll/internal/payroll"
	"leave-payroll/internal/salaryrecord"
	"leave-payroll/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, req SubmitLeaveRequest) (Outcome, error)
	Approve(ctx context.Context, id int64) (Outcome, error)
	Reject(ctx context.Context, id int64) (Outcome, error)
	GetAll(ctx context.Context, employeeID *int64) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id int64) (LeaveResponse, error)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	employees employee.Repository
	salaries  salaryrecord.Repository
	outbox    kafka.OutboxRepository
	clock     func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	employees employee.Repository,
	salaries salaryrecord.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithClock(db, repo, employees, salaries, outbox, time.Now, logger...)
}

// NewServiceWithClock is NewService with the time source used for status
// timestamps and the salary month. A nil outbox disables the Kafka relay.
func NewServiceWithClock(
	db *gorm.DB,
	repo Repository,
	employees employee.Repository,
	salaries salaryrecord.Repository,
	outbox kafka.OutboxRepository,
	clock func() time.Time,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if clock == nil {
		clock = time.Now
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		salaries:  salaries,
		outbox:    outbox,
		clock:     clock,
		logger:    l,
	}
}

func (s *service) Submit(ctx context.Context, req SubmitLeaveRequest) (Outcome, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit leave requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", req.EmployeeID),
		zap.String("leave_type", req.LeaveType),
		zap.Int("leave_days", req.LeaveDays),
	)

	if err := validateSubmitRequest(req); err != nil {
		s.logger.Warn("submit leave validation failed", zap.String("request_id", rid), zap.Error(err))
		return Outcome{}, err
	}

	if _, err := s.employees.FindByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("submit leave for unknown employee",
				zap.String("request_id", rid),
				zap.Int64("employee_id", req.EmployeeID),
			)
			return Outcome{}, leaveerrors.ErrUnknownEmployee
		}
		s.logger.Error("submit leave employee lookup failed", zap.String("request_id", rid), zap.Error(err))
		return Outcome{}, err
	}

	now := s.clock().UTC()
	l := &LeaveRequest{
		EmployeeID: req.EmployeeID,
		LeaveDays:  req.LeaveDays,
		LeaveType:  req.LeaveType,
		Status:     StatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, l); err != nil {
		s.logger.Error("submit leave persist failed", zap.String("request_id", rid), zap.Error(err))
		return Outcome{}, mapRepositoryError(err)
	}

	s.logger.Info("submit leave success",
		zap.String("request_id", rid),
		zap.Int64("leave_id", l.ID),
		zap.Int64("employee_id", l.EmployeeID),
	)

	resp := mapToResponse(*l)
	return Outcome{
		Leave:   resp,
		Changes: []events.Change{events.LeaveUpdated(resp.ToPayload())},
	}, nil
}

// Approve decides a PENDING request and records its payroll effect. The
// status change, the salary record and the outbox row commit together.
func (s *service) Approve(ctx context.Context, id int64) (Outcome, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("approve leave requested", zap.String("request_id", rid), zap.Int64("leave_id", id))

	if id <= 0 {
		return Outcome{}, leaveerrors.ErrInvalidLeaveID
	}

	now := s.clock().UTC()
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("approve leave begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return Outcome{}, tx.Error
	}
	defer tx.Rollback()

	l, err := s.transition(ctx, tx, id, StatusApproved, now)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{Leave: mapToResponse(*l)}
	out.Changes = append(out.Changes, events.LeaveUpdated(out.Leave.ToPayload()))

	rec, warning, err := s.recordSalary(ctx, tx, *l, now, rid)
	if err != nil {
		return Outcome{}, err
	}
	if warning != nil {
		s.logger.Warn("approve leave skipped payroll",
			zap.String("request_id", rid),
			zap.Int64("leave_id", warning.LeaveRequestID),
			zap.Int64("employee_id", warning.EmployeeID),
		)
		out.Warnings = append(out.Warnings, *warning)
	} else {
		resp := salaryrecord.ToResponse(*rec)
		out.Salary = &resp
		out.Changes = append(out.Changes, events.SalaryUpdated(resp.ToPayload()))
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("approve leave commit failed", zap.String("request_id", rid), zap.Int64("leave_id", id), zap.Error(err))
		return Outcome{}, err
	}

	fields := []zap.Field{
		zap.String("request_id", rid),
		zap.Int64("leave_id", id),
	}
	if out.Salary != nil {
		fields = append(fields,
			zap.Int64("salary_record_id", out.Salary.ID),
			zap.Int64("deductions", out.Salary.Deductions),
		)
	}
	s.logger.Info("approve leave success", fields...)

	return out, nil
}

func (s *service) Reject(ctx context.Context, id int64) (Outcome, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("reject leave requested", zap.String("request_id", rid), zap.Int64("leave_id", id))

	if id <= 0 {
		return Outcome{}, leaveerrors.ErrInvalidLeaveID
	}

	now := s.clock().UTC()
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("reject leave begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return Outcome{}, tx.Error
	}
	defer tx.Rollback()

	l, err := s.transition(ctx, tx, id, StatusRejected, now)
	if err != nil {
		return Outcome{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("reject leave commit failed", zap.String("request_id", rid), zap.Int64("leave_id", id), zap.Error(err))
		return Outcome{}, err
	}
	s.logger.Info("reject leave success", zap.String("request_id", rid), zap.Int64("leave_id", id))

	resp := mapToResponse(*l)
	return Outcome{
		Leave:   resp,
		Changes: []events.Change{events.LeaveUpdated(resp.ToPayload())},
	}, nil
}

func (s *service) GetAll(ctx context.Context, employeeID *int64) ([]LeaveResponse, error) {
	if employeeID != nil && *employeeID <= 0 {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}

	leaves, err := s.repo.FindAll(ctx, employeeID)
	if err != nil {
		s.logger.Error("list leaves failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (LeaveResponse, error) {
	if id <= 0 {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*l), nil
}

// transition moves request id from PENDING to target inside tx. The update
// is conditional on the stored status, so of two concurrent deciders only
// one gets a row back and the other sees ErrInvalidStatusTransition.
func (s *service) transition(ctx context.Context, tx *gorm.DB, id int64, target string, now time.Time) (*LeaveRequest, error) {
	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("load leave failed", zap.Int64("leave_id", id), zap.Error(err))
		}
		return nil, mapRepositoryError(err)
	}
	if !canTransition(l.Status, target) {
		s.logger.Warn("leave status transition refused",
			zap.Int64("leave_id", id),
			zap.String("from", l.Status),
			zap.String("to", target),
		)
		return nil, leaveerrors.ErrInvalidStatusTransition
	}

	updated, err := qtx.UpdateStatusIfPending(ctx, id, target, now)
	if err != nil {
		s.logger.Error("update leave status failed", zap.Int64("leave_id", id), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	if !updated {
		s.logger.Warn("leave decided concurrently", zap.Int64("leave_id", id), zap.String("to", target))
		return nil, leaveerrors.ErrInvalidStatusTransition
	}

	l.Status = target
	l.UpdatedAt = now
	return l, nil
}

// recordSalary appends the salary record for an approved leave and queues its
// outbox row. A vanished employee yields a warning instead of an error so the
// approval itself still commits.
func (s *service) recordSalary(ctx context.Context, tx *gorm.DB, l LeaveRequest, now time.Time, rid string) (*salaryrecord.SalaryRecord, *DanglingReferenceWarning, error) {
	emp, err := s.employees.WithTx(tx).FindByID(ctx, l.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &DanglingReferenceWarning{LeaveRequestID: l.ID, EmployeeID: l.EmployeeID}, nil
		}
		s.logger.Error("approve leave employee lookup failed", zap.Int64("employee_id", l.EmployeeID), zap.Error(err))
		return nil, nil, err
	}

	d, err := payroll.ComputeDeduction(emp.BaseSalary, l.LeaveType, l.LeaveDays)
	if err != nil {
		// the row passed validation on submit, so this is stored-data corruption
		s.logger.Error("compute deduction failed", zap.Int64("leave_id", l.ID), zap.Error(err))
		return nil, nil, fmt.Errorf("compute deduction for leave %d: %w", l.ID, err)
	}

	rec := &salaryrecord.SalaryRecord{
		EmployeeID:  emp.ID,
		Month:       now.Format("2006-01"),
		FinalSalary: d.FinalSalary,
		Deductions:  d.Amount,
		Reason:      d.Reason,
		CreatedAt:   now,
	}
	if err := s.salaries.WithTx(tx).Append(ctx, rec); err != nil {
		s.logger.Error("append salary record failed", zap.Int64("leave_id", l.ID), zap.Error(err))
		return nil, nil, salaryrecord.MapRepositoryError(err)
	}

	if s.outbox != nil {
		evt, err := kafka.NewOutboxEvent(
			rid,
			"salary_record",
			strconv.FormatInt(rec.ID, 10),
			events.SalaryRecordedEventType,
			events.SalaryRecordedTopic,
			events.SalaryRecordedEvent{
				EventType:      events.SalaryRecordedEventType,
				RequestID:      rid,
				SalaryRecordID: rec.ID,
				LeaveRequestID: l.ID,
				EmployeeID:     rec.EmployeeID,
				Month:          rec.Month,
				FinalSalary:    rec.FinalSalary,
				Deductions:     rec.Deductions,
				Reason:         rec.Reason,
				OccurredAt:     now,
			},
		)
		if err != nil {
			return nil, nil, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, evt); err != nil {
			s.logger.Error("enqueue salary recorded event failed", zap.Int64("salary_record_id", rec.ID), zap.Error(err))
			return nil, nil, err
		}
	}

	return rec, nil, nil
}

func validateSubmitRequest(req SubmitLeaveRequest) error {
	if req.EmployeeID <= 0 {
		return leaveerrors.ErrInvalidEmployeeID
	}
	if req.LeaveDays < MinLeaveDays || req.LeaveDays > MaxLeaveDays {
		return leaveerrors.ErrInvalidLeaveDays
	}
	if !payroll.IsValidLeaveType(req.LeaveType) {
		return leaveerrors.ErrInvalidLeaveType
	}
	return nil
}
