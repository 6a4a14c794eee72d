package leave

import (
	"errors"

	leaveerrors "leave-payroll/internal/leave/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return leaveerrors.ErrLeaveNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23514" {
		switch pgErr.ConstraintName {
		case "chk_leave_requests_leave_days":
			return leaveerrors.ErrInvalidLeaveDays
		case "chk_leave_requests_leave_type":
			return leaveerrors.ErrInvalidLeaveType
		case "chk_leave_requests_status":
			return leaveerrors.ErrInvalidStatusTransition
		}
	}

	return err
}
