package salaryrecord

import (
	"errors"

	salaryrecorderrors "leave-payroll/internal/salaryrecord/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapRepositoryError is exported for the approval workflow, which appends
// records through its own transaction.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salaryrecorderrors.ErrSalaryRecordNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23514" && pgErr.ConstraintName == "chk_salary_records_deductions" {
		return salaryrecorderrors.ErrNegativeDeduction
	}

	return err
}
