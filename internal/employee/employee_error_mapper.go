package employee

import (
	"errors"

	employeeerrors "leave-payroll/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23514" {
		switch pgErr.ConstraintName {
		case "chk_employees_base_salary":
			return employeeerrors.ErrInvalidBaseSalary
		case "chk_employees_role":
			return employeeerrors.ErrInvalidRole
		}
	}

	return err
}
