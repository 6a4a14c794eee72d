package salaryrecorderrors

import (
	"net/http"

	"leave-payroll/internal/shared/apperror"
)

var (
	ErrSalaryRecordNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary record not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmployeeIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"employee_id is required",
		http.StatusBadRequest,
	)
	ErrNegativeDeduction = apperror.New(
		apperror.CodeInvalidInput,
		"deductions must not be negative",
		http.StatusBadRequest,
	)
)
