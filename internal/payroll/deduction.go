// Package payroll computes the pay impact of an approved leave request.
// It holds no state and does no I/O.
package payroll

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	LeaveTypePaid   = "PAID"
	LeaveTypeUnpaid = "UNPAID"
)

// DaysPerMonth is the divisor that turns a monthly base salary into a daily rate.
const DaysPerMonth = 30

var ErrUnknownLeaveType = errors.New("unknown leave type")

type Deduction struct {
	Amount      int64
	FinalSalary int64
	Reason      string
}

func IsValidLeaveType(leaveType string) bool {
	return leaveType == LeaveTypePaid || leaveType == LeaveTypeUnpaid
}

// ComputeDeduction applies the leave to one pay period of baseSalary.
//
// UNPAID leave costs floor(baseSalary / 30 * leaveDays); PAID leave costs
// nothing. The result is not clamped: leaveDays above 30 can drive
// FinalSalary negative, callers validate the range.
func ComputeDeduction(baseSalary int64, leaveType string, leaveDays int) (Deduction, error) {
	switch leaveType {
	case LeaveTypeUnpaid:
		// multiply before dividing so the daily rate never gets rounded
		amount := decimal.NewFromInt(baseSalary).
			Mul(decimal.NewFromInt(int64(leaveDays))).
			Div(decimal.NewFromInt(DaysPerMonth)).
			Floor().
			IntPart()
		return Deduction{
			Amount:      amount,
			FinalSalary: baseSalary - amount,
			Reason:      fmt.Sprintf("Deduction for %d days UNPAID leave", leaveDays),
		}, nil
	case LeaveTypePaid:
		return Deduction{
			Amount:      0,
			FinalSalary: baseSalary,
			Reason:      fmt.Sprintf("No deduction for %d days PAID leave", leaveDays),
		}, nil
	default:
		return Deduction{}, fmt.Errorf("%w: %q", ErrUnknownLeaveType, leaveType)
	}
}
