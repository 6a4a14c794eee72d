package payroll_test

import (
	"math"
	"testing"

	"leave-payroll/internal/payroll"

	"github.com/stretchr/testify/assert"
)

var sampleSalaries = []int64{1, 29, 30, 31, 4500, 5000, 6000, 7000, 9999, 12345678}

func TestComputeDeduction_PaidNeverDeducts(t *testing.T) {
	for _, base := range sampleSalaries {
		for days := 1; days <= 30; days++ {
			d, err := payroll.ComputeDeduction(base, payroll.LeaveTypePaid, days)

			assert.NoError(t, err)
			assert.Equal(t, int64(0), d.Amount)
			assert.Equal(t, base, d.FinalSalary)
		}
	}
}

func TestComputeDeduction_UnpaidIsFloorOfDailyRate(t *testing.T) {
	for _, base := range sampleSalaries {
		for days := 1; days <= 30; days++ {
			d, err := payroll.ComputeDeduction(base, payroll.LeaveTypeUnpaid, days)

			assert.NoError(t, err)
			// exact floor(base/30*days) for positive integers
			assert.Equal(t, base*int64(days)/30, d.Amount, "base=%d days=%d", base, days)
			assert.Equal(t, base-d.Amount, d.FinalSalary)
			assert.GreaterOrEqual(t, d.FinalSalary, int64(0))
		}
	}
}

func TestComputeDeduction_MatchesRealValuedRate(t *testing.T) {
	// rates where float division is exact enough to compare against
	for _, base := range []int64{3000, 4500, 6000, 9000} {
		for days := 1; days <= 30; days++ {
			d, err := payroll.ComputeDeduction(base, payroll.LeaveTypeUnpaid, days)
			assert.NoError(t, err)

			want := int64(math.Floor(float64(base) / 30 * float64(days)))
			assert.Equal(t, want, d.Amount)
		}
	}
}

func TestComputeDeduction_Scenarios(t *testing.T) {
	t.Run("unpaid 5 days on 6000", func(t *testing.T) {
		d, err := payroll.ComputeDeduction(6000, payroll.LeaveTypeUnpaid, 5)

		assert.NoError(t, err)
		assert.Equal(t, int64(1000), d.Amount)
		assert.Equal(t, int64(5000), d.FinalSalary)
		assert.Equal(t, "Deduction for 5 days UNPAID leave", d.Reason)
	})

	t.Run("paid 3 days on 4500", func(t *testing.T) {
		d, err := payroll.ComputeDeduction(4500, payroll.LeaveTypePaid, 3)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), d.Amount)
		assert.Equal(t, int64(4500), d.FinalSalary)
		assert.Equal(t, "No deduction for 3 days PAID leave", d.Reason)
	})

	t.Run("rate with repeating decimal", func(t *testing.T) {
		// 7000/30 = 233.33..; 3 days is exactly 700
		d, err := payroll.ComputeDeduction(7000, payroll.LeaveTypeUnpaid, 3)

		assert.NoError(t, err)
		assert.Equal(t, int64(700), d.Amount)
		assert.Equal(t, int64(6300), d.FinalSalary)
	})

	t.Run("out of range days are not clamped", func(t *testing.T) {
		d, err := payroll.ComputeDeduction(3000, payroll.LeaveTypeUnpaid, 45)

		assert.NoError(t, err)
		assert.Equal(t, int64(4500), d.Amount)
		assert.Equal(t, int64(-1500), d.FinalSalary)
	})

	t.Run("unknown leave type", func(t *testing.T) {
		_, err := payroll.ComputeDeduction(3000, "SICK", 1)

		assert.ErrorIs(t, err, payroll.ErrUnknownLeaveType)
	})
}

func TestIsValidLeaveType(t *testing.T) {
	assert.True(t, payroll.IsValidLeaveType("PAID"))
	assert.True(t, payroll.IsValidLeaveType("UNPAID"))
	assert.False(t, payroll.IsValidLeaveType("paid"))
	assert.False(t, payroll.IsValidLeaveType(""))
}
