package leave_test

import (
	"context"
	"testing"

	"leave-payroll/internal/leave"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestLeaveRepository_UpdateStatusIfPending(t *testing.T) {
	cases := []struct {
		name     string
		affected int64
		want     bool
	}{
		{"pending row updated", 1, true},
		{"row already decided", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sqlDB, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer sqlDB.Close()
			db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{SkipDefaultTransaction: true})
			require.NoError(t, err)

			mock.ExpectExec(`UPDATE "leave_requests" SET .* WHERE id = \$\d+ AND status = \$\d+`).
				WithArgs(leave.StatusApproved, sqlmock.AnyArg(), int64(5), leave.StatusPending).
				WillReturnResult(sqlmock.NewResult(0, tc.affected))

			ok, err := leave.NewRepository(db).UpdateStatusIfPending(context.Background(), 5, leave.StatusApproved, fixedNow)

			assert.NoError(t, err)
			assert.Equal(t, tc.want, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
