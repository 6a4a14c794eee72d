package leave_test

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"sync"
	"testing"
	"time"

	"leave-payroll/internal/employee"
	"leave-payroll/internal/events"
	"leave-payroll/internal/leave"
	leaveerrors "leave-payroll/internal/leave/errors"
	"leave-payroll/internal/messaging/kafka"
	kafkaMock "leave-payroll/internal/messaging/kafka/mock"
	"leave-payroll/internal/payroll"
	"leave-payroll/internal/salaryrecord"
	"leave-payroll/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var fixedNow = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

// --- in-memory ledgers ---

type fakeLeaveRepo struct {
	mu     sync.Mutex
	rows   map[int64]leave.LeaveRequest
	nextID int64

	// UpdateStatusIfPendingFn overrides the conditional update when set.
	UpdateStatusIfPendingFn func(ctx context.Context, id int64, status string, at time.Time) (bool, error)
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{rows: map[int64]leave.LeaveRequest{}}
}

func (f *fakeLeaveRepo) WithTx(tx *gorm.DB) leave.Repository { return f }

func (f *fakeLeaveRepo) Create(ctx context.Context, l *leave.LeaveRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	l.ID = f.nextID
	f.rows[l.ID] = *l
	return nil
}

func (f *fakeLeaveRepo) FindAll(ctx context.Context, employeeID *int64) ([]leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []leave.LeaveRequest
	for _, l := range f.rows {
		if employeeID == nil || l.EmployeeID == *employeeID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (f *fakeLeaveRepo) FindByID(ctx context.Context, id int64) (*leave.LeaveRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &l, nil
}

func (f *fakeLeaveRepo) UpdateStatusIfPending(ctx context.Context, id int64, status string, at time.Time) (bool, error) {
	if f.UpdateStatusIfPendingFn != nil {
		return f.UpdateStatusIfPendingFn(ctx, id, status, at)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.rows[id]
	if !ok || l.Status != leave.StatusPending {
		return false, nil
	}
	l.Status = status
	l.UpdatedAt = at
	f.rows[id] = l
	return true, nil
}

func (f *fakeLeaveRepo) seed(l leave.LeaveRequest) int64 {
	_ = f.Create(context.Background(), &l)
	return l.ID
}

type fakeEmployeeRepo struct {
	mu   sync.Mutex
	rows map[int64]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{rows: map[int64]employee.Employee{}}
	for _, e := range emps {
		f.rows[e.ID] = e
	}
	return f
}

func (f *fakeEmployeeRepo) WithTx(tx *gorm.DB) employee.Repository { return f }

func (f *fakeEmployeeRepo) Create(ctx context.Context, e *employee.Employee) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[e.ID] = *e
	return nil
}

func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []employee.Employee
	for _, e := range f.rows {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id int64) (*employee.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (f *fakeEmployeeRepo) Count(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.rows)), nil
}

func (f *fakeEmployeeRepo) remove(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
}

type fakeSalaryRepo struct {
	mu       sync.Mutex
	records  []salaryrecord.SalaryRecord
	AppendFn func(ctx context.Context, r *salaryrecord.SalaryRecord) error
}

func (f *fakeSalaryRepo) WithTx(tx *gorm.DB) salaryrecord.Repository { return f }

func (f *fakeSalaryRepo) Append(ctx context.Context, r *salaryrecord.SalaryRecord) error {
	if f.AppendFn != nil {
		if err := f.AppendFn(ctx, r); err != nil {
			return err
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	r.ID = int64(len(f.records) + 1)
	f.records = append(f.records, *r)
	return nil
}

func (f *fakeSalaryRepo) FindAll(ctx context.Context, employeeID *int64) ([]salaryrecord.SalaryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]salaryrecord.SalaryRecord(nil), f.records...), nil
}

func (f *fakeSalaryRepo) FindLatestByEmployee(ctx context.Context, employeeID int64) (*salaryrecord.SalaryRecord, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSalaryRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

// --- setup ---

type serviceDeps struct {
	sqlMock   sqlmock.Sqlmock
	service   leave.Service
	leaves    *fakeLeaveRepo
	employees *fakeEmployeeRepo
	salaries  *fakeSalaryRepo
	outbox    *kafkaMock.MockOutboxRepository
}

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

// setupServiceTest wires the service over in-memory ledgers. The outbox mock
// is only attached when withOutbox is set.
func setupServiceTest(t *testing.T, withOutbox bool, emps ...employee.Employee) *serviceDeps {
	t.Helper()
	db, mock := newGormMock(t)

	deps := &serviceDeps{
		sqlMock:   mock,
		leaves:    newFakeLeaveRepo(),
		employees: newFakeEmployeeRepo(emps...),
		salaries:  &fakeSalaryRepo{},
	}

	var outbox kafka.OutboxRepository
	if withOutbox {
		deps.outbox = kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		outbox = deps.outbox
	}

	deps.service = leave.NewServiceWithClock(db, deps.leaves, deps.employees, deps.salaries, outbox, func() time.Time { return fixedNow })
	return deps
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func pending(employeeID int64, leaveType string, days int) leave.LeaveRequest {
	return leave.LeaveRequest{EmployeeID: employeeID, LeaveType: leaveType, LeaveDays: days, Status: leave.StatusPending, CreatedAt: fixedNow}
}

func kinds(changes []events.Change) []events.Kind {
	out := make([]events.Kind, len(changes))
	for i, c := range changes {
		out[i] = c.Kind
	}
	return out
}

// --- submit ---

func TestLeaveService_Submit(t *testing.T) {
	ctx := context.Background()
	alice := employee.Employee{ID: 1, Name: "Alice Johnson", BaseSalary: 5000, Role: employee.RoleEmployee}

	t.Run("creates a pending request and announces it", func(t *testing.T) {
		deps := setupServiceTest(t, false, alice)

		out, err := deps.service.Submit(ctx, leave.SubmitLeaveRequest{EmployeeID: 1, LeaveType: "UNPAID", LeaveDays: 4})

		require.NoError(t, err)
		assert.Equal(t, leave.StatusPending, out.Leave.Status)
		assert.Equal(t, int64(1), out.Leave.EmployeeID)
		assert.Equal(t, fixedNow, out.Leave.CreatedAt)
		assert.Equal(t, []events.Kind{events.KindLeaveUpdated}, kinds(out.Changes))
		assert.Equal(t, out.Leave.ToPayload(), out.Changes[0].Data)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name string
			req  leave.SubmitLeaveRequest
			want error
		}{
			{"zero days", leave.SubmitLeaveRequest{EmployeeID: 1, LeaveType: "PAID", LeaveDays: 0}, leaveerrors.ErrInvalidLeaveDays},
			{"31 days", leave.SubmitLeaveRequest{EmployeeID: 1, LeaveType: "PAID", LeaveDays: 31}, leaveerrors.ErrInvalidLeaveDays},
			{"unknown type", leave.SubmitLeaveRequest{EmployeeID: 1, LeaveType: "SICK", LeaveDays: 2}, leaveerrors.ErrInvalidLeaveType},
			{"lowercase type", leave.SubmitLeaveRequest{EmployeeID: 1, LeaveType: "paid", LeaveDays: 2}, leaveerrors.ErrInvalidLeaveType},
			{"no employee", leave.SubmitLeaveRequest{EmployeeID: 0, LeaveType: "PAID", LeaveDays: 2}, leaveerrors.ErrInvalidEmployeeID},
			{"unknown employee", leave.SubmitLeaveRequest{EmployeeID: 77, LeaveType: "PAID", LeaveDays: 2}, leaveerrors.ErrUnknownEmployee},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				deps := setupServiceTest(t, false, alice)

				_, err := deps.service.Submit(ctx, tc.req)

				assert.ErrorIs(t, err, tc.want)
				assert.True(t, apperror.HasCode(err, apperror.CodeInvalidInput))
				all, _ := deps.leaves.FindAll(ctx, nil)
				assert.Empty(t, all)
			})
		}
	})

	t.Run("boundary days are accepted", func(t *testing.T) {
		deps := setupServiceTest(t, false, alice)

		_, err := deps.service.Submit(ctx, leave.SubmitLeaveRequest{EmployeeID: 1, LeaveType: "PAID", LeaveDays: 1})
		assert.NoError(t, err)
		_, err = deps.service.Submit(ctx, leave.SubmitLeaveRequest{EmployeeID: 1, LeaveType: "UNPAID", LeaveDays: 30})
		assert.NoError(t, err)
	})
}

// --- approve ---

func TestLeaveService_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("unpaid leave deducts floor(base/30*days)", func(t *testing.T) {
		deps := setupServiceTest(t, true, employee.Employee{ID: 1, Name: "Dana", BaseSalary: 6000, Role: "employee"})
		id := deps.leaves.seed(pending(1, "UNPAID", 5))

		expectTx(t, deps.sqlMock, true)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, evt kafka.OutboxEvent) error {
				assert.Equal(t, events.SalaryRecordedTopic, evt.Topic)
				assert.Equal(t, events.SalaryRecordedEventType, evt.EventType)
				assert.Equal(t, "1", evt.AggregateID)
				assert.Contains(t, string(evt.Payload), `"deductions":1000`)
				return nil
			})

		out, err := deps.service.Approve(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, out.Leave.Status)
		require.NotNil(t, out.Salary)
		assert.Equal(t, int64(1000), out.Salary.Deductions)
		assert.Equal(t, int64(5000), out.Salary.FinalSalary)
		assert.Equal(t, "2026-03", out.Salary.Month)
		assert.Contains(t, out.Salary.Reason, "5 days UNPAID")
		assert.Empty(t, out.Warnings)
		assert.Equal(t, []events.Kind{events.KindLeaveUpdated, events.KindSalaryUpdated}, kinds(out.Changes))
		assert.Equal(t, out.Salary.ToPayload(), out.Changes[1].Data)
		assert.Equal(t, 1, deps.salaries.count())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("paid leave keeps the full salary", func(t *testing.T) {
		deps := setupServiceTest(t, false, employee.Employee{ID: 3, Name: "Charlie Brown", BaseSalary: 4500, Role: "employee"})
		id := deps.leaves.seed(pending(3, "PAID", 3))
		expectTx(t, deps.sqlMock, true)

		out, err := deps.service.Approve(ctx, id)

		require.NoError(t, err)
		require.NotNil(t, out.Salary)
		assert.Zero(t, out.Salary.Deductions)
		assert.Equal(t, int64(4500), out.Salary.FinalSalary)
		assert.Equal(t, "No deduction for 3 days PAID leave", out.Salary.Reason)
	})

	t.Run("second approval fails and writes nothing", func(t *testing.T) {
		deps := setupServiceTest(t, false, employee.Employee{ID: 1, BaseSalary: 6000, Role: "employee"})
		id := deps.leaves.seed(pending(1, "UNPAID", 5))
		expectTx(t, deps.sqlMock, true)
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Approve(ctx, id)
		require.NoError(t, err)

		out, err := deps.service.Approve(ctx, id)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
		assert.True(t, apperror.HasCode(err, apperror.CodeInvalidState))
		assert.Empty(t, out.Changes)
		assert.Equal(t, 1, deps.salaries.count())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown request", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Approve(ctx, 404)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid id never opens a transaction", func(t *testing.T) {
		deps := setupServiceTest(t, false)

		_, err := deps.service.Approve(ctx, 0)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("vanished employee approves with a warning", func(t *testing.T) {
		deps := setupServiceTest(t, true, employee.Employee{ID: 9, BaseSalary: 3000, Role: "employee"})
		id := deps.leaves.seed(pending(9, "UNPAID", 2))
		deps.employees.remove(9)
		expectTx(t, deps.sqlMock, true)

		out, err := deps.service.Approve(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, out.Leave.Status)
		assert.Nil(t, out.Salary)
		assert.Equal(t, []leave.DanglingReferenceWarning{{LeaveRequestID: id, EmployeeID: 9}}, out.Warnings)
		assert.Len(t, out.WarningMessages(), 1)
		assert.Equal(t, []events.Kind{events.KindLeaveUpdated}, kinds(out.Changes))
		assert.Zero(t, deps.salaries.count())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("lost race on the conditional update", func(t *testing.T) {
		deps := setupServiceTest(t, false, employee.Employee{ID: 1, BaseSalary: 6000, Role: "employee"})
		id := deps.leaves.seed(pending(1, "UNPAID", 5))
		deps.leaves.UpdateStatusIfPendingFn = func(ctx context.Context, id int64, status string, at time.Time) (bool, error) {
			return false, nil
		}
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Approve(ctx, id)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
		assert.Zero(t, deps.salaries.count())
	})

	t.Run("salary append failure rolls the approval back", func(t *testing.T) {
		deps := setupServiceTest(t, true, employee.Employee{ID: 1, BaseSalary: 6000, Role: "employee"})
		id := deps.leaves.seed(pending(1, "UNPAID", 5))
		deps.salaries.AppendFn = func(ctx context.Context, r *salaryrecord.SalaryRecord) error {
			return errors.New("disk full")
		}
		expectTx(t, deps.sqlMock, false)

		out, err := deps.service.Approve(ctx, id)

		assert.EqualError(t, err, "disk full")
		assert.Empty(t, out.Changes)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("outbox failure rolls the approval back", func(t *testing.T) {
		deps := setupServiceTest(t, true, employee.Employee{ID: 1, BaseSalary: 6000, Role: "employee"})
		id := deps.leaves.seed(pending(1, "UNPAID", 5))
		expectTx(t, deps.sqlMock, false)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("outbox down"))

		_, err := deps.service.Approve(ctx, id)

		assert.EqualError(t, err, "outbox down")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("stored leave with an unknown type is an internal error", func(t *testing.T) {
		deps := setupServiceTest(t, true, employee.Employee{ID: 1, BaseSalary: 6000, Role: "employee"})
		id := deps.leaves.seed(pending(1, "SABBATICAL", 5))
		expectTx(t, deps.sqlMock, false)

		out, err := deps.service.Approve(ctx, id)

		require.Error(t, err)
		assert.ErrorIs(t, err, payroll.ErrUnknownLeaveType)
		assert.NotErrorIs(t, err, leaveerrors.ErrInvalidLeaveType)
		httpErr := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.Empty(t, out.Changes)
		assert.Zero(t, deps.salaries.count())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("commit failure surfaces", func(t *testing.T) {
		deps := setupServiceTest(t, false, employee.Employee{ID: 1, BaseSalary: 6000, Role: "employee"})
		id := deps.leaves.seed(pending(1, "PAID", 1))
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit().WillReturnError(errors.New("connection reset"))

		_, err := deps.service.Approve(ctx, id)

		assert.Error(t, err)
	})
}

func TestLeaveService_ConcurrentApprovalsProduceOneRecord(t *testing.T) {
	ctx := context.Background()
	const callers = 8

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()
	mock.MatchExpectationsInOrder(false)
	for i := 0; i < callers; i++ {
		mock.ExpectBegin()
	}
	mock.ExpectCommit()
	for i := 0; i < callers-1; i++ {
		mock.ExpectRollback()
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	leaves := newFakeLeaveRepo()
	salaries := &fakeSalaryRepo{}
	emps := newFakeEmployeeRepo(employee.Employee{ID: 1, BaseSalary: 6000, Role: "employee"})
	svc := leave.NewServiceWithClock(db, leaves, emps, salaries, nil, func() time.Time { return fixedNow })
	id := leaves.seed(pending(1, "UNPAID", 5))

	var wg sync.WaitGroup
	var mu sync.Mutex
	var ok, conflicts int
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Approve(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, leaveerrors.ErrInvalidStatusTransition):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, callers-1, conflicts)
	assert.Equal(t, 1, salaries.count())
}

// --- reject ---

func TestLeaveService_Reject(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects without payroll effect", func(t *testing.T) {
		deps := setupServiceTest(t, true, employee.Employee{ID: 1, BaseSalary: 6000, Role: "employee"})
		id := deps.leaves.seed(pending(1, "UNPAID", 5))
		expectTx(t, deps.sqlMock, true)

		out, err := deps.service.Reject(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, out.Leave.Status)
		assert.Equal(t, fixedNow, out.Leave.UpdatedAt)
		assert.Nil(t, out.Salary)
		assert.Equal(t, []events.Kind{events.KindLeaveUpdated}, kinds(out.Changes))
		assert.Zero(t, deps.salaries.count())
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown request", func(t *testing.T) {
		deps := setupServiceTest(t, false)
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Reject(ctx, 12)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})
}

func TestLeaveService_TerminalStatesRefuseEveryTransition(t *testing.T) {
	ctx := context.Background()

	for _, status := range []string{leave.StatusApproved, leave.StatusRejected} {
		for _, op := range []string{"approve", "reject"} {
			t.Run(status+"/"+op, func(t *testing.T) {
				deps := setupServiceTest(t, false, employee.Employee{ID: 1, BaseSalary: 6000, Role: "employee"})
				l := pending(1, "UNPAID", 5)
				l.Status = status
				id := deps.leaves.seed(l)
				expectTx(t, deps.sqlMock, false)

				var err error
				if op == "approve" {
					_, err = deps.service.Approve(ctx, id)
				} else {
					_, err = deps.service.Reject(ctx, id)
				}

				assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
				stored, _ := deps.leaves.FindByID(ctx, id)
				assert.Equal(t, status, stored.Status)
				assert.Zero(t, deps.salaries.count())
				assert.True(t, leave.IsTerminal(stored.Status))
			})
		}
	}
}

// --- reads ---

func TestLeaveService_ListRoundTrip(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t, false,
		employee.Employee{ID: 1, BaseSalary: 5000, Role: "employee"},
		employee.Employee{ID: 2, BaseSalary: 7000, Role: "manager"},
	)

	submitted := []leave.SubmitLeaveRequest{
		{EmployeeID: 1, LeaveType: "PAID", LeaveDays: 2},
		{EmployeeID: 2, LeaveType: "UNPAID", LeaveDays: 3},
		{EmployeeID: 1, LeaveType: "UNPAID", LeaveDays: 30},
	}
	ids := make([]int64, len(submitted))
	for i, req := range submitted {
		out, err := deps.service.Submit(ctx, req)
		require.NoError(t, err)
		ids[i] = out.Leave.ID
	}

	expectTx(t, deps.sqlMock, true)
	expectTx(t, deps.sqlMock, true)
	_, err := deps.service.Approve(ctx, ids[1])
	require.NoError(t, err)
	_, err = deps.service.Reject(ctx, ids[2])
	require.NoError(t, err)

	all, err := deps.service.GetAll(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	wantStatus := []string{leave.StatusPending, leave.StatusApproved, leave.StatusRejected}
	for i, req := range submitted {
		got := all[len(all)-1-i] // newest first
		assert.Equal(t, ids[i], got.ID)
		assert.Equal(t, req.EmployeeID, got.EmployeeID)
		assert.Equal(t, req.LeaveDays, got.LeaveDays)
		assert.Equal(t, req.LeaveType, got.LeaveType)
		assert.Equal(t, wantStatus[i], got.Status)
	}

	employeeOne := int64(1)
	mine, err := deps.service.GetAll(ctx, &employeeOne)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	assert.Equal(t, ids[2], mine[0].ID)
}

func TestLeaveService_GetByID(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t, false)

	_, err := deps.service.GetByID(ctx, 5)
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)

	id := deps.leaves.seed(pending(1, "PAID", 2))
	got, err := deps.service.GetByID(ctx, id)
	assert.NoError(t, err)
	assert.Equal(t, leave.StatusPending, got.Status)
}
