package leave_test

import (
	"context"
	"testing"
	"time"

	"go-payroll/internal/leave"
	leaveerrors "go-payroll/internal/leave/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)

	return gdb, mock
}

type fakeLeaveRepository struct {
	leaves         map[string]*leave.LeaveRequest
	employeeExists bool
}

func newFakeLeaveRepository() *fakeLeaveRepository {
	return &fakeLeaveRepository{leaves: map[string]*leave.LeaveRequest{}, employeeExists: true}
}

func (f *fakeLeaveRepository) WithTx(tx *gorm.DB) leave.Repository { return f }

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.LeaveRequest) error {
	copied := *l
	f.leaves[l.ID.String()] = &copied
	return nil
}

func (f *fakeLeaveRepository) FindAll(ctx context.Context, employeeID, status string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, l := range f.leaves {
		if employeeID != "" && l.EmployeeID.String() != employeeID {
			continue
		}
		if status != "" && l.Status != status {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	if l, ok := f.leaves[id]; ok {
		copied := *l
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) Update(ctx context.Context, l *leave.LeaveRequest) error {
	copied := *l
	f.leaves[l.ID.String()] = &copied
	return nil
}

func (f *fakeLeaveRepository) Delete(ctx context.Context, id string) error {
	delete(f.leaves, id)
	return nil
}

func (f *fakeLeaveRepository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	return f.employeeExists, nil
}

type leaveServiceDeps struct {
	sqlMock sqlmock.Sqlmock
	service leave.Service
	repo    *fakeLeaveRepository
}

func setupLeaveServiceTest(t *testing.T) *leaveServiceDeps {
	t.Helper()

	gdb, mock := setupGormMock(t)
	repo := newFakeLeaveRepository()
	svc := leave.NewService(gdb, repo)

	return &leaveServiceDeps{sqlMock: mock, service: svc, repo: repo}
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

func TestLeaveDays(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		assert.NoError(t, err)
		return d
	}

	assert.Equal(t, 3, leave.LeaveDays(day("2025-01-10"), day("2025-01-12")))
	assert.Equal(t, 1, leave.LeaveDays(day("2025-01-10"), day("2025-01-10")))
	assert.Equal(t, 31, leave.LeaveDays(day("2025-01-01"), day("2025-01-31")))
	// Across a month boundary.
	assert.Equal(t, 4, leave.LeaveDays(day("2025-02-27"), day("2025-03-02")))
}

func TestLeaveService_Create_ComputesDays(t *testing.T) {
	ctx := context.Background()
	deps := setupLeaveServiceTest(t)

	expectTx(t, deps.sqlMock, true)
	resp, err := deps.service.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: uuid.NewString(),
		StartDate:  "2025-01-10",
		EndDate:    "2025-01-12",
		Unpaid:     true,
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, resp.Days)
	assert.Equal(t, leave.StatusPending, resp.Status)
	assert.True(t, resp.Unpaid)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestLeaveService_Create_SameDay(t *testing.T) {
	ctx := context.Background()
	deps := setupLeaveServiceTest(t)

	expectTx(t, deps.sqlMock, true)
	resp, err := deps.service.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: uuid.NewString(),
		StartDate:  "2025-01-10",
		EndDate:    "2025-01-10",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Days)
}

func TestLeaveService_Create_EndBeforeStart(t *testing.T) {
	ctx := context.Background()
	deps := setupLeaveServiceTest(t)

	_, err := deps.service.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: uuid.NewString(),
		StartDate:  "2025-01-12",
		EndDate:    "2025-01-10",
	})

	assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	assert.Empty(t, deps.repo.leaves)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestLeaveService_Create_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	deps := setupLeaveServiceTest(t)
	deps.repo.employeeExists = false

	expectTx(t, deps.sqlMock, false)
	_, err := deps.service.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: uuid.NewString(),
		StartDate:  "2025-01-10",
		EndDate:    "2025-01-12",
	})

	assert.ErrorIs(t, err, leaveerrors.ErrEmployeeNotFound)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestLeaveService_Update_RecomputesDays(t *testing.T) {
	ctx := context.Background()
	deps := setupLeaveServiceTest(t)

	expectTx(t, deps.sqlMock, true)
	created, err := deps.service.Create(ctx, leave.CreateLeaveRequest{
		EmployeeID: uuid.NewString(),
		StartDate:  "2025-01-10",
		EndDate:    "2025-01-12",
	})
	assert.NoError(t, err)

	expectTx(t, deps.sqlMock, true)
	updated, err := deps.service.Update(ctx, created.ID, leave.UpdateLeaveRequest{
		StartDate: "2025-01-10",
		EndDate:   "2025-01-20",
	})

	assert.NoError(t, err)
	assert.Equal(t, 11, updated.Days)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestLeaveService_ApproveAndReject(t *testing.T) {
	ctx := context.Background()

	t.Run("approve pending", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		expectTx(t, deps.sqlMock, true)
		created, err := deps.service.Create(ctx, leave.CreateLeaveRequest{
			EmployeeID: uuid.NewString(),
			StartDate:  "2025-01-10",
			EndDate:    "2025-01-12",
		})
		assert.NoError(t, err)

		expectTx(t, deps.sqlMock, true)
		approved, err := deps.service.Approve(ctx, created.ID)
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, approved.Status)
	})

	t.Run("reject pending", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		expectTx(t, deps.sqlMock, true)
		created, err := deps.service.Create(ctx, leave.CreateLeaveRequest{
			EmployeeID: uuid.NewString(),
			StartDate:  "2025-01-10",
			EndDate:    "2025-01-12",
		})
		assert.NoError(t, err)

		expectTx(t, deps.sqlMock, true)
		rejected, err := deps.service.Reject(ctx, created.ID)
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, rejected.Status)
	})

	t.Run("already decided", func(t *testing.T) {
		deps := setupLeaveServiceTest(t)

		expectTx(t, deps.sqlMock, true)
		created, err := deps.service.Create(ctx, leave.CreateLeaveRequest{
			EmployeeID: uuid.NewString(),
			StartDate:  "2025-01-10",
			EndDate:    "2025-01-12",
		})
		assert.NoError(t, err)

		expectTx(t, deps.sqlMock, true)
		_, err = deps.service.Approve(ctx, created.ID)
		assert.NoError(t, err)

		expectTx(t, deps.sqlMock, false)
		_, err = deps.service.Reject(ctx, created.ID)
		assert.ErrorIs(t, err, leaveerrors.ErrAlreadyDecided)
	})
}

func TestLeaveService_GetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	deps := setupLeaveServiceTest(t)

	_, err := deps.service.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)

	_, err = deps.service.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveID)
}
