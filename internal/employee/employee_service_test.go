package employee_test

import (
	"context"
	"testing"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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

type fakeEmployeeRepository struct {
	employees        map[string]*employee.Employee
	departmentExists bool
	hasPayslips      bool
	deactivated      []string
}

func newFakeEmployeeRepository() *fakeEmployeeRepository {
	return &fakeEmployeeRepository{employees: map[string]*employee.Employee{}, departmentExists: true}
}

func (f *fakeEmployeeRepository) WithTx(tx *gorm.DB) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	copied := *e
	f.employees[e.ID.String()] = &copied
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if activeOnly && !e.IsActive {
			continue
		}
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if e, ok := f.employees[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	copied := *e
	f.employees[e.ID.String()] = &copied
	return nil
}

func (f *fakeEmployeeRepository) Deactivate(ctx context.Context, id string) error {
	f.deactivated = append(f.deactivated, id)
	if e, ok := f.employees[id]; ok {
		e.IsActive = false
	}
	return nil
}

func (f *fakeEmployeeRepository) HasPayslips(ctx context.Context, id string) (bool, error) {
	return f.hasPayslips, nil
}

func (f *fakeEmployeeRepository) DepartmentExists(ctx context.Context, departmentID string) (bool, error) {
	return f.departmentExists, nil
}

type fakeCounterRepository struct {
	next int64
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
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

func baseCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:     "Asha",
		LastName:      "Nair",
		Email:         "asha@example.com",
		DateOfJoining: "2024-06-01",
		MonthlyBasic:  decimal.RequireFromString("30000"),
		HRA:           decimal.RequireFromString("5000"),
		PFPercent:     decimal.RequireFromString("12"),
		TaxPercent:    decimal.RequireFromString("10"),
	}
}

func TestEmployeeService_Create_GeneratesCode(t *testing.T) {
	ctx := context.Background()
	gdb, mock := setupGormMock(t)
	repo := newFakeEmployeeRepository()
	svc := employee.NewService(gdb, repo, &fakeCounterRepository{})

	expectTx(t, mock, true)
	resp, err := svc.Create(ctx, baseCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, "EMP-000001", resp.EmployeeCode)
	assert.True(t, resp.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeService_Create_KeepsExplicitCode(t *testing.T) {
	ctx := context.Background()
	gdb, mock := setupGormMock(t)
	svc := employee.NewService(gdb, newFakeEmployeeRepository(), &fakeCounterRepository{})

	req := baseCreateRequest()
	req.EmployeeCode = "EMP-CUSTOM"

	expectTx(t, mock, true)
	resp, err := svc.Create(ctx, req)

	assert.NoError(t, err)
	assert.Equal(t, "EMP-CUSTOM", resp.EmployeeCode)
}

func TestEmployeeService_Create_RejectsBadCompensation(t *testing.T) {
	ctx := context.Background()
	gdb, _ := setupGormMock(t)
	svc := employee.NewService(gdb, newFakeEmployeeRepository(), &fakeCounterRepository{})

	req := baseCreateRequest()
	req.MonthlyBasic = decimal.RequireFromString("-1")
	_, err := svc.Create(ctx, req)
	assert.ErrorIs(t, err, employeeerrors.ErrNegativeCompensation)

	req = baseCreateRequest()
	req.PFPercent = decimal.RequireFromString("101")
	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidStatutoryRate)
}

func TestEmployeeService_Delete_DeactivatesWhenPayslipsExist(t *testing.T) {
	ctx := context.Background()
	gdb, mock := setupGormMock(t)
	repo := newFakeEmployeeRepository()
	repo.hasPayslips = true
	svc := employee.NewService(gdb, repo, &fakeCounterRepository{})

	id := uuid.New()
	repo.employees[id.String()] = &employee.Employee{ID: id, FirstName: "Asha", IsActive: true}

	expectTx(t, mock, true)
	err := svc.Delete(ctx, id.String())

	assert.NoError(t, err)
	assert.Equal(t, []string{id.String()}, repo.deactivated)
	assert.NoError(t, mock.ExpectationsWereMet())
}
