package payroll_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func seedExportFixture(deps *payrollServiceDeps) uuid.UUID {
	periodID := uuid.New()
	empID := uuid.New()
	slipID := uuid.New()

	deps.repo.period = &payroll.PayrollPeriod{ID: periodID, Year: 2025, Month: 1}
	deps.repo.payslips = map[string]*payroll.Payslip{
		empID.String(): {
			ID:              slipID,
			PayrollPeriodID: periodID,
			EmployeeID:      empID,
			GrossPay:        decimal.RequireFromString("35000.00"),
			TotalDeductions: decimal.RequireFromString("7100.00"),
			NetPay:          decimal.RequireFromString("27900.00"),
			Details:         payroll.PayslipDetails{"basic": "30000.00", "pf": "3600.00"},
			Employee: &payroll.EmployeeRef{
				ID: empID, FirstName: "Asha", LastName: "Nair",
				EmployeeCode: "EMP-000001", Email: "asha@example.com",
			},
		},
	}
	deps.repo.payslipOrder = []string{empID.String()}
	return slipID
}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	seedExportFixture(deps)

	data, err := deps.service.ExportCSV(ctx, 2025, 1)
	assert.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, []string{
		"Employee Code", "Employee Name", "Gross Pay", "Total Deductions", "Net Pay", "Details",
	}, rows[0])
	assert.Equal(t, "EMP-000001", rows[1][0])
	assert.Equal(t, "Asha Nair", rows[1][1])
	assert.Equal(t, "35000.00", rows[1][2])
	assert.Equal(t, "7100.00", rows[1][3])
	assert.Equal(t, "27900.00", rows[1][4])
	assert.Contains(t, rows[1][5], `"basic":"30000.00"`)
}

func TestExportCSV_PeriodNotFound(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)

	_, err := deps.service.ExportCSV(ctx, 2030, 1)
	assert.ErrorIs(t, err, payrollerrors.ErrPeriodNotFound)
}

func TestExportXLSX(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	seedExportFixture(deps)

	data, err := deps.service.ExportXLSX(ctx, 2025, 1)
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer f.Close()

	sheet := f.GetSheetName(0)
	code, err := f.GetCellValue(sheet, "A2")
	assert.NoError(t, err)
	assert.Equal(t, "EMP-000001", code)

	net, err := f.GetCellValue(sheet, "E2")
	assert.NoError(t, err)
	assert.Equal(t, "27900", net)
}

func TestExportPayslipPDF(t *testing.T) {
	ctx := context.Background()
	deps := setupPayrollServiceTest(t)
	slipID := seedExportFixture(deps)

	data, err := deps.service.ExportPayslipPDF(ctx, slipID.String(), payroll.Viewer{Role: "hr"})
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	// Non-owner cannot fetch someone else's document.
	_, err = deps.service.ExportPayslipPDF(ctx, slipID.String(), payroll.Viewer{Email: "ravi@example.com"})
	assert.ErrorIs(t, err, payrollerrors.ErrPayslipNotFound)
}
