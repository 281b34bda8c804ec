package payroll_test

import (
	"testing"

	"go-payroll/internal/payroll"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func standardProfile() payroll.PayProfile {
	return payroll.PayProfile{
		Basic:           dec("30000"),
		HRA:             dec("5000"),
		OtherAllowances: dec("0"),
		PFPercent:       dec("12"),
		TaxPercent:      dec("10"),
	}
}

func TestCompute_StatutoryDeductionsOnly(t *testing.T) {
	b := payroll.Compute(standardProfile(), 2025, 1, payroll.CalculationInput{}, payroll.DefaultCalcOptions())

	assert.True(t, dec("35000.00").Equal(b.Gross), "gross: %s", b.Gross)
	assert.True(t, dec("0.00").Equal(b.OvertimePay), "overtime: %s", b.OvertimePay)
	assert.True(t, dec("7100.00").Equal(b.TotalDeductions), "deductions: %s", b.TotalDeductions)
	assert.True(t, dec("27900.00").Equal(b.NetPay), "net: %s", b.NetPay)

	assert.Equal(t, "3600.00", b.Details["pf"])
	assert.Equal(t, "3500.00", b.Details["tax"])
	assert.Equal(t, "31", b.Details["days_in_month"])
}

func TestCompute_OvertimePay(t *testing.T) {
	input := payroll.CalculationInput{
		OvertimeHours: []decimal.Decimal{dec("6"), dec("4")},
	}

	b := payroll.Compute(standardProfile(), 2025, 1, input, payroll.DefaultCalcOptions())

	// 10h at (30000/31/8) * 1.5, rounded once at the end.
	assert.True(t, dec("1814.52").Equal(b.OvertimePay), "overtime: %s", b.OvertimePay)
	assert.True(t, dec("29714.52").Equal(b.NetPay), "net: %s", b.NetPay)
	assert.Equal(t, "10", b.Details["overtime_hours"])
}

func TestCompute_UnpaidLeaveDeduction(t *testing.T) {
	input := payroll.CalculationInput{
		UnpaidLeaveDays: []int{3},
	}

	b := payroll.Compute(standardProfile(), 2025, 1, input, payroll.DefaultCalcOptions())

	// (35000 / 31) * 3 = 3387.0967..., rounded half-up.
	assert.Equal(t, "3387.10", b.Details["unpaid_deduction"])
	assert.True(t, dec("10487.10").Equal(b.TotalDeductions), "deductions: %s", b.TotalDeductions)
	assert.True(t, dec("24512.90").Equal(b.NetPay), "net: %s", b.NetPay)
}

func TestCompute_ManualDeductions(t *testing.T) {
	input := payroll.CalculationInput{
		ManualDeductions: []decimal.Decimal{dec("500.25"), dec("199.75")},
	}

	b := payroll.Compute(standardProfile(), 2025, 1, input, payroll.DefaultCalcOptions())

	assert.Equal(t, "700.00", b.Details["manual_deductions"])
	assert.True(t, dec("7800.00").Equal(b.TotalDeductions), "deductions: %s", b.TotalDeductions)
	assert.True(t, dec("27200.00").Equal(b.NetPay), "net: %s", b.NetPay)
}

func TestCompute_ZeroEverything_NetEqualsGross(t *testing.T) {
	profile := payroll.PayProfile{
		Basic:           dec("42000"),
		HRA:             dec("8000"),
		OtherAllowances: dec("1500.50"),
	}

	b := payroll.Compute(profile, 2025, 6, payroll.CalculationInput{}, payroll.DefaultCalcOptions())

	assert.True(t, b.Gross.Equal(b.NetPay), "gross %s != net %s", b.Gross, b.NetPay)
	assert.True(t, dec("51500.50").Equal(b.Gross))
	assert.True(t, b.TotalDeductions.IsZero())
}

func TestCompute_Identities(t *testing.T) {
	input := payroll.CalculationInput{
		OvertimeHours:    []decimal.Decimal{dec("7.5")},
		UnpaidLeaveDays:  []int{2},
		ManualDeductions: []decimal.Decimal{dec("123.45")},
	}

	b := payroll.Compute(standardProfile(), 2025, 3, input, payroll.DefaultCalcOptions())

	pf := dec(b.Details["pf"])
	tax := dec(b.Details["tax"])
	manual := dec(b.Details["manual_deductions"])
	unpaid := dec(b.Details["unpaid_deduction"])

	assert.True(t, b.TotalDeductions.Equal(pf.Add(tax).Add(manual).Add(unpaid).Round(2)),
		"total_deductions identity broken")
	assert.True(t, b.NetPay.Equal(b.Gross.Add(b.OvertimePay).Sub(b.TotalDeductions).Round(2)),
		"net_pay identity broken")
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, payroll.DaysInMonth(2025, 1))
	assert.Equal(t, 28, payroll.DaysInMonth(2025, 2))
	assert.Equal(t, 29, payroll.DaysInMonth(2024, 2))
	assert.Equal(t, 29, payroll.DaysInMonth(2000, 2))
	assert.Equal(t, 28, payroll.DaysInMonth(1900, 2))
	assert.Equal(t, 30, payroll.DaysInMonth(2025, 4))
}

func TestCompute_CustomOptions(t *testing.T) {
	profile := payroll.PayProfile{Basic: dec("31000")}
	input := payroll.CalculationInput{OvertimeHours: []decimal.Decimal{dec("4")}}
	opts := payroll.CalcOptions{
		OvertimeMultiplier: dec("2"),
		StandardDailyHours: 10,
	}

	// 31000/31/10 = 100/h, 4h doubled = 800.
	b := payroll.Compute(profile, 2025, 1, input, opts)

	assert.True(t, dec("800.00").Equal(b.OvertimePay), "overtime: %s", b.OvertimePay)
}
