package payroll

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultOvertimeMultiplier = "1.5"
	DefaultStandardDailyHours = 8
)

// PayProfile is the compensation snapshot the calculator works from.
type PayProfile struct {
	Basic           decimal.Decimal
	HRA             decimal.Decimal
	OtherAllowances decimal.Decimal
	PFPercent       decimal.Decimal
	TaxPercent      decimal.Decimal
}

// CalculationInput carries the month's pre-filtered records. The caller is
// responsible for filtering: overtime hours must already be approved and
// dated in the target month, unpaid leave days approved, unpaid, and
// starting in the target month, deductions dated in the target month.
type CalculationInput struct {
	OvertimeHours    []decimal.Decimal
	UnpaidLeaveDays  []int
	ManualDeductions []decimal.Decimal
}

type CalcOptions struct {
	OvertimeMultiplier decimal.Decimal
	StandardDailyHours int
}

func DefaultCalcOptions() CalcOptions {
	return CalcOptions{
		OvertimeMultiplier: decimal.RequireFromString(DefaultOvertimeMultiplier),
		StandardDailyHours: DefaultStandardDailyHours,
	}
}

type Breakdown struct {
	Gross           decimal.Decimal
	OvertimePay     decimal.Decimal
	TotalDeductions decimal.Decimal
	NetPay          decimal.Decimal
	Details         PayslipDetails
}

var oneHundred = decimal.NewFromInt(100)

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// DaysInMonth returns the calendar day count for (year, month), leap-aware.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Compute derives a pay breakdown for one employee and one calendar month.
// It is a pure function: no store access, no side effects, and no errors
// for well-formed input.
//
// Every stored sub-result is rounded to 2 decimal places half-up. The
// per-hour rate is deliberately carried unrounded into the overtime
// multiplication so the rounding happens once, on the final overtime pay.
func Compute(profile PayProfile, year, month int, input CalculationInput, opts CalcOptions) Breakdown {
	if opts.OvertimeMultiplier.IsZero() {
		opts.OvertimeMultiplier = decimal.RequireFromString(DefaultOvertimeMultiplier)
	}
	if opts.StandardDailyHours == 0 {
		opts.StandardDailyHours = DefaultStandardDailyHours
	}

	gross := round2(profile.Basic.Add(profile.HRA).Add(profile.OtherAllowances))

	days := decimal.NewFromInt(int64(DaysInMonth(year, month)))

	totalOvertimeHours := decimal.Zero
	for _, h := range input.OvertimeHours {
		totalOvertimeHours = totalOvertimeHours.Add(h)
	}

	perHourRate := profile.Basic.Div(days).Div(decimal.NewFromInt(int64(opts.StandardDailyHours)))
	overtimePay := round2(totalOvertimeHours.Mul(perHourRate).Mul(opts.OvertimeMultiplier))

	unpaidDays := 0
	for _, d := range input.UnpaidLeaveDays {
		unpaidDays += d
	}
	unpaidDeduction := round2(gross.Div(days).Mul(decimal.NewFromInt(int64(unpaidDays))))

	manualTotal := decimal.Zero
	for _, m := range input.ManualDeductions {
		manualTotal = manualTotal.Add(m)
	}
	manualTotal = round2(manualTotal)

	pf := decimal.Zero
	if !profile.PFPercent.IsZero() {
		pf = round2(profile.Basic.Mul(profile.PFPercent).Div(oneHundred))
	}
	tax := decimal.Zero
	if !profile.TaxPercent.IsZero() {
		tax = round2(gross.Mul(profile.TaxPercent).Div(oneHundred))
	}

	totalDeductions := round2(pf.Add(tax).Add(manualTotal).Add(unpaidDeduction))
	netPay := round2(gross.Add(overtimePay).Sub(totalDeductions))

	return Breakdown{
		Gross:           gross,
		OvertimePay:     overtimePay,
		TotalDeductions: totalDeductions,
		NetPay:          netPay,
		Details: PayslipDetails{
			"basic":             profile.Basic.StringFixed(2),
			"hra":               profile.HRA.StringFixed(2),
			"other_allowances":  profile.OtherAllowances.StringFixed(2),
			"overtime_hours":    totalOvertimeHours.String(),
			"overtime_pay":      overtimePay.StringFixed(2),
			"pf":                pf.StringFixed(2),
			"tax":               tax.StringFixed(2),
			"manual_deductions": manualTotal.StringFixed(2),
			"unpaid_deduction":  unpaidDeduction.StringFixed(2),
			"days_in_month":     strconv.Itoa(DaysInMonth(year, month)),
		},
	}
}
