package payroll

import "github.com/shopspring/decimal"

type RunPayrollRequest struct {
	Year     int  `json:"year" binding:"required,min=1,max=9999"`
	Month    int  `json:"month" binding:"required,min=1,max=12"`
	Finalize bool `json:"finalize"`
	// Force allows recomputing a period that was already finalized.
	Force bool `json:"force"`
}

type PeriodResponse struct {
	ID          string  `json:"id"`
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	Finalized   bool    `json:"finalized"`
	ProcessedAt *string `json:"processed_at,omitempty"`
}

type PayslipResponse struct {
	ID              string            `json:"id"`
	PayrollPeriodID string            `json:"payroll_period_id"`
	EmployeeID      string            `json:"employee_id"`
	EmployeeCode    string            `json:"employee_code,omitempty"`
	EmployeeName    string            `json:"employee_name,omitempty"`
	GrossPay        decimal.Decimal   `json:"gross_pay"`
	TotalDeductions decimal.Decimal   `json:"total_deductions"`
	NetPay          decimal.Decimal   `json:"net_pay"`
	Details         map[string]string `json:"details"`
}
