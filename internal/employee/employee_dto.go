package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	FirstName       string          `json:"first_name" binding:"required"`
	LastName        string          `json:"last_name"`
	EmployeeCode    string          `json:"employee_code"`
	Email           string          `json:"email" binding:"required,email"`
	DepartmentID    *string         `json:"department_id" binding:"omitempty,uuid"`
	DateOfJoining   string          `json:"date_of_joining" binding:"required"`
	MonthlyBasic    decimal.Decimal `json:"monthly_basic"`
	HRA             decimal.Decimal `json:"hra"`
	OtherAllowances decimal.Decimal `json:"other_allowances"`
	PFPercent       decimal.Decimal `json:"pf_percent"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`
}

type UpdateEmployeeRequest struct {
	FirstName       string          `json:"first_name" binding:"required"`
	LastName        string          `json:"last_name"`
	Email           string          `json:"email" binding:"required,email"`
	DepartmentID    *string         `json:"department_id" binding:"omitempty,uuid"`
	DateOfJoining   string          `json:"date_of_joining" binding:"required"`
	MonthlyBasic    decimal.Decimal `json:"monthly_basic"`
	HRA             decimal.Decimal `json:"hra"`
	OtherAllowances decimal.Decimal `json:"other_allowances"`
	PFPercent       decimal.Decimal `json:"pf_percent"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`
	IsActive        *bool           `json:"is_active"`
}

type EmployeeResponse struct {
	ID              string          `json:"id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name,omitempty"`
	EmployeeCode    string          `json:"employee_code"`
	Email           string          `json:"email"`
	DepartmentID    *string         `json:"department_id,omitempty"`
	DateOfJoining   string          `json:"date_of_joining"`
	IsActive        bool            `json:"is_active"`
	MonthlyBasic    decimal.Decimal `json:"monthly_basic"`
	HRA             decimal.Decimal `json:"hra"`
	OtherAllowances decimal.Decimal `json:"other_allowances"`
	PFPercent       decimal.Decimal `json:"pf_percent"`
	TaxPercent      decimal.Decimal `json:"tax_percent"`
}
