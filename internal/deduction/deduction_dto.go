package deduction

import "github.com/shopspring/decimal"

type CreateDeductionRequest struct {
	EmployeeID string          `json:"employee_id" binding:"required,uuid"`
	Name       string          `json:"name" binding:"required,max=150"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	Reason     *string         `json:"reason"`
	// Date defaults to today when omitted.
	Date string `json:"date"`
}

type UpdateDeductionRequest struct {
	Name   string          `json:"name" binding:"required,max=150"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Reason *string         `json:"reason"`
	Date   string          `json:"date" binding:"required"`
}

type DeductionResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     *string         `json:"reason,omitempty"`
	Date       string          `json:"date"`
}
