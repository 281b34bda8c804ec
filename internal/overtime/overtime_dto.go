package overtime

import "github.com/shopspring/decimal"

type CreateOvertimeRequest struct {
	EmployeeID string          `json:"employee_id" binding:"required,uuid"`
	Date       string          `json:"date" binding:"required"`
	Hours      decimal.Decimal `json:"hours" binding:"required"`
}

type UpdateOvertimeRequest struct {
	Date  string          `json:"date" binding:"required"`
	Hours decimal.Decimal `json:"hours" binding:"required"`
}

type OvertimeResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`
	Hours      decimal.Decimal `json:"hours"`
	Approved   bool            `json:"approved"`
}
