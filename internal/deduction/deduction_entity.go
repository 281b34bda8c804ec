package deduction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Deduction struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;index:idx_deductions_employee_date"`
	Name       string          `gorm:"type:varchar(150);not null"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Reason     *string         `gorm:"type:text"`
	Date       time.Time       `gorm:"type:date;not null;index:idx_deductions_employee_date"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Deduction) TableName() string {
	return "deductions"
}
