package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DepartmentID *uuid.UUID `gorm:"type:uuid;constraint:OnDelete:SET NULL"`

	FirstName     string    `gorm:"type:varchar(100);not null"`
	LastName      string    `gorm:"type:varchar(100)"`
	EmployeeCode  string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_code"`
	Email         string    `gorm:"type:varchar(254);not null;uniqueIndex:uq_employee_email"`
	DateOfJoining time.Time `gorm:"type:date;not null"`
	IsActive      bool      `gorm:"not null;default:true;index"`

	// Monthly compensation, numeric(12,2).
	MonthlyBasic    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	HRA             decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	OtherAllowances decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`

	// Statutory rates as percentages, 0-100.
	PFPercent  decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	TaxPercent decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
