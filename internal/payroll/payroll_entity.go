package payroll

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PayrollPeriod struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Year        int        `gorm:"not null;uniqueIndex:uq_payroll_period_year_month"`
	Month       int        `gorm:"not null;uniqueIndex:uq_payroll_period_year_month"`
	Finalized   bool       `gorm:"not null;default:false"`
	ProcessedAt *time.Time `gorm:"type:timestamptz"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PayrollPeriod) TableName() string {
	return "payroll_periods"
}

// PayslipDetails stores the named calculation intermediates as jsonb.
type PayslipDetails map[string]string

func (d PayslipDetails) Value() (driver.Value, error) {
	if d == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(d)
}

func (d *PayslipDetails) Scan(value interface{}) error {
	if value == nil {
		*d = PayslipDetails{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("payroll: cannot scan %T into PayslipDetails", value)
	}

	return json.Unmarshal(raw, d)
}

type Payslip struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PayrollPeriodID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payslip_period_employee"`
	EmployeeID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payslip_period_employee"`
	GrossPay        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	NetPay          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Details         PayslipDetails  `gorm:"type:jsonb;not null;default:'{}'"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Payslip) TableName() string {
	return "payslips"
}

type EmployeeRef struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName    string    `gorm:"column:first_name"`
	LastName     string    `gorm:"column:last_name"`
	EmployeeCode string    `gorm:"column:employee_code"`
	Email        string    `gorm:"column:email"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

func (e EmployeeRef) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}
