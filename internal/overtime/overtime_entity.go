package overtime

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OvertimeRecord struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;index:idx_overtime_employee_date"`
	Date       time.Time       `gorm:"type:date;not null;index:idx_overtime_employee_date"`
	Hours      decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Approved   bool            `gorm:"not null;default:false;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OvertimeRecord) TableName() string {
	return "overtime_records"
}
