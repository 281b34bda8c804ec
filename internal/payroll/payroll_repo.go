package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PayEmployee is the read model the payroll run needs from the employees
// table, compensation included.
type PayEmployee struct {
	ID              string          `gorm:"column:id"`
	EmployeeCode    string          `gorm:"column:employee_code"`
	FirstName       string          `gorm:"column:first_name"`
	LastName        string          `gorm:"column:last_name"`
	Email           string          `gorm:"column:email"`
	MonthlyBasic    decimal.Decimal `gorm:"column:monthly_basic"`
	HRA             decimal.Decimal `gorm:"column:hra"`
	OtherAllowances decimal.Decimal `gorm:"column:other_allowances"`
	PFPercent       decimal.Decimal `gorm:"column:pf_percent"`
	TaxPercent      decimal.Decimal `gorm:"column:tax_percent"`
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	GetOrCreatePeriod(ctx context.Context, year, month int) (*PayrollPeriod, error)
	FindPeriod(ctx context.Context, year, month int) (*PayrollPeriod, error)
	ListPeriods(ctx context.Context) ([]PayrollPeriod, error)
	SavePeriod(ctx context.Context, p *PayrollPeriod) error

	ListActiveEmployees(ctx context.Context) ([]PayEmployee, error)
	ApprovedOvertimeHours(ctx context.Context, employeeID string, year, month int) ([]decimal.Decimal, error)
	UnpaidLeaveDays(ctx context.Context, employeeID string, year, month int) ([]int, error)
	MonthDeductions(ctx context.Context, employeeID string, year, month int) ([]decimal.Decimal, error)

	UpsertPayslip(ctx context.Context, p *Payslip) error
	ListPayslipsByPeriod(ctx context.Context, periodID string) ([]Payslip, error)
	FindPayslipByID(ctx context.Context, id string) (*Payslip, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) GetOrCreatePeriod(ctx context.Context, year, month int) (*PayrollPeriod, error) {
	p := PayrollPeriod{Year: year, Month: month}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "year"}, {Name: "month"}},
			DoNothing: true,
		}).
		Create(&p).Error
	if err != nil {
		return nil, err
	}

	// Re-read so a conflicting insert still yields the existing row.
	return r.FindPeriod(ctx, year, month)
}

func (r *repository) FindPeriod(ctx context.Context, year, month int) (*PayrollPeriod, error) {
	var p PayrollPeriod
	err := r.db.WithContext(ctx).
		First(&p, "year = ? AND month = ?", year, month).Error
	return &p, err
}

func (r *repository) ListPeriods(ctx context.Context) ([]PayrollPeriod, error) {
	var periods []PayrollPeriod
	err := r.db.WithContext(ctx).
		Order("year DESC, month DESC").
		Find(&periods).Error
	return periods, err
}

func (r *repository) SavePeriod(ctx context.Context, p *PayrollPeriod) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) ListActiveEmployees(ctx context.Context) ([]PayEmployee, error) {
	var employees []PayEmployee
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("is_active = ?", true).
		Order("employee_code ASC").
		Find(&employees).Error
	return employees, err
}

func monthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func (r *repository) ApprovedOvertimeHours(ctx context.Context, employeeID string, year, month int) ([]decimal.Decimal, error) {
	start, end := monthRange(year, month)

	var hours []decimal.Decimal
	err := r.db.WithContext(ctx).
		Table("overtime_records").
		Where("employee_id = ? AND approved = ? AND date >= ? AND date < ?", employeeID, true, start, end).
		Pluck("hours", &hours).Error
	return hours, err
}

func (r *repository) UnpaidLeaveDays(ctx context.Context, employeeID string, year, month int) ([]int, error) {
	start, end := monthRange(year, month)

	var days []int
	err := r.db.WithContext(ctx).
		Table("leave_requests").
		Where("employee_id = ? AND status = ? AND unpaid = ? AND start_date >= ? AND start_date < ?",
			employeeID, "APPROVED", true, start, end).
		Pluck("days", &days).Error
	return days, err
}

func (r *repository) MonthDeductions(ctx context.Context, employeeID string, year, month int) ([]decimal.Decimal, error) {
	start, end := monthRange(year, month)

	var amounts []decimal.Decimal
	err := r.db.WithContext(ctx).
		Table("deductions").
		Where("employee_id = ? AND date >= ? AND date < ?", employeeID, start, end).
		Pluck("amount", &amounts).Error
	return amounts, err
}

func (r *repository) UpsertPayslip(ctx context.Context, p *Payslip) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "payroll_period_id"}, {Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"gross_pay", "total_deductions", "net_pay", "details", "updated_at",
			}),
		}).
		Create(p).Error
}

func (r *repository) ListPayslipsByPeriod(ctx context.Context, periodID string) ([]Payslip, error) {
	var payslips []Payslip
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("payroll_period_id = ?", periodID).
		Order("created_at ASC").
		Find(&payslips).Error
	return payslips, err
}

func (r *repository) FindPayslipByID(ctx context.Context, id string) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&p, "id = ?", id).Error
	return &p, err
}
