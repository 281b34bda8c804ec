package deduction

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=deduction_repo.go -destination=mock/deduction_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, d *Deduction) error
	FindAll(ctx context.Context, employeeID string) ([]Deduction, error)
	FindByID(ctx context.Context, id string) (*Deduction, error)
	Update(ctx context.Context, d *Deduction) error
	Delete(ctx context.Context, id string) error
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, d *Deduction) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *repository) FindAll(ctx context.Context, employeeID string) ([]Deduction, error) {
	var deductions []Deduction
	q := r.db.WithContext(ctx).Order("date DESC")
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}
	err := q.Find(&deductions).Error
	return deductions, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Deduction, error) {
	var d Deduction
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	return &d, err
}

func (r *repository) Update(ctx context.Context, d *Deduction) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Deduction{}, "id = ?", id).Error
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}
