package overtime

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=overtime_repo.go -destination=mock/overtime_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, o *OvertimeRecord) error
	FindAll(ctx context.Context, employeeID string, approved *bool) ([]OvertimeRecord, error)
	FindByID(ctx context.Context, id string) (*OvertimeRecord, error)
	Update(ctx context.Context, o *OvertimeRecord) error
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

func (r *repository) Create(ctx context.Context, o *OvertimeRecord) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) FindAll(ctx context.Context, employeeID string, approved *bool) ([]OvertimeRecord, error) {
	var records []OvertimeRecord
	q := r.db.WithContext(ctx).Order("date DESC")
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}
	if approved != nil {
		q = q.Where("approved = ?", *approved)
	}
	err := q.Find(&records).Error
	return records, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*OvertimeRecord, error) {
	var o OvertimeRecord
	err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error
	return &o, err
}

func (r *repository) Update(ctx context.Context, o *OvertimeRecord) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&OvertimeRecord{}, "id = ?", id).Error
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}
