package employee

import (
	"context"
	"fmt"
	"time"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db      *gorm.DB
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{db: db, repo: repo, counter: counterRepo, logger: l}
}

var oneHundred = decimal.NewFromInt(100)

func validateCompensation(monthlyBasic, hra, otherAllowances, pfPercent, taxPercent decimal.Decimal) error {
	if monthlyBasic.IsNegative() || hra.IsNegative() || otherAllowances.IsNegative() {
		return employeeerrors.ErrNegativeCompensation
	}
	if pfPercent.IsNegative() || pfPercent.GreaterThan(oneHundred) ||
		taxPercent.IsNegative() || taxPercent.GreaterThan(oneHundred) {
		return employeeerrors.ErrInvalidStatutoryRate
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("employee_code", req.EmployeeCode),
	)

	if err := validateCompensation(req.MonthlyBasic, req.HRA, req.OtherAllowances, req.PFPercent, req.TaxPercent); err != nil {
		s.logger.Warn("create employee validation failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	dateOfJoining, err := time.Parse("2006-01-02", req.DateOfJoining)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
	}

	var created Employee
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var departmentID *uuid.UUID
		if req.DepartmentID != nil && *req.DepartmentID != "" {
			exists, err := qtx.DepartmentExists(ctx, *req.DepartmentID)
			if err != nil {
				return err
			}
			if !exists {
				return employeeerrors.ErrDepartmentNotFound
			}
			id := uuid.MustParse(*req.DepartmentID)
			departmentID = &id
		}

		code := req.EmployeeCode
		if code == "" {
			nextVal, err := s.counter.GetNextValue(ctx, "employee_code")
			if err != nil {
				return err
			}
			code = fmt.Sprintf("EMP-%06d", nextVal)
		}

		empl := &Employee{
			ID:              uuid.New(),
			DepartmentID:    departmentID,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			EmployeeCode:    code,
			Email:           req.Email,
			DateOfJoining:   dateOfJoining,
			IsActive:        true,
			MonthlyBasic:    req.MonthlyBasic,
			HRA:             req.HRA,
			OtherAllowances: req.OtherAllowances,
			PFPercent:       req.PFPercent,
			TaxPercent:      req.TaxPercent,
		}

		if err := qtx.Create(ctx, empl); err != nil {
			return err
		}

		created = *empl
		return nil
	})
	if err != nil {
		s.logger.Error("create employee failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", created.ID.String()),
		zap.String("employee_code", created.EmployeeCode),
	)
	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = mapToResponse(e)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	if err := validateCompensation(req.MonthlyBasic, req.HRA, req.OtherAllowances, req.PFPercent, req.TaxPercent); err != nil {
		return EmployeeResponse{}, err
	}

	dateOfJoining, err := time.Parse("2006-01-02", req.DateOfJoining)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateFormat
	}

	var updated Employee
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		e, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		var departmentID *uuid.UUID
		if req.DepartmentID != nil && *req.DepartmentID != "" {
			exists, err := qtx.DepartmentExists(ctx, *req.DepartmentID)
			if err != nil {
				return err
			}
			if !exists {
				return employeeerrors.ErrDepartmentNotFound
			}
			did := uuid.MustParse(*req.DepartmentID)
			departmentID = &did
		}

		e.DepartmentID = departmentID
		e.FirstName = req.FirstName
		e.LastName = req.LastName
		e.Email = req.Email
		e.DateOfJoining = dateOfJoining
		e.MonthlyBasic = req.MonthlyBasic
		e.HRA = req.HRA
		e.OtherAllowances = req.OtherAllowances
		e.PFPercent = req.PFPercent
		e.TaxPercent = req.TaxPercent
		if req.IsActive != nil {
			e.IsActive = *req.IsActive
		}

		if err := qtx.Update(ctx, e); err != nil {
			return err
		}

		updated = *e
		return nil
	})
	if err != nil {
		s.logger.Error("update employee failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(updated), nil
}

// Delete deactivates employees that already carry payslips so historical
// payroll keeps its reference; employees without payroll history are removed.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		hasPayslips, err := qtx.HasPayslips(ctx, id)
		if err != nil {
			return err
		}

		if hasPayslips {
			return qtx.Deactivate(ctx, id)
		}

		return tx.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
	})
	if err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}
	return nil
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:              e.ID.String(),
		FirstName:       e.FirstName,
		LastName:        e.LastName,
		EmployeeCode:    e.EmployeeCode,
		Email:           e.Email,
		DateOfJoining:   e.DateOfJoining.Format("2006-01-02"),
		IsActive:        e.IsActive,
		MonthlyBasic:    e.MonthlyBasic,
		HRA:             e.HRA,
		OtherAllowances: e.OtherAllowances,
		PFPercent:       e.PFPercent,
		TaxPercent:      e.TaxPercent,
	}

	if e.DepartmentID != nil {
		v := e.DepartmentID.String()
		resp.DepartmentID = &v
	}

	return resp
}
