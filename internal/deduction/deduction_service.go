package deduction

import (
	"context"
	"time"

	deductionerrors "go-payroll/internal/deduction/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=deduction_service.go -destination=mock/deduction_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDeductionRequest) (DeductionResponse, error)
	GetAll(ctx context.Context, employeeID string) ([]DeductionResponse, error)
	GetByID(ctx context.Context, id string) (DeductionResponse, error)
	Update(ctx context.Context, id string, req UpdateDeductionRequest) (DeductionResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("deduction.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("deduction.service")
	}
	return &service{db: db, repo: repo, logger: l, now: time.Now}
}

func (s *service) Create(ctx context.Context, req CreateDeductionRequest) (DeductionResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if !req.Amount.IsPositive() {
		return DeductionResponse{}, deductionerrors.ErrInvalidAmount
	}

	date := s.now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return DeductionResponse{}, deductionerrors.ErrInvalidDateFormat
		}
		date = parsed
	}

	var created Deduction
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		if !exists {
			return deductionerrors.ErrEmployeeNotFound
		}

		d := &Deduction{
			ID:         uuid.New(),
			EmployeeID: uuid.MustParse(req.EmployeeID),
			Name:       req.Name,
			Amount:     req.Amount,
			Reason:     req.Reason,
			Date:       date,
		}

		if err := qtx.Create(ctx, d); err != nil {
			return err
		}

		created = *d
		return nil
	})
	if err != nil {
		s.logger.Error("create deduction failed", zap.String("request_id", rid), zap.Error(err))
		return DeductionResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create deduction success",
		zap.String("request_id", rid),
		zap.String("deduction_id", created.ID.String()),
		zap.String("amount", created.Amount.String()),
	)
	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context, employeeID string) ([]DeductionResponse, error) {
	deductions, err := s.repo.FindAll(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]DeductionResponse, len(deductions))
	for i, d := range deductions {
		resp[i] = mapToResponse(d)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (DeductionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DeductionResponse{}, deductionerrors.ErrInvalidDeductionID
	}

	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DeductionResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*d), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDeductionRequest) (DeductionResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DeductionResponse{}, deductionerrors.ErrInvalidDeductionID
	}

	if !req.Amount.IsPositive() {
		return DeductionResponse{}, deductionerrors.ErrInvalidAmount
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return DeductionResponse{}, deductionerrors.ErrInvalidDateFormat
	}

	var updated Deduction
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		d, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		d.Name = req.Name
		d.Amount = req.Amount
		d.Reason = req.Reason
		d.Date = date

		if err := qtx.Update(ctx, d); err != nil {
			return err
		}

		updated = *d
		return nil
	})
	if err != nil {
		s.logger.Error("update deduction failed", zap.String("deduction_id", id), zap.Error(err))
		return DeductionResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return deductionerrors.ErrInvalidDeductionID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

func mapToResponse(d Deduction) DeductionResponse {
	return DeductionResponse{
		ID:         d.ID.String(),
		EmployeeID: d.EmployeeID.String(),
		Name:       d.Name,
		Amount:     d.Amount,
		Reason:     d.Reason,
		Date:       d.Date.Format("2006-01-02"),
	}
}
