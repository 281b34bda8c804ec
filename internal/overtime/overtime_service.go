package overtime

import (
	"context"
	"time"

	overtimeerrors "go-payroll/internal/overtime/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=overtime_service.go -destination=mock/overtime_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateOvertimeRequest) (OvertimeResponse, error)
	GetAll(ctx context.Context, employeeID string, approved *bool) ([]OvertimeResponse, error)
	GetByID(ctx context.Context, id string) (OvertimeResponse, error)
	Update(ctx context.Context, id string, req UpdateOvertimeRequest) (OvertimeResponse, error)
	Approve(ctx context.Context, id string) (OvertimeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("overtime.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("overtime.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateOvertimeRequest) (OvertimeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return OvertimeResponse{}, overtimeerrors.ErrInvalidDateFormat
	}
	if !req.Hours.IsPositive() {
		return OvertimeResponse{}, overtimeerrors.ErrInvalidHours
	}

	var created OvertimeRecord
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		if !exists {
			return overtimeerrors.ErrEmployeeNotFound
		}

		o := &OvertimeRecord{
			ID:         uuid.New(),
			EmployeeID: uuid.MustParse(req.EmployeeID),
			Date:       date,
			Hours:      req.Hours,
			Approved:   false,
		}

		if err := qtx.Create(ctx, o); err != nil {
			return err
		}

		created = *o
		return nil
	})
	if err != nil {
		s.logger.Error("create overtime failed", zap.String("request_id", rid), zap.Error(err))
		return OvertimeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create overtime success",
		zap.String("request_id", rid),
		zap.String("overtime_id", created.ID.String()),
		zap.String("hours", created.Hours.String()),
	)
	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context, employeeID string, approved *bool) ([]OvertimeResponse, error) {
	records, err := s.repo.FindAll(ctx, employeeID, approved)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]OvertimeResponse, len(records))
	for i, o := range records {
		resp[i] = mapToResponse(o)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (OvertimeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return OvertimeResponse{}, overtimeerrors.ErrInvalidOvertimeID
	}

	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return OvertimeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*o), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateOvertimeRequest) (OvertimeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return OvertimeResponse{}, overtimeerrors.ErrInvalidOvertimeID
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return OvertimeResponse{}, overtimeerrors.ErrInvalidDateFormat
	}
	if !req.Hours.IsPositive() {
		return OvertimeResponse{}, overtimeerrors.ErrInvalidHours
	}

	var updated OvertimeRecord
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		o, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		o.Date = date
		o.Hours = req.Hours

		if err := qtx.Update(ctx, o); err != nil {
			return err
		}

		updated = *o
		return nil
	})
	if err != nil {
		s.logger.Error("update overtime failed", zap.String("overtime_id", id), zap.Error(err))
		return OvertimeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(updated), nil
}

func (s *service) Approve(ctx context.Context, id string) (OvertimeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return OvertimeResponse{}, overtimeerrors.ErrInvalidOvertimeID
	}

	var approved OvertimeRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		o, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if o.Approved {
			return overtimeerrors.ErrAlreadyApproved
		}

		o.Approved = true
		if err := qtx.Update(ctx, o); err != nil {
			return err
		}

		approved = *o
		return nil
	})
	if err != nil {
		s.logger.Error("approve overtime failed", zap.String("overtime_id", id), zap.Error(err))
		return OvertimeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("overtime approved", zap.String("overtime_id", id))
	return mapToResponse(approved), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return overtimeerrors.ErrInvalidOvertimeID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

func mapToResponse(o OvertimeRecord) OvertimeResponse {
	return OvertimeResponse{
		ID:         o.ID.String(),
		EmployeeID: o.EmployeeID.String(),
		Date:       o.Date.Format("2006-01-02"),
		Hours:      o.Hours,
		Approved:   o.Approved,
	}
}
