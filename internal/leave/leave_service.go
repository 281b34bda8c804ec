package leave

import (
	"context"
	"time"

	leaveerrors "go-payroll/internal/leave/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, employeeID, status string) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, id string) (LeaveResponse, error)
	Reject(ctx context.Context, id string) (LeaveResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// LeaveDays counts the days in [start, end], both endpoints included.
func LeaveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

func parseLeaveDates(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return start, end, nil
}

func (s *service) Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	start, end, err := parseLeaveDates(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("create leave validation failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	var created LeaveRequest
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		if !exists {
			return leaveerrors.ErrEmployeeNotFound
		}

		l := &LeaveRequest{
			ID:         uuid.New(),
			EmployeeID: uuid.MustParse(req.EmployeeID),
			StartDate:  start,
			EndDate:    end,
			Days:       LeaveDays(start, end),
			Status:     StatusPending,
			Unpaid:     req.Unpaid,
		}

		if err := qtx.Create(ctx, l); err != nil {
			return err
		}

		created = *l
		return nil
	})
	if err != nil {
		s.logger.Error("create leave failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", created.ID.String()),
		zap.Int("days", created.Days),
	)
	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context, employeeID, status string) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAll(ctx, employeeID, status)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*l), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateLeaveRequest) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	start, end, err := parseLeaveDates(req.StartDate, req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}

	var updated LeaveRequest
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		l, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		l.StartDate = start
		l.EndDate = end
		// Days always follows the dates, never the caller.
		l.Days = LeaveDays(start, end)
		if req.Unpaid != nil {
			l.Unpaid = *req.Unpaid
		}

		if err := qtx.Update(ctx, l); err != nil {
			return err
		}

		updated = *l
		return nil
	})
	if err != nil {
		s.logger.Error("update leave failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(updated), nil
}

func (s *service) Approve(ctx context.Context, id string) (LeaveResponse, error) {
	return s.decide(ctx, id, StatusApproved)
}

func (s *service) Reject(ctx context.Context, id string) (LeaveResponse, error) {
	return s.decide(ctx, id, StatusRejected)
}

func (s *service) decide(ctx context.Context, id, status string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	var decided LeaveRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		l, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if l.Status != StatusPending {
			return leaveerrors.ErrAlreadyDecided
		}

		l.Status = status
		if err := qtx.Update(ctx, l); err != nil {
			return err
		}

		decided = *l
		return nil
	})
	if err != nil {
		s.logger.Error("decide leave failed",
			zap.String("leave_id", id),
			zap.String("status", status),
			zap.Error(err),
		)
		return LeaveResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("leave decided", zap.String("leave_id", id), zap.String("status", status))
	return mapToResponse(decided), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return leaveerrors.ErrInvalidLeaveID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		Days:       l.Days,
		Status:     l.Status,
		Unpaid:     l.Unpaid,
	}
}
