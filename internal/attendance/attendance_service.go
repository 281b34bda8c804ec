package attendance

import (
	"context"
	"time"

	attendanceerrors "go-payroll/internal/attendance/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, employeeID string, from, to *time.Time) ([]AttendanceResponse, error)
	GetByID(ctx context.Context, id string) (AttendanceResponse, error)
	Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func validateClockTime(v *string) error {
	if v == nil || *v == "" {
		return nil
	}
	if _, err := time.Parse("15:04", *v); err != nil {
		return attendanceerrors.ErrInvalidTimeFormat
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDateFormat
	}
	if err := validateClockTime(req.CheckIn); err != nil {
		return AttendanceResponse{}, err
	}
	if err := validateClockTime(req.CheckOut); err != nil {
		return AttendanceResponse{}, err
	}

	fullDay := true
	if req.FullDay != nil {
		fullDay = *req.FullDay
	}

	var created Attendance
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		exists, err := qtx.EmployeeExists(ctx, req.EmployeeID)
		if err != nil {
			return err
		}
		if !exists {
			return attendanceerrors.ErrEmployeeNotFound
		}

		a := &Attendance{
			ID:         uuid.New(),
			EmployeeID: uuid.MustParse(req.EmployeeID),
			Date:       date,
			CheckIn:    req.CheckIn,
			CheckOut:   req.CheckOut,
			FullDay:    fullDay,
			IsHoliday:  req.IsHoliday,
		}

		if err := qtx.Create(ctx, a); err != nil {
			return err
		}

		created = *a
		return nil
	})
	if err != nil {
		s.logger.Warn("create attendance failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("date", req.Date),
			zap.Error(err),
		)
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(created), nil
}

func (s *service) GetAll(ctx context.Context, employeeID string, from, to *time.Time) ([]AttendanceResponse, error) {
	records, err := s.repo.FindAll(ctx, employeeID, from, to)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]AttendanceResponse, len(records))
	for i, a := range records {
		resp[i] = mapToResponse(a)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (AttendanceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*a), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}
	if err := validateClockTime(req.CheckIn); err != nil {
		return AttendanceResponse{}, err
	}
	if err := validateClockTime(req.CheckOut); err != nil {
		return AttendanceResponse{}, err
	}

	var updated Attendance
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		a, err := qtx.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if req.CheckIn != nil {
			a.CheckIn = req.CheckIn
		}
		if req.CheckOut != nil {
			a.CheckOut = req.CheckOut
		}
		if req.FullDay != nil {
			a.FullDay = *req.FullDay
		}
		if req.IsHoliday != nil {
			a.IsHoliday = *req.IsHoliday
		}

		if err := qtx.Update(ctx, a); err != nil {
			return err
		}

		updated = *a
		return nil
	})
	if err != nil {
		s.logger.Error("update attendance failed", zap.String("attendance_id", id), zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return attendanceerrors.ErrInvalidAttendanceID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Date:       a.Date.Format("2006-01-02"),
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		FullDay:    a.FullDay,
		IsHoliday:  a.IsHoliday,
	}
}
