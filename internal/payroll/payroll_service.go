package payroll

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Run(ctx context.Context, req RunPayrollRequest) ([]PayslipResponse, error)
	GetPeriods(ctx context.Context) ([]PeriodResponse, error)
	GetPeriod(ctx context.Context, year, month int) (PeriodResponse, error)
	GetPayslips(ctx context.Context, year, month int, viewer Viewer) ([]PayslipResponse, error)
	GetPayslipByID(ctx context.Context, id string, viewer Viewer) (PayslipResponse, error)
	ExportCSV(ctx context.Context, year, month int) ([]byte, error)
	ExportXLSX(ctx context.Context, year, month int) ([]byte, error)
	ExportPayslipPDF(ctx context.Context, id string, viewer Viewer) ([]byte, error)
}

// Viewer identifies the caller for payslip reads. Non-hr callers only see
// payslips whose employee email matches their own.
type Viewer struct {
	Email string
	Role  string
}

func (v Viewer) IsHR() bool {
	return v.Role == "hr"
}

type service struct {
	db         *gorm.DB
	repo       Repository
	outboxRepo kafka.OutboxRepository
	runGroup   singleflight.Group
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(db *gorm.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		outboxRepo: outboxRepo,
		logger:     l,
		now:        time.Now,
	}
}

func validPeriod(year, month int) bool {
	return year >= 1 && year <= 9999 && month >= 1 && month <= 12
}

// Run computes payroll for every active employee in (year, month) inside a
// single transaction. Concurrent runs for the same period collapse into one
// execution through the singleflight group.
func (s *service) Run(ctx context.Context, req RunPayrollRequest) ([]PayslipResponse, error) {
	if !validPeriod(req.Year, req.Month) {
		return nil, payrollerrors.ErrInvalidPeriod
	}

	key := fmt.Sprintf("%04d-%02d", req.Year, req.Month)
	result, err, _ := s.runGroup.Do(key, func() (interface{}, error) {
		return s.runOnce(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return result.([]PayslipResponse), nil
}

func (s *service) runOnce(ctx context.Context, req RunPayrollRequest) ([]PayslipResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Info("payroll run started",
		zap.String("request_id", rid),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.Bool("finalize", req.Finalize),
		zap.Bool("force", req.Force),
	)

	var payslips []Payslip
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		period, err := qtx.GetOrCreatePeriod(ctx, req.Year, req.Month)
		if err != nil {
			return err
		}
		if period.Finalized && !req.Force {
			return payrollerrors.ErrPeriodFinalized
		}

		employees, err := qtx.ListActiveEmployees(ctx)
		if err != nil {
			return err
		}

		opts := DefaultCalcOptions()
		for _, emp := range employees {
			overtime, err := qtx.ApprovedOvertimeHours(ctx, emp.ID, req.Year, req.Month)
			if err != nil {
				return err
			}
			unpaidDays, err := qtx.UnpaidLeaveDays(ctx, emp.ID, req.Year, req.Month)
			if err != nil {
				return err
			}
			deductions, err := qtx.MonthDeductions(ctx, emp.ID, req.Year, req.Month)
			if err != nil {
				return err
			}

			breakdown := Compute(
				PayProfile{
					Basic:           emp.MonthlyBasic,
					HRA:             emp.HRA,
					OtherAllowances: emp.OtherAllowances,
					PFPercent:       emp.PFPercent,
					TaxPercent:      emp.TaxPercent,
				},
				req.Year, req.Month,
				CalculationInput{
					OvertimeHours:    overtime,
					UnpaidLeaveDays:  unpaidDays,
					ManualDeductions: deductions,
				},
				opts,
			)

			slip := Payslip{
				ID:              uuid.New(),
				PayrollPeriodID: period.ID,
				EmployeeID:      uuid.MustParse(emp.ID),
				GrossPay:        breakdown.Gross,
				TotalDeductions: breakdown.TotalDeductions,
				NetPay:          breakdown.NetPay,
				Details:         breakdown.Details,
			}
			if err := qtx.UpsertPayslip(ctx, &slip); err != nil {
				return err
			}
		}

		if req.Finalize {
			now := s.now().UTC()
			period.Finalized = true
			period.ProcessedAt = &now
			if err := qtx.SavePeriod(ctx, period); err != nil {
				return err
			}
		}

		payslips, err = qtx.ListPayslipsByPeriod(ctx, period.ID.String())
		if err != nil {
			return err
		}

		return s.stageRunCompletedEvent(ctx, tx, rid, period, len(payslips))
	})
	if err != nil {
		s.logger.Error("payroll run failed",
			zap.String("request_id", rid),
			zap.Int("year", req.Year),
			zap.Int("month", req.Month),
			zap.Error(err),
		)
		return nil, mapRepositoryError(err)
	}

	s.logger.Info("payroll run completed",
		zap.String("request_id", rid),
		zap.Int("year", req.Year),
		zap.Int("month", req.Month),
		zap.Int("payslip_count", len(payslips)),
	)

	resp := make([]PayslipResponse, len(payslips))
	for i, p := range payslips {
		resp[i] = mapPayslipToResponse(p)
	}
	return resp, nil
}

func (s *service) stageRunCompletedEvent(ctx context.Context, tx *gorm.DB, rid string, period *PayrollPeriod, payslipCount int) error {
	event := events.PayrollRunCompletedEvent{
		EventType:    "payroll.run.completed",
		RequestID:    rid,
		PeriodID:     period.ID.String(),
		Year:         period.Year,
		Month:        period.Month,
		Finalized:    period.Finalized,
		PayslipCount: payslipCount,
		OccurredAt:   s.now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	outboxEvent := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "payroll_period",
		AggregateID:   period.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayrollRunCompletedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := kafka.ValidateOutboxEvent(outboxEvent); err != nil {
		return err
	}

	return s.outboxRepo.WithTx(tx).Create(ctx, outboxEvent)
}

func (s *service) GetPeriods(ctx context.Context) ([]PeriodResponse, error) {
	periods, err := s.repo.ListPeriods(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]PeriodResponse, len(periods))
	for i, p := range periods {
		resp[i] = mapPeriodToResponse(p)
	}
	return resp, nil
}

func (s *service) GetPeriod(ctx context.Context, year, month int) (PeriodResponse, error) {
	if !validPeriod(year, month) {
		return PeriodResponse{}, payrollerrors.ErrInvalidPeriod
	}

	p, err := s.repo.FindPeriod(ctx, year, month)
	if err != nil {
		return PeriodResponse{}, mapRepositoryError(err)
	}
	return mapPeriodToResponse(*p), nil
}

func (s *service) GetPayslips(ctx context.Context, year, month int, viewer Viewer) ([]PayslipResponse, error) {
	payslips, err := s.periodPayslips(ctx, year, month)
	if err != nil {
		return nil, err
	}

	resp := make([]PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		if !viewer.IsHR() && (p.Employee == nil || p.Employee.Email != viewer.Email) {
			continue
		}
		resp = append(resp, mapPayslipToResponse(p))
	}
	return resp, nil
}

func (s *service) GetPayslipByID(ctx context.Context, id string, viewer Viewer) (PayslipResponse, error) {
	p, err := s.findViewablePayslip(ctx, id, viewer)
	if err != nil {
		return PayslipResponse{}, err
	}
	return mapPayslipToResponse(*p), nil
}

func (s *service) periodPayslips(ctx context.Context, year, month int) ([]Payslip, error) {
	if !validPeriod(year, month) {
		return nil, payrollerrors.ErrInvalidPeriod
	}

	period, err := s.repo.FindPeriod(ctx, year, month)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	payslips, err := s.repo.ListPayslipsByPeriod(ctx, period.ID.String())
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return payslips, nil
}

func (s *service) findViewablePayslip(ctx context.Context, id string, viewer Viewer) (*Payslip, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, payrollerrors.ErrInvalidPayslipID
	}

	p, err := s.repo.FindPayslipByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrPayslipNotFound
		}
		return nil, err
	}

	// Hide other employees' payslips rather than admitting they exist.
	if !viewer.IsHR() && (p.Employee == nil || p.Employee.Email != viewer.Email) {
		return nil, payrollerrors.ErrPayslipNotFound
	}
	return p, nil
}

func mapPeriodToResponse(p PayrollPeriod) PeriodResponse {
	resp := PeriodResponse{
		ID:        p.ID.String(),
		Year:      p.Year,
		Month:     p.Month,
		Finalized: p.Finalized,
	}
	if p.ProcessedAt != nil {
		formatted := p.ProcessedAt.UTC().Format(time.RFC3339)
		resp.ProcessedAt = &formatted
	}
	return resp
}

func mapPayslipToResponse(p Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:              p.ID.String(),
		PayrollPeriodID: p.PayrollPeriodID.String(),
		EmployeeID:      p.EmployeeID.String(),
		GrossPay:        p.GrossPay,
		TotalDeductions: p.TotalDeductions,
		NetPay:          p.NetPay,
		Details:         p.Details,
	}
	if p.Employee != nil {
		resp.EmployeeCode = p.Employee.EmployeeCode
		resp.EmployeeName = p.Employee.FullName()
	}
	return resp
}
