package main

import (
	"context"
	"flag"
	"time"

	"go-payroll/internal/app"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/payroll"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// runpayroll executes one payroll run from the command line, the same code
// path the POST /payroll/run endpoint uses.
func main() {
	now := time.Now()
	year := flag.Int("year", now.Year(), "payroll year (1-9999)")
	month := flag.Int("month", int(now.Month()), "payroll month (1-12)")
	finalize := flag.Bool("finalize", false, "finalize the period after computing")
	force := flag.Bool("force", false, "recompute even if the period is finalized")
	flag.Parse()

	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	application, err := app.BuildApp(logger)
	if err != nil {
		logger.Fatal("failed to build application", zap.Error(err))
	}

	repo := payroll.NewRepository(application.DB)
	outboxRepo := kafka.NewOutboxRepository(application.DB)
	service := payroll.NewService(application.DB, repo, outboxRepo, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	payslips, err := service.Run(ctx, payroll.RunPayrollRequest{
		Year:     *year,
		Month:    *month,
		Finalize: *finalize,
		Force:    *force,
	})
	if err != nil {
		logger.Fatal("payroll run failed",
			zap.Int("year", *year),
			zap.Int("month", *month),
			zap.Error(err),
		)
	}

	logger.Info("payroll run finished",
		zap.Int("year", *year),
		zap.Int("month", *month),
		zap.Bool("finalized", *finalize),
		zap.Int("payslip_count", len(payslips)),
	)
}
