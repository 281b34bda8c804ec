package main

import (
	"go-payroll/internal/app"
	"go-payroll/internal/bootstrap"
	"go-payroll/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	application, err := app.BuildApp(logger)
	if err != nil {
		logger.Fatal("failed to build application", zap.Error(err))
	}

	router := application.BuildRouter()

	bootstrap.StartHTTPServer(
		router,
		application.ServerConfig(),
		bootstrap.NewStdoutAuditLogger(),
	)
}
