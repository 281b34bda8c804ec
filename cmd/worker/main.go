package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-payroll/internal/app"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/messaging/kafka/producer"

	"github.com/joho/godotenv"
	kafkago "github.com/segmentio/kafka-go"
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

	application, err := app.BuildApp(logger)
	if err != nil {
		logger.Fatal("failed to build application", zap.Error(err))
	}

	// Topic comes from each outbox row, not the writer.
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(application.Config.KafkaAddr),
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	defer writer.Close()

	outboxRepo := kafka.NewOutboxRepository(application.DB)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit
		logger.Info("shutdown signal received", zap.String("signal", sig.String()))
		cancel()
	}()

	producer.ProcessOutboxEvents(ctx, outboxRepo, writer, logger, 3*time.Second)
}
