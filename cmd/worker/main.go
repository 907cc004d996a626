package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/reinvvay/airport-api/internal/bootstrap"
	"github.com/reinvvay/airport-api/internal/kafka"
	"github.com/reinvvay/airport-api/internal/notify"
)

func main() {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	logger := bootstrap.NewLogger(cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.EventsTopic, logger)
	defer consumer.Close()

	notifier := notify.NewNotifier(notify.NewLogSender(logger), logger)

	logger.Info("worker started", "topic", cfg.Kafka.EventsTopic, "group", cfg.Kafka.GroupID)
	if err := consumer.Consume(ctx, notifier.Handle); err != nil {
		logger.Error("consumer stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("worker stopped")
}
