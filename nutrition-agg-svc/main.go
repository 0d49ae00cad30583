package main

import (
	"context"
	"os/signal"
	"syscall"

	"carehome/config"
	"carehome/nutrition-agg-svc/internal/service"
	"carehome/nutrition-agg-svc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("nutrition-agg-svc")
	if err != nil {
		panic(err)
	}
	logger := config.MustLogger(cfg)
	defer logger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal("Invalid timezone", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	rdb := config.MustInitRedis(cfg.Redis, logger)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.Kafka)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb), loc, logger)
	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("Consumer failed", zap.Error(err))
	}
}
