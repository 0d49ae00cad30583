package main

import (
	httpapi "carehome/carelog-svc/internal/api/http"
	"carehome/carelog-svc/internal/service"
	"carehome/carelog-svc/internal/storage"
	"carehome/config"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("carelog-svc")
	if err != nil {
		panic(err)
	}
	logger := config.MustLogger(cfg)
	defer logger.Sync()

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal("Invalid timezone", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	db := config.MustInitPostgres(cfg.Postgres, logger)
	defer db.Close()
	rdb := config.MustInitRedis(cfg.Redis, logger)
	defer rdb.Close()
	writer := config.NewKafkaWriter(cfg.Kafka)
	defer writer.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		logger.Fatal("Failed to ensure schema", zap.Error(err))
	}

	careLogs := service.NewCareLogService(
		repo,
		storage.NewRedisGuard(rdb, cfg.Nutrition.DuplicateTTL),
		storage.NewKafkaPublisher(writer),
		logger,
	)

	handler := httpapi.NewHandler(careLogs, loc, logger)
	httpapi.StartServer(cfg.HTTPAddr, httpapi.NewRouter(handler), logger)
}
