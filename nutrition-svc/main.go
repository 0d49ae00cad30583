package main

import (
	"net/http"

	"carehome/config"
	"carehome/consumption"
	httpapi "carehome/nutrition-svc/internal/api/http"
	"carehome/nutrition-svc/internal/client"
	"carehome/nutrition-svc/internal/service"
	"carehome/nutrition-svc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("nutrition-svc")
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

	httpClient := &http.Client{Timeout: cfg.Timeout}
	menus := client.NewMenuClient(cfg.Upstreams.MenuSvcURL, httpClient)
	careLogs := client.NewCareLogClient(cfg.Upstreams.CareLogSvcURL, httpClient, cfg.Nutrition.CareLogPageSize)

	keywords := make(map[consumption.MealSlot][]string, len(cfg.Nutrition.SlotKeywords))
	for slot, words := range cfg.Nutrition.SlotKeywords {
		keywords[consumption.MealSlot(slot)] = words
	}

	svc := service.NewNutritionService(
		menus,
		careLogs,
		storage.NewRedisCache(rdb, cfg.Nutrition.SummaryTTL),
		consumption.NewMatcher(loc, keywords),
		logger,
	)
	svc.SetComputeTimeout(cfg.Nutrition.ComputeTimeout)

	handler := httpapi.NewHandler(svc, logger)
	httpapi.StartServer(cfg.HTTPAddr, httpapi.NewRouter(handler), logger)
}
