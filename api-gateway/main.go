package main

import (
	"net/http"

	"carehome/api-gateway/internal/gateway"
	"carehome/config"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("api-gateway")
	if err != nil {
		panic(err)
	}
	logger := config.MustLogger(cfg)
	defer logger.Sync()

	gw := gateway.NewGateway(gateway.Config{
		MenuSvcURL:      cfg.Upstreams.MenuSvcURL,
		CareLogSvcURL:   cfg.Upstreams.CareLogSvcURL,
		NutritionSvcURL: cfg.Upstreams.NutritionSvcURL,
	}, &http.Client{Timeout: cfg.Timeout}, logger)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})
	handler := c.Handler(gw.SetupRoutes())

	logger.Info("API Gateway starting", zap.String("addr", cfg.HTTPAddr))
	if err := http.ListenAndServe(cfg.HTTPAddr, handler); err != nil {
		logger.Fatal("API Gateway stopped", zap.Error(err))
	}
}
