package main

import (
	"carehome/config"
	httpapi "carehome/menu-svc/internal/api/http"
	"carehome/menu-svc/internal/service"
	"carehome/menu-svc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("menu-svc")
	if err != nil {
		panic(err)
	}
	logger := config.MustLogger(cfg)
	defer logger.Sync()

	db := config.MustInitPostgres(cfg.Postgres, logger)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		logger.Fatal("Failed to ensure schema", zap.Error(err))
	}

	dishes := service.NewDishService(repo)
	menus := service.NewMenuService(repo, repo, service.DefaultQRGenerator{BaseURL: cfg.PublicURL})

	handler := httpapi.NewHandler(dishes, menus, logger)
	httpapi.StartServer(cfg.HTTPAddr, httpapi.NewRouter(handler), logger)
}
