package service

import (
	"context"
	"time"

	"carehome/consumption"
	"carehome/nutrition-svc/internal/client"
	"carehome/nutrition-svc/internal/domain"
	"carehome/nutrition-svc/internal/storage"
)

type MenuSource interface {
	WeeklyMenu(ctx context.Context, weekStart string) ([]consumption.WeeklyMenuItem, error)
	NutritionReport(ctx context.Context, weekStart string) (*domain.NutritionReport, error)
}

type CareLogSource interface {
	ListCareLogs(ctx context.Context, residentID int, from, to time.Time) ([]consumption.CareLog, error)
}

type SummaryCache interface {
	GetSummary(ctx context.Context, residentID int, weekStart string) (*domain.WeeklySummary, error)
	Generation(ctx context.Context, residentID int, weekStart string) (int64, error)
	SetSummary(ctx context.Context, summary *domain.WeeklySummary, generation int64) error
	TopActivity(ctx context.Context, date string, limit int) ([]domain.ResidentActivity, error)
}

type NutritionServiceInterface interface {
	WeeklySummary(ctx context.Context, residentID int, weekStart string) (*domain.WeeklySummary, error)
	Activity(ctx context.Context, date string) (*domain.ActivityReport, error)
	Classify(text, status string) (consumption.ConsumptionInfo, error)
}

var (
	_ MenuSource                = (*client.MenuClient)(nil)
	_ CareLogSource             = (*client.CareLogClient)(nil)
	_ SummaryCache              = (*storage.RedisCache)(nil)
	_ NutritionServiceInterface = (*NutritionService)(nil)
)
