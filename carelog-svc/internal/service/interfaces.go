package service

import (
	"context"
	"time"

	"carehome/carelog-svc/internal/domain"
)

type CareLogServiceInterface interface {
	Record(ctx context.Context, log *domain.CareLog) error
	Get(id int) (*domain.CareLog, error)
	List(filter domain.ListFilter) (*domain.Page, error)
	UpdateStatus(ctx context.Context, id int, status string) (*domain.CareLog, error)
}

type CareLogRepository interface {
	InsertCareLog(log *domain.CareLog) error
	GetCareLog(id int) (*domain.CareLog, error)
	ListCareLogs(filter domain.ListFilter) ([]domain.CareLog, int, error)
	UpdateStatus(id int, status string) (*domain.CareLog, error)
}

type DuplicateGuard interface {
	MarkerKey(residentID int, startTime time.Time, mealType string) string
	// Claim sets the marker for key unless it is already set and reports
	// whether this caller set it.
	Claim(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

var _ CareLogServiceInterface = (*CareLogService)(nil)
