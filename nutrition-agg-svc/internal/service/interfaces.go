package service

import (
	"context"

	"carehome/nutrition-agg-svc/internal/domain"
	"carehome/nutrition-agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
	InvalidateSummary(ctx context.Context, residentID int, weekStart string) error
	RecordActivity(ctx context.Context, residentID int, date string) error
	ForgetEvent(ctx context.Context, eventID string) error
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ConsumerInterface interface {
	Start(ctx context.Context) error
	ProcessEvent(ctx context.Context, event domain.CareLogEvent) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
)
