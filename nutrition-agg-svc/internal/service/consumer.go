package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"carehome/consumption"
	"carehome/nutrition-agg-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

var (
	ErrUnknownEvent = errors.New("unknown event type")
	ErrInvalidEvent = errors.New("invalid event")
)

const (
	DefaultMaxAttempts = 5
	DefaultRetryDelay  = time.Second
)

type Consumer struct {
	Reader      MessageReader
	Store       StoreInterface
	Location    *time.Location
	Logger      *zap.Logger
	MaxAttempts int
	RetryDelay  time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface, loc *time.Location, logger *zap.Logger) *Consumer {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		Reader:      reader,
		Store:       store,
		Location:    loc,
		Logger:      logger,
		MaxAttempts: DefaultMaxAttempts,
		RetryDelay:  DefaultRetryDelay,
	}
}

// Start reads the care-log topic until ctx is cancelled. A message's offset
// is committed only once it has been handled: applied, skipped as malformed
// or unknown, or given up on after MaxAttempts. A message interrupted by
// shutdown stays uncommitted and is redelivered.
func (c *Consumer) Start(ctx context.Context) error {
	c.Logger.Info("Starting nutrition aggregation consumer")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Logger.Info("Consumer stopped")
				return nil
			}
			c.Logger.Error("Error fetching message", zap.Error(err))
			continue
		}

		c.handle(ctx, message)
		if ctx.Err() != nil {
			c.Logger.Info("Consumer stopped")
			return nil
		}

		if err := c.Reader.CommitMessages(ctx, message); err != nil {
			if ctx.Err() != nil {
				c.Logger.Info("Consumer stopped")
				return nil
			}
			c.Logger.Error("Error committing message",
				zap.Int64("offset", message.Offset), zap.Error(err))
		}
	}
}

func (c *Consumer) handle(ctx context.Context, message kafka.Message) {
	var event domain.CareLogEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		c.Logger.Warn("Skipping malformed message",
			zap.Int64("offset", message.Offset), zap.Error(err))
		return
	}

	for attempt := 1; ; attempt++ {
		err := c.ProcessEvent(ctx, event)
		if err == nil {
			return
		}
		if errors.Is(err, ErrUnknownEvent) || errors.Is(err, ErrInvalidEvent) {
			c.Logger.Warn("Skipping event", zap.String("event_id", event.EventID), zap.Error(err))
			return
		}
		if attempt >= c.MaxAttempts {
			c.Logger.Error("Giving up on event",
				zap.String("event_id", event.EventID),
				zap.Int("attempts", attempt),
				zap.Error(err))
			return
		}
		c.Logger.Warn("Failed to process event, retrying",
			zap.String("event_id", event.EventID),
			zap.Int("attempt", attempt),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return
		case <-time.After(c.RetryDelay):
		}
	}
}

// ProcessEvent drops the cached weekly summary the event makes stale and
// counts the log toward the resident's activity on its day. Redelivered
// events are applied once; an event that fails part-way is released so a
// retry applies it again.
func (c *Consumer) ProcessEvent(ctx context.Context, event domain.CareLogEvent) error {
	if event.Type != domain.EventRecorded && event.Type != domain.EventUpdated {
		return fmt.Errorf("%w: %q", ErrUnknownEvent, event.Type)
	}
	if event.ResidentID <= 0 || event.StartTime.IsZero() {
		return fmt.Errorf("%w: %s is missing resident or start time", ErrInvalidEvent, event.EventID)
	}

	if event.EventID != "" {
		first, err := c.Store.MarkProcessed(ctx, event.EventID)
		if err != nil {
			return fmt.Errorf("mark processed: %w", err)
		}
		if !first {
			c.Logger.Debug("Skipping redelivered event", zap.String("event_id", event.EventID))
			return nil
		}
	}

	weekStart := consumption.WeekStartOf(event.StartTime, c.Location).Format(consumption.DateLayout)
	if err := c.apply(ctx, event, weekStart); err != nil {
		if event.EventID != "" {
			if forgetErr := c.Store.ForgetEvent(ctx, event.EventID); forgetErr != nil {
				c.Logger.Warn("Failed to release event marker",
					zap.String("event_id", event.EventID), zap.Error(forgetErr))
			}
		}
		return err
	}

	c.Logger.Debug("Processed care log event",
		zap.String("type", event.Type),
		zap.Int("resident_id", event.ResidentID),
		zap.String("week_start", weekStart))
	return nil
}

func (c *Consumer) apply(ctx context.Context, event domain.CareLogEvent, weekStart string) error {
	if err := c.Store.InvalidateSummary(ctx, event.ResidentID, weekStart); err != nil {
		return fmt.Errorf("invalidate summary: %w", err)
	}
	day := event.StartTime.In(c.Location).Format(consumption.DateLayout)
	if err := c.Store.RecordActivity(ctx, event.ResidentID, day); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}
