package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"carehome/carelog-svc/internal/domain"
	"carehome/consumption"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidCareLog   = errors.New("invalid care log")
	ErrInvalidStatus    = errors.New("status must be pending, in_progress or completed")
	ErrDuplicateCareLog = errors.New("care log already recorded for this resident and meal")
	ErrInvalidFilter    = errors.New("invalid care log filter")
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 500
)

type CareLogService struct {
	repository CareLogRepository
	guard      DuplicateGuard
	publisher  EventPublisher
	logger     *zap.Logger
	now        func() time.Time
}

func NewCareLogService(repository CareLogRepository, guard DuplicateGuard, publisher EventPublisher, logger *zap.Logger) *CareLogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CareLogService{
		repository: repository,
		guard:      guard,
		publisher:  publisher,
		logger:     logger,
		now:        time.Now,
	}
}

// Record stores a new care log. A second submission for the same resident,
// start time and meal type inside the guard's TTL is rejected.
func (s *CareLogService) Record(ctx context.Context, log *domain.CareLog) error {
	if log.ResidentID <= 0 {
		return fmt.Errorf("%w: resident_id is required", ErrInvalidCareLog)
	}
	if log.StartTime.IsZero() {
		return fmt.Errorf("%w: start_time is required", ErrInvalidCareLog)
	}
	if log.Status == "" {
		log.Status = string(consumption.StatusPending)
	}
	if !consumption.LogStatus(log.Status).Valid() {
		return ErrInvalidStatus
	}
	if slot, ok := consumption.ParseMealSlot(log.MealType); ok {
		log.MealType = string(slot)
	}
	log.Title = strings.TrimSpace(log.Title)

	key := s.guard.MarkerKey(log.ResidentID, log.StartTime, log.MealType)
	claimed, err := s.guard.Claim(ctx, key)
	if err != nil {
		s.logger.Warn("Duplicate marker unavailable", zap.String("key", key), zap.Error(err))
	} else if !claimed {
		return ErrDuplicateCareLog
	}

	if err := s.repository.InsertCareLog(log); err != nil {
		if claimed {
			if relErr := s.guard.Release(ctx, key); relErr != nil {
				s.logger.Warn("Failed to release duplicate marker", zap.String("key", key), zap.Error(relErr))
			}
		}
		return fmt.Errorf("insert care log: %w", err)
	}

	s.publish(ctx, domain.EventRecorded, log)
	return nil
}

func (s *CareLogService) Get(id int) (*domain.CareLog, error) {
	return s.repository.GetCareLog(id)
}

func (s *CareLogService) List(filter domain.ListFilter) (*domain.Page, error) {
	if filter.ResidentID <= 0 {
		return nil, fmt.Errorf("%w: resident_id is required", ErrInvalidFilter)
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && !filter.From.Before(filter.To) {
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidFilter)
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultPageLimit
	}
	if filter.Limit > MaxPageLimit {
		filter.Limit = MaxPageLimit
	}

	logs, total, err := s.repository.ListCareLogs(filter)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []domain.CareLog{}
	}
	return &domain.Page{
		Data:    logs,
		Page:    filter.Page,
		Limit:   filter.Limit,
		Total:   total,
		HasMore: filter.Page*filter.Limit < total,
	}, nil
}

func (s *CareLogService) UpdateStatus(ctx context.Context, id int, status string) (*domain.CareLog, error) {
	if !consumption.LogStatus(status).Valid() {
		return nil, ErrInvalidStatus
	}
	log, err := s.repository.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, domain.EventUpdated, log)
	return log, nil
}

func (s *CareLogService) publish(ctx context.Context, eventType string, log *domain.CareLog) {
	if s.publisher == nil {
		return
	}
	event := domain.Event{
		EventID:    uuid.NewString(),
		Type:       eventType,
		CareLogID:  log.ID,
		ResidentID: log.ResidentID,
		Status:     log.Status,
		StartTime:  log.StartTime,
		Timestamp:  s.now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish care log event",
			zap.String("type", eventType), zap.Int("care_log_id", log.ID), zap.Error(err))
	}
}
