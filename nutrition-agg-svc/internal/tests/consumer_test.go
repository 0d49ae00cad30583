package tests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"carehome/nutrition-agg-svc/internal/domain"
	"carehome/nutrition-agg-svc/internal/mocks"
	"carehome/nutrition-agg-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var hcm = time.FixedZone("ICT", 7*3600)

// Sunday 2026-10-18 23:30 in Ho Chi Minh City is still Sunday 16:30 UTC, and
// belongs to the week starting Monday 2026-10-12.
var sundayLate = time.Date(2026, 10, 18, 16, 30, 0, 0, time.UTC)

func TestConsumer_ProcessEvent(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		event          domain.CareLogEvent
		setupMockStore func(*mocks.StoreInterface)
		wantErr        bool
	}{
		{
			name:  "success",
			event: domain.CareLogEvent{EventID: "e1", Type: domain.EventRecorded, ResidentID: 7, StartTime: sundayLate},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("MarkProcessed", ctx, "e1").Return(true, nil).Once()
				mockStore.On("InvalidateSummary", ctx, 7, "2026-10-12").Return(nil).Once()
				mockStore.On("RecordActivity", ctx, 7, "2026-10-18").Return(nil).Once()
			},
		},
		{
			name:  "status update",
			event: domain.CareLogEvent{EventID: "e2", Type: domain.EventUpdated, ResidentID: 8, StartTime: time.Date(2026, 10, 19, 1, 0, 0, 0, time.UTC)},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("MarkProcessed", ctx, "e2").Return(true, nil).Once()
				mockStore.On("InvalidateSummary", ctx, 8, "2026-10-19").Return(nil).Once()
				mockStore.On("RecordActivity", ctx, 8, "2026-10-19").Return(nil).Once()
			},
		},
		{
			name:  "redelivered",
			event: domain.CareLogEvent{EventID: "e1", Type: domain.EventRecorded, ResidentID: 7, StartTime: sundayLate},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("MarkProcessed", ctx, "e1").Return(false, nil).Once()
			},
		},
		{
			name:  "InvalidateSummary error",
			event: domain.CareLogEvent{EventID: "e3", Type: domain.EventRecorded, ResidentID: 7, StartTime: sundayLate},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("MarkProcessed", ctx, "e3").Return(true, nil).Once()
				mockStore.On("InvalidateSummary", ctx, 7, "2026-10-12").Return(errors.New("redis error")).Once()
				mockStore.On("ForgetEvent", ctx, "e3").Return(nil).Once()
			},
			wantErr: true,
		},
		{
			name:  "RecordActivity error",
			event: domain.CareLogEvent{EventID: "e4", Type: domain.EventRecorded, ResidentID: 7, StartTime: sundayLate},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("MarkProcessed", ctx, "e4").Return(true, nil).Once()
				mockStore.On("InvalidateSummary", ctx, 7, "2026-10-12").Return(nil).Once()
				mockStore.On("RecordActivity", ctx, 7, "2026-10-18").Return(errors.New("redis error")).Once()
				mockStore.On("ForgetEvent", ctx, "e4").Return(nil).Once()
			},
			wantErr: true,
		},
		{
			name:  "marker release failure keeps original error",
			event: domain.CareLogEvent{EventID: "e6", Type: domain.EventRecorded, ResidentID: 7, StartTime: sundayLate},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("MarkProcessed", ctx, "e6").Return(true, nil).Once()
				mockStore.On("InvalidateSummary", ctx, 7, "2026-10-12").Return(errors.New("redis error")).Once()
				mockStore.On("ForgetEvent", ctx, "e6").Return(errors.New("redis down")).Once()
			},
			wantErr: true,
		},
		{
			name:           "missing resident",
			event:          domain.CareLogEvent{EventID: "e5", Type: domain.EventRecorded, StartTime: sundayLate},
			setupMockStore: func(*mocks.StoreInterface) {},
			wantErr:        true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := service.NewConsumer(nil, mockStore, hcm, nil)

			err := consumer.ProcessEvent(ctx, testCase.event)
			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConsumer_InvalidEventType(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	consumer := service.NewConsumer(nil, mockStore, hcm, nil)

	err := consumer.ProcessEvent(context.Background(), domain.CareLogEvent{
		Type:       "resident_admitted",
		ResidentID: 1,
		StartTime:  sundayLate,
	})

	assert.ErrorIs(t, err, service.ErrUnknownEvent)
	mockStore.AssertNotCalled(t, "InvalidateSummary")
	mockStore.AssertNotCalled(t, "RecordActivity")
}

func TestConsumer_MissingResidentIsInvalid(t *testing.T) {
	consumer := service.NewConsumer(nil, mocks.NewStoreInterface(t), hcm, nil)

	err := consumer.ProcessEvent(context.Background(), domain.CareLogEvent{
		EventID:   "e7",
		Type:      domain.EventRecorded,
		StartTime: sundayLate,
	})

	assert.ErrorIs(t, err, service.ErrInvalidEvent)
}

type fakeReader struct {
	mu       sync.Mutex
	messages []kafka.Message
	cancel   context.CancelFunc
	journal  *[]string
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.messages) == 0 {
		r.mu.Unlock()
		r.cancel()
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.messages[0]
	r.messages = r.messages[1:]
	r.mu.Unlock()
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, msg := range msgs {
		*r.journal = append(*r.journal, fmt.Sprintf("commit:%d", msg.Offset))
	}
	return nil
}

func TestConsumer_StartSkipsBadMessagesAndStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	good, err := json.Marshal(domain.CareLogEvent{EventID: "e9", Type: domain.EventRecorded, ResidentID: 3, StartTime: sundayLate})
	require.NoError(t, err)
	unknown, err := json.Marshal(domain.CareLogEvent{EventID: "e10", Type: "something_else", ResidentID: 3, StartTime: sundayLate})
	require.NoError(t, err)

	var journal []string
	reader := &fakeReader{
		messages: []kafka.Message{
			{Offset: 0, Value: []byte("{not json")},
			{Offset: 1, Value: unknown},
			{Offset: 2, Value: good},
		},
		cancel:  cancel,
		journal: &journal,
	}

	mockStore := mocks.NewStoreInterface(t)
	mockStore.On("MarkProcessed", ctx, "e9").Return(true, nil).Once()
	mockStore.On("InvalidateSummary", ctx, 3, "2026-10-12").Return(nil).Once()
	mockStore.On("RecordActivity", ctx, 3, "2026-10-18").Return(nil).Once()

	consumer := service.NewConsumer(reader, mockStore, hcm, nil)
	assert.NoError(t, consumer.Start(ctx))
	assert.Equal(t, []string{"commit:0", "commit:1", "commit:2"}, journal)
}

func TestConsumer_StartRetriesFailedEventBeforeCommit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload, err := json.Marshal(domain.CareLogEvent{EventID: "e11", Type: domain.EventRecorded, ResidentID: 7, StartTime: sundayLate})
	require.NoError(t, err)

	var journal []string
	reader := &fakeReader{
		messages: []kafka.Message{{Offset: 5, Value: payload}},
		cancel:   cancel,
		journal:  &journal,
	}
	note := func(entry string) func(mock.Arguments) {
		return func(mock.Arguments) {
			reader.mu.Lock()
			defer reader.mu.Unlock()
			journal = append(journal, entry)
		}
	}

	mockStore := mocks.NewStoreInterface(t)
	mockStore.On("MarkProcessed", ctx, "e11").Return(true, nil).Twice()
	mockStore.On("InvalidateSummary", ctx, 7, "2026-10-12").
		Run(note("invalidate-failed")).Return(errors.New("redis error")).Once()
	mockStore.On("ForgetEvent", ctx, "e11").Run(note("forget")).Return(nil).Once()
	mockStore.On("InvalidateSummary", ctx, 7, "2026-10-12").
		Run(note("invalidate")).Return(nil).Once()
	mockStore.On("RecordActivity", ctx, 7, "2026-10-18").
		Run(note("activity")).Return(nil).Once()

	consumer := service.NewConsumer(reader, mockStore, hcm, nil)
	consumer.RetryDelay = time.Millisecond

	assert.NoError(t, consumer.Start(ctx))
	assert.Equal(t, []string{"invalidate-failed", "forget", "invalidate", "activity", "commit:5"}, journal)
}

func TestConsumer_StartLeavesEventUncommittedOnShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload, err := json.Marshal(domain.CareLogEvent{EventID: "e12", Type: domain.EventRecorded, ResidentID: 7, StartTime: sundayLate})
	require.NoError(t, err)

	var journal []string
	reader := &fakeReader{
		messages: []kafka.Message{{Offset: 8, Value: payload}},
		cancel:   cancel,
		journal:  &journal,
	}

	mockStore := mocks.NewStoreInterface(t)
	mockStore.On("MarkProcessed", ctx, "e12").Return(true, nil).Once()
	mockStore.On("InvalidateSummary", ctx, 7, "2026-10-12").
		Run(func(mock.Arguments) { cancel() }).Return(errors.New("redis error")).Once()
	mockStore.On("ForgetEvent", ctx, "e12").Return(nil).Once()

	consumer := service.NewConsumer(reader, mockStore, hcm, nil)
	consumer.RetryDelay = time.Hour

	assert.NoError(t, consumer.Start(ctx))
	assert.Empty(t, journal)
}

func TestConsumer_StartGivesUpAfterMaxAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	payload, err := json.Marshal(domain.CareLogEvent{EventID: "e13", Type: domain.EventRecorded, ResidentID: 7, StartTime: sundayLate})
	require.NoError(t, err)

	var journal []string
	reader := &fakeReader{
		messages: []kafka.Message{{Offset: 9, Value: payload}},
		cancel:   cancel,
		journal:  &journal,
	}

	mockStore := mocks.NewStoreInterface(t)
	mockStore.On("MarkProcessed", ctx, "e13").Return(true, nil).Times(3)
	mockStore.On("InvalidateSummary", ctx, 7, "2026-10-12").Return(errors.New("redis error")).Times(3)
	mockStore.On("ForgetEvent", ctx, "e13").Return(nil).Times(3)

	consumer := service.NewConsumer(reader, mockStore, hcm, nil)
	consumer.MaxAttempts = 3
	consumer.RetryDelay = time.Millisecond

	assert.NoError(t, consumer.Start(ctx))
	assert.Equal(t, []string{"commit:9"}, journal)
}
