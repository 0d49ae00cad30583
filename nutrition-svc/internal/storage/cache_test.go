package storage

import (
	"context"
	"testing"
	"time"

	"carehome/consumption"
	"carehome/nutrition-svc/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	return NewRedisCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute), mr
}

func TestSummaryRoundTrip(t *testing.T) {
	cache, mr := newCache(t)
	ctx := context.Background()

	missing, err := cache.GetSummary(ctx, 7, "2026-10-12")
	require.NoError(t, err)
	assert.Nil(t, missing)

	summary := &domain.WeeklySummary{
		ResidentID: 7,
		WeekStart:  "2026-10-12",
		Progress:   consumption.WeeklyProgress{TotalMeals: 7, ServedMeals: 1, RatioSum: 1, ProgressPercent: 14},
	}
	require.NoError(t, cache.SetSummary(ctx, summary, 0))
	assert.True(t, mr.Exists("nutrition:summary:7:2026-10-12"))
	assert.Equal(t, time.Minute, mr.TTL("nutrition:summary:7:2026-10-12"))

	got, err := cache.GetSummary(ctx, 7, "2026-10-12")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 14, got.Progress.ProgressPercent)

	mr.FastForward(2 * time.Minute)
	expired, err := cache.GetSummary(ctx, 7, "2026-10-12")
	require.NoError(t, err)
	assert.Nil(t, expired)
}

func TestSetSummaryChecksGeneration(t *testing.T) {
	cache, mr := newCache(t)
	ctx := context.Background()
	summary := &domain.WeeklySummary{ResidentID: 7, WeekStart: "2026-10-12"}

	gen, err := cache.Generation(ctx, 7, "2026-10-12")
	require.NoError(t, err)
	assert.Equal(t, int64(0), gen)

	// nutrition-agg-svc invalidates the week after gen was read.
	_, err = mr.Incr(GenerationKey(7, "2026-10-12"), 1)
	require.NoError(t, err)

	err = cache.SetSummary(ctx, summary, gen)
	assert.ErrorIs(t, err, ErrSummaryChanged)
	assert.False(t, mr.Exists(SummaryKey(7, "2026-10-12")))

	gen, err = cache.Generation(ctx, 7, "2026-10-12")
	require.NoError(t, err)
	assert.Equal(t, int64(1), gen)

	require.NoError(t, cache.SetSummary(ctx, summary, gen))
	assert.True(t, mr.Exists(SummaryKey(7, "2026-10-12")))
}

func TestGenerationCorrupt(t *testing.T) {
	cache, mr := newCache(t)
	require.NoError(t, mr.Set(GenerationKey(7, "2026-10-12"), "nope"))

	_, err := cache.Generation(context.Background(), 7, "2026-10-12")
	assert.Error(t, err)
}

func TestGetSummaryCorrupt(t *testing.T) {
	cache, mr := newCache(t)
	require.NoError(t, mr.Set(SummaryKey(7, "2026-10-12"), "not json"))

	_, err := cache.GetSummary(context.Background(), 7, "2026-10-12")
	assert.Error(t, err)
}

func TestTopActivity(t *testing.T) {
	cache, mr := newCache(t)
	ctx := context.Background()

	key := ActivityKey("2026-10-14")
	_, err := mr.ZAdd(key, 2, "7")
	require.NoError(t, err)
	_, err = mr.ZAdd(key, 5, "9")
	require.NoError(t, err)
	_, err = mr.ZAdd(key, 1, "garbage")
	require.NoError(t, err)

	activity, err := cache.TopActivity(ctx, "2026-10-14", 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.ResidentActivity{{ResidentID: 9, Logs: 5}, {ResidentID: 7, Logs: 2}}, activity)

	top, err := cache.TopActivity(ctx, "2026-10-14", 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.ResidentActivity{{ResidentID: 9, Logs: 5}}, top)

	empty, err := cache.TopActivity(ctx, "2026-10-01", 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
