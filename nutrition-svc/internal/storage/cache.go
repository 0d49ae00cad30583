package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"carehome/nutrition-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

func SummaryKey(residentID int, weekStart string) string {
	return fmt.Sprintf("nutrition:summary:%d:%s", residentID, weekStart)
}

// GenerationKey holds the invalidation count nutrition-agg-svc bumps each
// time a care log makes the summary stale.
func GenerationKey(residentID int, weekStart string) string {
	return fmt.Sprintf("nutrition:summary-gen:%d:%s", residentID, weekStart)
}

func ActivityKey(date string) string {
	return "nutrition:activity:" + date
}

var ErrSummaryChanged = errors.New("summary invalidated while computing")

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// GetSummary returns nil without error on a cache miss.
func (c *RedisCache) GetSummary(ctx context.Context, residentID int, weekStart string) (*domain.WeeklySummary, error) {
	raw, err := c.Client.Get(ctx, SummaryKey(residentID, weekStart)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var summary domain.WeeklySummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("decode cached summary: %w", err)
	}
	return &summary, nil
}

// Generation returns the summary's invalidation count, zero when it has
// never been invalidated. Read it before fetching the inputs of a summary
// and hand it to SetSummary.
func (c *RedisCache) Generation(ctx context.Context, residentID int, weekStart string) (int64, error) {
	return generation(c.Client.Get(ctx, GenerationKey(residentID, weekStart)))
}

func generation(cmd *redis.StringCmd) (int64, error) {
	n, err := cmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

// SetSummary caches summary unless it was invalidated after gen was read,
// in which case it returns ErrSummaryChanged and writes nothing.
func (c *RedisCache) SetSummary(ctx context.Context, summary *domain.WeeklySummary, gen int64) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}
	genKey := GenerationKey(summary.ResidentID, summary.WeekStart)

	err = c.Client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := generation(tx.Get(ctx, genKey))
		if err != nil {
			return err
		}
		if current != gen {
			return ErrSummaryChanged
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, SummaryKey(summary.ResidentID, summary.WeekStart), payload, c.TTL)
			return nil
		})
		return err
	}, genKey)
	if errors.Is(err, redis.TxFailedErr) {
		return ErrSummaryChanged
	}
	return err
}

// TopActivity ranks residents by care logs recorded on date, busiest first.
func (c *RedisCache) TopActivity(ctx context.Context, date string, limit int) ([]domain.ResidentActivity, error) {
	results, err := c.Client.ZRevRangeWithScores(ctx, ActivityKey(date), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	activity := make([]domain.ResidentActivity, 0, len(results))
	for _, result := range results {
		member, _ := result.Member.(string)
		residentID, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		activity = append(activity, domain.ResidentActivity{ResidentID: residentID, Logs: int(result.Score)})
	}
	return activity, nil
}
