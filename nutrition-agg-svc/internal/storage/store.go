package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	ActivityTTL = 8 * 24 * time.Hour
	eventTTL    = 8 * 24 * time.Hour

	generationTTL = 8 * 24 * time.Hour
)

func SummaryKey(residentID int, weekStart string) string {
	return fmt.Sprintf("nutrition:summary:%d:%s", residentID, weekStart)
}

// GenerationKey counts invalidations of a summary. A reader that saw one
// generation before computing must not cache its result under another.
func GenerationKey(residentID int, weekStart string) string {
	return fmt.Sprintf("nutrition:summary-gen:%d:%s", residentID, weekStart)
}

func ActivityKey(date string) string {
	return "nutrition:activity:" + date
}

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// MarkProcessed reports whether eventID is seen for the first time.
func (s *Store) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	return s.rdb.SetNX(ctx, "nutrition:event:"+eventID, 1, eventTTL).Result()
}

func (s *Store) ForgetEvent(ctx context.Context, eventID string) error {
	return s.rdb.Del(ctx, "nutrition:event:"+eventID).Err()
}

// InvalidateSummary drops the cached summary and bumps its generation so an
// in-flight computation started before this call does not re-cache it.
func (s *Store) InvalidateSummary(ctx context.Context, residentID int, weekStart string) error {
	gen := GenerationKey(residentID, weekStart)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, gen)
		pipe.Expire(ctx, gen, generationTTL)
		pipe.Del(ctx, SummaryKey(residentID, weekStart))
		return nil
	})
	return err
}

func (s *Store) RecordActivity(ctx context.Context, residentID int, date string) error {
	key := ActivityKey(date)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZIncrBy(ctx, key, 1, strconv.Itoa(residentID))
		pipe.Expire(ctx, key, ActivityTTL)
		return nil
	})
	return err
}
