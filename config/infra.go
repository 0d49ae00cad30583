package config

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func MustInitPostgres(cfg Postgres, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err = db.Ping(); err != nil {
		logger.Fatal("Failed to ping database", zap.String("host", cfg.Host), zap.Error(err))
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg Redis, logger *zap.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.String("addr", cfg.Addr()), zap.Error(err))
	}

	return client
}

func NewKafkaReader(cfg Kafka) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.CareLogTopic,
		GroupID: cfg.GroupID,
	})
}

func NewKafkaWriter(cfg Kafka) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.Broker),
		Topic:    cfg.CareLogTopic,
		Balancer: &kafka.Hash{},
	}
}
