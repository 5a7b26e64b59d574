package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"finora/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const returnsKeyPrefix = "finora:returns:"

// ReturnsCacheRepository stores computed returns reports. Get returns
// nil, nil on a miss.
type ReturnsCacheRepository interface {
	Get(ctx context.Context, key string) (*domain.ReturnsReport, error)
	Set(ctx context.Context, key string, report domain.ReturnsReport) error
	Invalidate(ctx context.Context, keys ...string) error
	Close() error
}

func AdvisorReturnsKey(userAccountID uuid.UUID) string {
	return returnsKeyPrefix + "advisor:" + userAccountID.String()
}

func ClientReturnsKey(userAccountID, clientID uuid.UUID) string {
	return returnsKeyPrefix + "client:" + userAccountID.String() + ":" + clientID.String()
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// NewReturnsCacheRepository connects to Redis. With no address configured
// it returns a cache that never hits.
func NewReturnsCacheRepository(cfg RedisConfig) (ReturnsCacheRepository, error) {
	if cfg.Addr == "" {
		return noopReturnsCacheHandler{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return NewReturnsCacheRepositoryWithClient(client, cfg.TTL), nil
}

func NewReturnsCacheRepositoryWithClient(client *redis.Client, ttl time.Duration) ReturnsCacheRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return redisReturnsCacheHandler{
		client: client,
		ttl:    ttl,
	}
}

type redisReturnsCacheHandler struct {
	client *redis.Client
	ttl    time.Duration
}

func (h redisReturnsCacheHandler) Get(ctx context.Context, key string) (*domain.ReturnsReport, error) {
	raw, err := h.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}

	out := domain.ReturnsReport{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode cached report %s: %w", key, err)
	}

	return &out, nil
}

func (h redisReturnsCacheHandler) Set(ctx context.Context, key string, report domain.ReturnsReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if err := h.client.Set(ctx, key, raw, h.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}

	return nil
}

func (h redisReturnsCacheHandler) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := h.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate %v: %w", keys, err)
	}
	return nil
}

func (h redisReturnsCacheHandler) Close() error {
	return h.client.Close()
}

type noopReturnsCacheHandler struct{}

func (noopReturnsCacheHandler) Get(context.Context, string) (*domain.ReturnsReport, error) {
	return nil, nil
}

func (noopReturnsCacheHandler) Set(context.Context, string, domain.ReturnsReport) error {
	return nil
}

func (noopReturnsCacheHandler) Invalidate(context.Context, ...string) error {
	return nil
}

func (noopReturnsCacheHandler) Close() error {
	return nil
}
