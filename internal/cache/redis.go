package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/alkawthar/config"
	"github.com/Domenick1991/alkawthar/internal/domain"
	"github.com/redis/go-redis/v9"
)

// DeliveryTTL is how long a delivered notification event id is remembered.
const DeliveryTTL = 72 * time.Hour

type RedisCache struct {
	client     *redis.Client
	optionsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, optionsTTL time.Duration) *RedisCache {
	return NewRedisCacheFromClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		optionsTTL,
	)
}

func NewRedisCacheFromClient(client *redis.Client, optionsTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, optionsTTL: optionsTTL}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// GetOptions returns nil without error on a cache miss.
func (c *RedisCache) GetOptions(ctx context.Context, kind domain.OptionKind) ([]domain.Option, error) {
	data, err := c.client.Get(ctx, optionsKey(kind)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var options []domain.Option
	if err := json.Unmarshal(data, &options); err != nil {
		return nil, err
	}
	return options, nil
}

func (c *RedisCache) SetOptions(ctx context.Context, kind domain.OptionKind, options []domain.Option) error {
	payload, err := json.Marshal(options)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, optionsKey(kind), payload, c.optionsTTL).Err()
}

func (c *RedisCache) InvalidateOptions(ctx context.Context, kinds ...domain.OptionKind) error {
	if len(kinds) == 0 {
		return nil
	}
	keys := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		keys = append(keys, optionsKey(kind))
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *RedisCache) AcquireSeatLock(ctx context.Context, flightID int64, seat string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, seatLockKey(flightID, seat), "locked", ttl).Result()
}

func (c *RedisCache) ReleaseSeatLock(ctx context.Context, flightID int64, seat string) error {
	return c.client.Del(ctx, seatLockKey(flightID, seat)).Err()
}

func (c *RedisCache) Delivered(ctx context.Context, eventID string) (bool, error) {
	n, err := c.client.Exists(ctx, deliveryKey(eventID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// MarkDelivered keeps the id for DeliveryTTL so the key space stays bounded.
func (c *RedisCache) MarkDelivered(ctx context.Context, eventID string) error {
	return c.client.SetNX(ctx, deliveryKey(eventID), 1, DeliveryTTL).Err()
}

func optionsKey(kind domain.OptionKind) string {
	return "cache:options:" + string(kind)
}

func seatLockKey(flightID int64, seat string) string {
	return fmt.Sprintf("lock:flight:%d:seat:%s", flightID, seat)
}

func deliveryKey(eventID string) string {
	return "notify:delivered:" + eventID
}
