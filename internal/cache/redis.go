package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/daehyun-dev/skyreserve/config"
	"github.com/daehyun-dev/skyreserve/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache caches flight search results. A miss or a redis error both
// fall through to the store, so the cache is never load-bearing.
type RedisCache struct {
	client    *redis.Client
	searchTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, searchTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		searchTTL: searchTTL,
	}
}

// NewRedisCacheWithClient is used by tests to inject a mock client.
func NewRedisCacheWithClient(client *redis.Client, searchTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, searchTTL: searchTTL}
}

func (c *RedisCache) GetSearch(ctx context.Context, origin, destination, date string) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, searchKey(origin, destination, date)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetSearch(ctx context.Context, origin, destination, date string, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(origin, destination, date), payload, c.searchTTL).Err()
}

func searchKey(origin, destination, date string) string {
	if date == "" {
		date = "any"
	}
	return fmt.Sprintf("cache:search:%s:%s:%s", strings.ToUpper(origin), strings.ToUpper(destination), date)
}
