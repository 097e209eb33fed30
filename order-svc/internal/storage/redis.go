package storage

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"
	"strings"
	"time"

	"foodfriend/catalog"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// NutritionKey encodes each line as name=quantity in request order. Names
// keep their case, matching the facts lookup, and are query-escaped so a
// separator inside a name cannot alias another order.
func (c *RedisCache) NutritionKey(portions []catalog.Portion) string {
	parts := make([]string, 0, len(portions))
	for _, p := range portions {
		parts = append(parts, url.QueryEscape(p.Name)+"="+strconv.Itoa(p.Quantity))
	}
	return "nutrition:" + strings.Join(parts, "&")
}

// GetReport returns nil without error on a cache miss.
func (c *RedisCache) GetReport(ctx context.Context, key string) (*catalog.Report, error) {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var report catalog.Report
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *RedisCache) SetReport(ctx context.Context, key string, report catalog.Report) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}
