// Package redis caches the computed insights snapshot so the read
// endpoint serves the worker-refreshed copy instead of rescanning the
// corpus on every request.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/ekomarov/docsight/internal/core/domain"
)

const insightsKey = "docsight:insights:snapshot"

func NewClient(ctx context.Context, addr, password string, db int) (*redisv9.Client, error) {
	client := redisv9.NewClient(&redisv9.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis failed: %w", err)
	}

	return client, nil
}

type InsightsCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewInsightsCache(client *redisv9.Client, ttl time.Duration) *InsightsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &InsightsCache{client: client, ttl: ttl}
}

func (c *InsightsCache) Get(ctx context.Context) (domain.InsightsSnapshot, bool, error) {
	raw, err := c.client.Get(ctx, insightsKey).Result()
	if err == redisv9.Nil {
		return domain.InsightsSnapshot{}, false, nil
	}
	if err != nil {
		return domain.InsightsSnapshot{}, false, fmt.Errorf("redis get insights failed: %w", err)
	}

	var snapshot domain.InsightsSnapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return domain.InsightsSnapshot{}, false, fmt.Errorf("unmarshal cached insights failed: %w", err)
	}
	return snapshot, true, nil
}

func (c *InsightsCache) Set(ctx context.Context, snapshot domain.InsightsSnapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal insights cache failed: %w", err)
	}
	if err := c.client.Set(ctx, insightsKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set insights failed: %w", err)
	}
	return nil
}

func (c *InsightsCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, insightsKey).Err(); err != nil {
		return fmt.Errorf("redis delete insights failed: %w", err)
	}
	return nil
}
