// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comic

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/inkdex/internal/navigation"
	"github.com/taibuivan/inkdex/internal/platform/constants"
)

// NavigationCache caches the all-items batch navigation result, the most
// expensive query on the reader path. A cache failure is never an error:
// callers fall back to the store.
type NavigationCache interface {
	GetAllItems(ctx context.Context, referenceID int, exclude navigation.Exclusion) ([]*NavigatedItem, bool)
	SetAllItems(ctx context.Context, referenceID int, exclude navigation.Exclusion, items []*NavigatedItem)
	// Invalidate drops every cached navigation entry. An occurrence change
	// shifts navigation for other comics, and a guest or non-canon flip
	// changes which comics pass the exclusion filters, so per-key eviction
	// is not sound for either.
	Invalidate(ctx context.Context)
}

// RedisNavigationCache keys entries as "nav:{referenceID}:{exclude}" with a
// short TTL bounding staleness.
type RedisNavigationCache struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisNavigationCache(client *redis.Client, logger *slog.Logger) *RedisNavigationCache {
	return &RedisNavigationCache{client: client, logger: logger}
}

func navigationKey(referenceID int, exclude navigation.Exclusion) string {
	return fmt.Sprintf("%s%d:%s", constants.RedisPrefixNavigation, referenceID, exclude)
}

func (cache *RedisNavigationCache) GetAllItems(ctx context.Context, referenceID int, exclude navigation.Exclusion) ([]*NavigatedItem, bool) {
	payload, err := cache.client.Get(ctx, navigationKey(referenceID, exclude)).Bytes()
	if err != nil {
		if err != redis.Nil {
			cache.logger.Warn("navigation cache read failed", "error", err)
		}
		return nil, false
	}

	var items []*NavigatedItem
	if err := json.Unmarshal(payload, &items); err != nil {
		cache.logger.Warn("navigation cache entry corrupt", "error", err)
		return nil, false
	}
	return items, true
}

func (cache *RedisNavigationCache) SetAllItems(ctx context.Context, referenceID int, exclude navigation.Exclusion, items []*NavigatedItem) {
	payload, err := json.Marshal(items)
	if err != nil {
		return
	}

	key := navigationKey(referenceID, exclude)
	if err := cache.client.Set(ctx, key, payload, constants.NavigationCacheTTL).Err(); err != nil {
		cache.logger.Warn("navigation cache write failed", "key", key, "error", err)
	}
}

func (cache *RedisNavigationCache) Invalidate(ctx context.Context) {
	iterator := cache.client.Scan(ctx, 0, constants.RedisPrefixNavigation+"*", 0).Iterator()
	for iterator.Next(ctx) {
		if err := cache.client.Del(ctx, iterator.Val()).Err(); err != nil {
			cache.logger.Warn("navigation cache eviction failed", "key", iterator.Val(), "error", err)
		}
	}
	if err := iterator.Err(); err != nil {
		cache.logger.Warn("navigation cache scan failed", "error", err)
	}
}
