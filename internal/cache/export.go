// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// export.go provides a Valkey-backed cache for serialized template exports.
// Rendering an .eml or .html download is cheap but repeated downloads of the
// same template are common in training sessions, so finished exports are kept
// in Valkey and dropped when the template is deleted. The cache is entirely
// optional: a nil ExportCache is a valid no-op.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// exportKeyPrefix is the Valkey key prefix for cached exports.
	exportKeyPrefix = "export:"

	// DefaultExportTTL is how long a serialized export stays cached.
	DefaultExportTTL = 30 * time.Minute
)

// ExportCache manages serialized template exports in Valkey.
type ExportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewExportCache creates an export cache backed by the given Valkey client.
// A nil client yields a cache where every lookup misses and writes are
// discarded.
func NewExportCache(client *redis.Client, ttl time.Duration) *ExportCache {
	if ttl == 0 {
		ttl = DefaultExportTTL
	}
	return &ExportCache{client: client, ttl: ttl}
}

// Key returns the cache key for one template in one export format.
func Key(id, format string) string {
	return fmt.Sprintf("%s:%s", id, format)
}

// Get retrieves a cached export. Returns false on miss or when no Valkey
// client is configured.
func (ec *ExportCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if ec == nil || ec.client == nil {
		return nil, false
	}
	val, err := ec.client.Get(ctx, exportKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("export cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("export cache hit", "key", key)
	return val, true
}

// Set stores a serialized export with the configured TTL.
func (ec *ExportCache) Set(ctx context.Context, key string, data []byte) {
	if ec == nil || ec.client == nil {
		return
	}
	if err := ec.client.Set(ctx, exportKeyPrefix+key, data, ec.ttl).Err(); err != nil {
		slog.Warn("export cache set error", "key", key, "error", err)
	}
}

// InvalidateTemplate removes all cached exports of one template. Called when
// the template is deleted or replaced.
func (ec *ExportCache) InvalidateTemplate(ctx context.Context, id string) {
	if ec == nil || ec.client == nil {
		return
	}
	var cursor uint64
	for {
		keys, nextCursor, err := ec.client.Scan(ctx, cursor, exportKeyPrefix+id+":*", 100).Result()
		if err != nil {
			slog.Warn("export cache scan error", "id", id, "error", err)
			return
		}
		if len(keys) > 0 {
			if err := ec.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("export cache delete error", "id", id, "error", err)
			}
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	slog.Debug("export cache invalidated", "id", id)
}
