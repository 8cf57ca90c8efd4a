// Package rolecache remembers the role of authenticated users so the auth
// guard does not hit the user table on every request.
package rolecache

import (
	"context"
	"sync"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "jobboard:role:"

// Redis stores roles as plain string keys with a TTL.
type Redis struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewRedis(client *goredis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (c *Redis) Get(ctx context.Context, userID string) (domain.Role, bool) {
	val, err := c.client.Get(ctx, keyPrefix+userID).Result()
	if err != nil {
		if err != goredis.Nil {
			logger.Log.Warn("role cache read failed", "error", err)
		}
		return "", false
	}
	role := domain.Role(val)
	if !role.Valid() {
		return "", false
	}
	return role, true
}

func (c *Redis) Set(ctx context.Context, userID string, role domain.Role) {
	if err := c.client.Set(ctx, keyPrefix+userID, string(role), c.ttl).Err(); err != nil {
		logger.Log.Warn("role cache write failed", "error", err)
	}
}

func (c *Redis) Invalidate(ctx context.Context, userID string) {
	if err := c.client.Del(ctx, keyPrefix+userID).Err(); err != nil {
		logger.Log.Warn("role cache delete failed", "error", err)
	}
}

type entry struct {
	role      domain.Role
	expiresAt time.Time
}

// Memory is the in-process fallback used when Redis is not configured.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{ttl: ttl, entries: make(map[string]entry), now: time.Now}
}

func (c *Memory) Get(_ context.Context, userID string) (domain.Role, bool) {
	c.mu.RLock()
	e, ok := c.entries[userID]
	c.mu.RUnlock()
	if !ok || c.now().After(e.expiresAt) {
		return "", false
	}
	return e.role, true
}

func (c *Memory) Set(_ context.Context, userID string, role domain.Role) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	c.entries[userID] = entry{role: role, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *Memory) Invalidate(_ context.Context, userID string) {
	c.mu.Lock()
	delete(c.entries, userID)
	c.mu.Unlock()
}
