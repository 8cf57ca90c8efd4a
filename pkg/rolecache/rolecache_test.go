package rolecache

import (
	"context"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemory(time.Minute)
	c.now = func() time.Time { return now }

	_, ok := c.Get(ctx, "u1")
	assert.False(t, ok)

	c.Set(ctx, "u1", domain.RoleRecruiter)
	role, ok := c.Get(ctx, "u1")
	assert.True(t, ok)
	assert.Equal(t, domain.RoleRecruiter, role)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get(ctx, "u1")
	assert.False(t, ok, "entry should expire")

	c.Set(ctx, "u2", domain.RoleEmployee)
	c.Invalidate(ctx, "u2")
	_, ok = c.Get(ctx, "u2")
	assert.False(t, ok)
}

func TestMemoryDisabled(t *testing.T) {
	c := NewMemory(0)
	c.Set(context.Background(), "u1", domain.RoleEmployee)
	_, ok := c.Get(context.Background(), "u1")
	assert.False(t, ok)
}
