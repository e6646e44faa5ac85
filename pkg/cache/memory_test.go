package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0, time.Minute)

	var got string
	err := c.Get(ctx, "topic", &got)
	if !errors.Is(err, ErrMiss) {
		t.Fatalf("空缓存应返回 ErrMiss, 实际: %v", err)
	}

	require.NoError(t, c.Set(ctx, "topic", "0.0.777", 0))
	require.NoError(t, c.Get(ctx, "topic", &got))
	assert.Equal(t, "0.0.777", got)

	require.NoError(t, c.Delete(ctx, "topic"))
	assert.ErrorIs(t, c.Get(ctx, "topic", &got), ErrMiss)
}

func TestMemoryCache_Expire(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0, time.Minute)

	require.NoError(t, c.Set(ctx, "k", 1, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	var got int
	assert.ErrorIs(t, c.Get(ctx, "k", &got), ErrMiss)
}

func TestMemoryCache_StoresCopy(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(0, time.Minute)

	value := map[string]string{"a": "1"}
	require.NoError(t, c.Set(ctx, "m", value, 0))
	value["a"] = "2"

	var got map[string]string
	require.NoError(t, c.Get(ctx, "m", &got))
	assert.Equal(t, "1", got["a"])
}

func TestMultiLevelCache(t *testing.T) {
	ctx := context.Background()
	local := NewMemoryCache(0, time.Minute)
	remote := NewMemoryCache(0, time.Minute)
	m := NewMultiLevelCache(local, remote)

	// L2 命中后回写 L1
	require.NoError(t, remote.Set(ctx, "k", "v", 0))
	var got string
	require.NoError(t, m.Get(ctx, "k", &got))
	assert.Equal(t, "v", got)

	var fromLocal string
	require.NoError(t, local.Get(ctx, "k", &fromLocal))
	assert.Equal(t, "v", fromLocal)

	require.NoError(t, m.Delete(ctx, "k"))
	assert.ErrorIs(t, m.Get(ctx, "k", &got), ErrMiss)
}
