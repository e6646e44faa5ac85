package cache

import (
	"context"
	"encoding/json"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryCache 进程内缓存, 进程退出即丢失
type MemoryCache struct {
	c *gocache.Cache
}

// NewMemoryCache defaultExpiration 为 0 时条目不过期
func NewMemoryCache(defaultExpiration, cleanupInterval time.Duration) *MemoryCache {
	if defaultExpiration == 0 {
		defaultExpiration = gocache.NoExpiration
	}
	return &MemoryCache{
		c: gocache.New(defaultExpiration, cleanupInterval),
	}
}

func (m *MemoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	// 与 Redis 保持一致: 存 JSON 副本, 调用方后续修改 value 不影响缓存
	bytes, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl == 0 {
		ttl = gocache.DefaultExpiration
	}
	m.c.Set(key, bytes, ttl)
	return nil
}

func (m *MemoryCache) Get(ctx context.Context, key string, target interface{}) error {
	val, found := m.c.Get(key)
	if !found {
		return ErrMiss
	}
	return json.Unmarshal(val.([]byte), target)
}

func (m *MemoryCache) Delete(ctx context.Context, key string) error {
	m.c.Delete(key)
	return nil
}
