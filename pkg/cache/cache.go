package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss key 不存在 (或已过期)
var ErrMiss = errors.New("cache miss")

// Cache 通用键值存储, 值以 JSON 形式保存
// ttl 为 0 表示永不过期
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get 将结果 Unmarshal 到 target 中, 未命中返回 ErrMiss
	Get(ctx context.Context, key string, target interface{}) error
	Delete(ctx context.Context, key string) error
}
