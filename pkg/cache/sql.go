package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cacheEntry 一行一个 key, expires_at 为空表示永不过期
type cacheEntry struct {
	Key       string     `gorm:"column:cache_key;primaryKey"`
	Value     []byte     `gorm:"column:cache_value;not null"`
	ExpiresAt *time.Time `gorm:"column:expires_at"`
}

func (cacheEntry) TableName() string {
	return "cache_entries"
}

// SQLCache 基于 gorm 的持久化存储, 进程退出后仍保留
type SQLCache struct {
	db     *gorm.DB
	prefix string
}

// NewSQLCache 自动建表
func NewSQLCache(db *gorm.DB, prefix string) (*SQLCache, error) {
	if err := db.AutoMigrate(&cacheEntry{}); err != nil {
		return nil, err
	}
	return &SQLCache{db: db, prefix: prefix}, nil
}

func (c *SQLCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	val, err := json.Marshal(value)
	if err != nil {
		return err
	}

	entry := cacheEntry{Key: c.prefix + key, Value: val}
	if ttl > 0 {
		expiresAt := time.Now().Add(ttl)
		entry.ExpiresAt = &expiresAt
	}

	// 已存在则覆盖
	return c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"cache_value", "expires_at"}),
	}).Create(&entry).Error
}

func (c *SQLCache) Get(ctx context.Context, key string, target interface{}) error {
	var entry cacheEntry
	err := c.db.WithContext(ctx).Where("cache_key = ?", c.prefix+key).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMiss
	}
	if err != nil {
		return err
	}

	if entry.ExpiresAt != nil && time.Now().After(*entry.ExpiresAt) {
		_ = c.Delete(ctx, key)
		return ErrMiss
	}
	return json.Unmarshal(entry.Value, target)
}

func (c *SQLCache) Delete(ctx context.Context, key string) error {
	return c.db.WithContext(ctx).Where("cache_key = ?", c.prefix+key).Delete(&cacheEntry{}).Error
}
