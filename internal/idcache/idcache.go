package idcache

import (
	"context"
	"errors"
	"time"

	"hedera-bridge/pkg/cache"
	"hedera-bridge/pkg/logger"
	"hedera-bridge/pkg/monitor"
	"hedera-bridge/pkg/utils/lock"

	"go.uber.org/zap"
)

// Slot 一个持久化的 id 槽位; Default 是已知无效的占位值
type Slot struct {
	Name    string
	Key     string
	Default string
}

var (
	TopicSlot = Slot{
		Name:    "topic",
		Key:     "hedera-topic-id",
		Default: "0.0.12345",
	}
	ReceiverSlot = Slot{
		Name:    "receiver",
		Key:     "hedera-transfer-recipient-address",
		Default: "0.0.54321",
	}
)

const lockTTL = 30 * time.Second

// Cache dApp 侧缓存的 topic id 与接收账户
type Cache struct {
	store          cache.Cache
	locker         lock.DistributedLock
	topicCreator   Creator
	accountCreator Creator
}

type Option func(*Cache)

// WithTopicCreator 未设置时 topic 槽位保持默认值
func WithTopicCreator(c Creator) Option {
	return func(ic *Cache) {
		ic.topicCreator = c
	}
}

// WithAccountCreator 未设置时接收账户槽位保持默认值
func WithAccountCreator(c Creator) Option {
	return func(ic *Cache) {
		ic.accountCreator = c
	}
}

// WithLock 多进程共享存储时, 创建前先抢锁
func WithLock(l lock.DistributedLock) Option {
	return func(ic *Cache) {
		ic.locker = l
	}
}

func New(store cache.Cache, opts ...Option) *Cache {
	c := &Cache{store: store}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateOrRestoreTopicID 默认 0.0.12345
func (c *Cache) CreateOrRestoreTopicID(ctx context.Context) string {
	return c.createOrRestore(ctx, TopicSlot, c.topicCreator)
}

// CreateOrRestoreReceiverAddress 默认 0.0.54321
func (c *Cache) CreateOrRestoreReceiverAddress(ctx context.Context) string {
	return c.createOrRestore(ctx, ReceiverSlot, c.accountCreator)
}

func (c *Cache) createOrRestore(ctx context.Context, slot Slot, creator Creator) string {
	// 1. 读槽位, 缺失时用默认值
	value := c.read(ctx, slot)
	if value != slot.Default {
		monitor.Business.IdentifierCacheTotal.WithLabelValues(slot.Name, "hit").Inc()
		return value
	}

	// 2. 仍是默认值时尝试在网络上创建
	if creator != nil {
		if c.locker != nil {
			acquired, err := c.locker.Acquire(ctx, slot.Key, lockTTL)
			if err != nil || !acquired {
				// 其他进程正在创建, 不回写以免覆盖其结果
				logger.Warn("identifier slot is locked, keep current value",
					zap.String("slot", slot.Key), zap.Error(err))
				monitor.Business.IdentifierCacheTotal.WithLabelValues(slot.Name, "default").Inc()
				return c.read(ctx, slot)
			}
			defer func() {
				if err := c.locker.Release(ctx, slot.Key); err != nil {
					logger.Warn("release identifier lock failed", zap.String("slot", slot.Key), zap.Error(err))
				}
			}()

			// 抢到锁后再读一次
			if current := c.read(ctx, slot); current != slot.Default {
				monitor.Business.IdentifierCacheTotal.WithLabelValues(slot.Name, "hit").Inc()
				return current
			}
		}

		created, err := creator.Create(ctx)
		switch {
		case err != nil:
			logger.Error("create identifier failed, keep default",
				zap.String("slot", slot.Key), zap.String("default", slot.Default), zap.Error(err))
		case created == "":
			logger.Error("create identifier returned empty id, keep default", zap.String("slot", slot.Key))
		default:
			value = created
		}
	}

	result := "created"
	if value == slot.Default {
		result = "default"
	}
	monitor.Business.IdentifierCacheTotal.WithLabelValues(slot.Name, result).Inc()

	// 3. 回写 (可能仍是默认值)
	if err := c.store.Set(ctx, slot.Key, value, 0); err != nil {
		logger.Error("write identifier slot failed", zap.String("slot", slot.Key), zap.Error(err))
	}
	return value
}

func (c *Cache) read(ctx context.Context, slot Slot) string {
	var value string
	err := c.store.Get(ctx, slot.Key, &value)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			logger.Warn("read identifier slot failed", zap.String("slot", slot.Key), zap.Error(err))
		}
		return slot.Default
	}
	if value == "" {
		return slot.Default
	}
	return value
}
