package service

import (
	"context"
	"time"

	"hedera-bridge/pkg/logger"
	"hedera-bridge/pkg/mirror"
	"hedera-bridge/pkg/monitor"
	"hedera-bridge/pkg/utils/lock"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const balanceSyncLockKey = "cron:lock:sync_wallet_balance"

// TinybarQuerier 只需要 mirror node 的原始余额
type TinybarQuerier interface {
	GetAccountTinybars(ctx context.Context, address string) (int64, error)
}

type CronService struct {
	cron    *cron.Cron
	mirror  TinybarQuerier
	account string
	locker  lock.DistributedLock
}

// NewCronService locker 可以为空, 单实例部署时不加锁
func NewCronService(querier TinybarQuerier, account string, locker lock.DistributedLock) *CronService {
	return &CronService{
		cron:    cron.New(),
		mirror:  querier,
		account: account,
		locker:  locker,
	}
}

// Start 注册并启动任务, spec 为标准 cron 表达式或 "@every 1m"
func (s *CronService) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.SyncWalletBalance); err != nil {
		return err
	}
	s.cron.Start()
	logger.Info("Cron Service started", zap.String("spec", spec))
	return nil
}

// Stop 等待正在执行的任务结束
func (s *CronService) Stop() {
	<-s.cron.Stop().Done()
	logger.Info("Cron Service stopped")
}

// SyncWalletBalance 把钱包余额写入 hedera_wallet_balance_hbar
func (s *CronService) SyncWalletBalance() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 1. 多实例时只允许一个节点执行
	if s.locker != nil {
		locked, err := s.locker.Acquire(ctx, balanceSyncLockKey, 10*time.Second)
		if err != nil || !locked {
			logger.Debug("SyncWalletBalance: 获取锁失败或已有实例在运行")
			return
		}
		defer func() { _ = s.locker.Release(ctx, balanceSyncLockKey) }()
	}

	// 2. 查询余额
	tinybars, err := s.mirror.GetAccountTinybars(ctx, s.account)
	if err != nil {
		monitor.Business.MirrorQueriesTotal.WithLabelValues("error").Inc()
		logger.Warn("同步钱包余额失败", zap.String("account", s.account), zap.Error(err))
		return
	}
	monitor.Business.MirrorQueriesTotal.WithLabelValues("ok").Inc()

	// 3. 更新指标
	monitor.Business.WalletBalanceHbar.WithLabelValues(s.account).Set(mirror.TinybarToHbar(tinybars))
	logger.Debug("钱包余额已同步", zap.String("account", s.account), zap.Int64("tinybars", tinybars))
}
