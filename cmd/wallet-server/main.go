package main

import (
	"context"

	"hedera-bridge/internal/handler"
	"hedera-bridge/internal/server"
	"hedera-bridge/internal/service"
	"hedera-bridge/internal/service/mq"
	"hedera-bridge/internal/wallet"

	"hedera-bridge/pkg/config"
	"hedera-bridge/pkg/database"
	"hedera-bridge/pkg/logger"
	"hedera-bridge/pkg/mirror"
	"hedera-bridge/pkg/utils/lock"
	"hedera-bridge/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// @title Hedera Wallet Bridge API
// @version 1.0
// @description Hedera JSON-RPC session_request bridge
// @host localhost:8080
// @BasePath /
func main() {
	// 0. 初始化 Config
	config.Init()

	// 初始化 Validator
	validator.Init()

	// 1. 初始化 Logger
	logger.Init(config.Global.App.Env)
	defer logger.Sync()

	// 2. 初始化钱包; 失败时钱包保持为空, 所有签名请求返回错误
	var signer service.Signer
	var account handler.AccountProvider
	var accountID string
	if w := initWallet(config.Global.Hedera); w != nil {
		defer w.Close()
		signer, account = w, w
		accountID = w.GetAccount().AccountID
	}

	requestService := service.NewHederaRequestService(signer, config.Global.Bridge.UnifyErrors)

	// 3. mirror node
	locale, err := language.Parse(config.Global.Mirror.Locale)
	if err != nil {
		locale = language.AmericanEnglish
	}
	mirrorClient := mirror.NewClient(config.Global.Mirror.BaseURL, config.Global.Mirror.Timeout, mirror.WithLocale(locale))

	// 4. 消息队列 (可选): 连不上 Redis 时只提供 HTTP
	var workers []server.Worker
	if relay := newSessionRelay(requestService); relay != nil {
		workers = append(workers, relay)
	}
	if accountID != "" && config.Global.Bridge.BalanceSync != "" {
		workers = append(workers, newBalanceSync(mirrorClient, accountID))
	}

	// 5. HTTP Router
	r := server.NewHTTPRouter(server.Handlers{
		Session: handler.NewSessionHandler(requestService),
		Account: handler.NewAccountHandler(account),
		Balance: handler.NewBalanceHandler(mirrorClient),
	})

	// 6. 启动应用 (阻塞)
	app := server.New(server.Config{HttpPort: config.Global.App.HttpPort}, r, workers...)
	app.Run()

	logger.Info("系统已退出")
}

// initWallet 缺少环境变量或账户/私钥无法解析时只记录日志并返回 nil
func initWallet(cfg config.HederaConfig) *wallet.HederaWallet {
	if err := cfg.Validate(); err != nil {
		logger.Error("钱包未初始化", zap.Error(err))
		return nil
	}

	w, err := wallet.New(wallet.Options{
		AccountID:             cfg.AccountID,
		PrivateKey:            cfg.PrivateKey,
		MaxTransactionFeeHbar: cfg.MaxTransactionFee,
		MaxQueryPaymentHbar:   cfg.MaxQueryPayment,
	})
	if err != nil {
		logger.Error("钱包初始化失败", zap.Error(err))
		return nil
	}

	logger.Info("钱包已加载", zap.String("account", w.GetAccount().AccountID))
	return w
}

// newSessionRelay 返回随 App 启停的中继; 退出时关闭 MQ 连接
func newSessionRelay(requests service.RequestService) server.Worker {
	var producer mq.Producer
	var consumer mq.Consumer
	var closer func() error

	if config.Global.Redis.MQType == "kafka" {
		logger.Info("使用 Kafka 作为消息队列...")
		brokers := config.Global.Kafka.Brokers
		producer = mq.NewKafkaProducer(brokers)
		consumer = mq.NewKafkaConsumer(brokers, config.Global.Kafka.GroupID)
	} else {
		rdb, err := database.ConnectRedis(config.Global.Redis.Addr, config.Global.Redis.Password, config.Global.Redis.DB)
		if err != nil {
			logger.Warn("Redis 不可用, 跳过会话中继", zap.Error(err))
			return nil
		}
		logger.Info("使用 Redis Streams 作为消息队列...")
		closer = rdb.Close
		producer = mq.NewRedisProducer(rdb)
		consumer = mq.NewRedisConsumer(rdb, "hedera_wallet", "wallet-"+uuid.NewString()[:8])
	}

	relay := service.NewSessionRelay(requests, consumer, producer,
		config.Global.Bridge.RequestTopic, config.Global.Bridge.ResponseTopic)

	return func(ctx context.Context) error {
		defer func() {
			_ = consumer.Close()
			_ = producer.Close()
			if closer != nil {
				_ = closer()
			}
		}()
		return relay.Start(ctx)
	}
}

// newBalanceSync 定时把钱包余额写入指标; store=redis 时用分布式锁避免多实例重复查询
func newBalanceSync(querier service.TinybarQuerier, accountID string) server.Worker {
	return func(ctx context.Context) error {
		var locker lock.DistributedLock
		if config.Global.Bridge.Store == "redis" {
			rdb, err := database.ConnectRedis(config.Global.Redis.Addr, config.Global.Redis.Password, config.Global.Redis.DB)
			if err != nil {
				logger.Warn("Redis 不可用, 余额同步不加锁", zap.Error(err))
			} else {
				defer func() { _ = rdb.Close() }()
				locker = lock.NewRedisLock(rdb)
			}
		}

		cronService := service.NewCronService(querier, accountID, locker)
		if err := cronService.Start(config.Global.Bridge.BalanceSync); err != nil {
			return err
		}
		<-ctx.Done()
		cronService.Stop()
		return nil
	}
}
