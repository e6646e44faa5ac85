package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"hedera-bridge/internal/dapp"
	"hedera-bridge/internal/idcache"
	"hedera-bridge/pkg/cache"
	"hedera-bridge/pkg/config"
	"hedera-bridge/pkg/database"
	"hedera-bridge/pkg/hederarpc"
	"hedera-bridge/pkg/logger"
	"hedera-bridge/pkg/utils/lock"

	"github.com/google/uuid"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	walletURL    string
	sessionTopic string
)

// rootCmd 代表基础命令，没有子命令时直接调用
var rootCmd = &cobra.Command{
	Use:   "dapp-cli",
	Short: "Hedera dApp 命令行工具",
	Long: `构造 Hedera JSON-RPC 请求并发送给钱包。
支持 hedera_signAndExecuteTransaction / hedera_signAndReturnTransaction / hedera_signMessage。`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Init()
		logger.Init(config.Global.App.Env)
		if walletURL == "" {
			walletURL = config.Global.Dapp.WalletURL
		}
		if sessionTopic == "" {
			sessionTopic = uuid.NewString()
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

// Execute 将所有子命令添加到根命令并设置标志
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&walletURL, "wallet-url", "", "钱包 HTTP 地址 (默认读取 dapp.wallet_url)")
	rootCmd.PersistentFlags().StringVar(&sessionTopic, "topic", "", "会话 topic (默认随机 uuid)")
}

func newRequester() *dapp.Requester {
	return dapp.NewRequester(walletURL, 30*time.Second)
}

// operator dApp 侧的操作账户, 与钱包共用同一组环境变量
func operator() (hedera.AccountID, error) {
	promptPrivateKey()
	if err := config.Global.Hedera.Validate(); err != nil {
		return hedera.AccountID{}, err
	}
	return hederarpc.ParseAccountID(config.Global.Hedera.AccountID)
}

// newIdentifierCache 有操作账户时才会在网络上创建 id, 否则只返回缓存或默认值
func newIdentifierCache() (*idcache.Cache, func()) {
	store, opts, cleanup := newSlotStore()

	promptPrivateKey()
	if config.Global.Hedera.Validate() == nil {
		client, _, _, err := hederarpc.NewTestnetClient(hederarpc.ClientOptions{
			AccountID:             config.Global.Hedera.AccountID,
			PrivateKey:            config.Global.Hedera.PrivateKey,
			MaxTransactionFeeHbar: config.Global.Hedera.MaxTransactionFee,
			MaxQueryPaymentHbar:   config.Global.Hedera.MaxQueryPayment,
		})
		if err != nil {
			logger.Warn("Hedera client 初始化失败, 仅使用缓存", zap.Error(err))
		} else {
			opts = append(opts,
				idcache.WithTopicCreator(&idcache.TopicCreator{Client: client}),
				idcache.WithAccountCreator(&idcache.AccountCreator{Client: client}),
			)
			prev := cleanup
			cleanup = func() {
				_ = client.Close()
				prev()
			}
		}
	}

	return idcache.New(store, opts...), cleanup
}

// promptPrivateKey 只配置了账户时, 在终端中以不回显方式读取私钥
func promptPrivateKey() {
	h := &config.Global.Hedera
	if h.AccountID == "" || h.PrivateKey != "" || !term.IsTerminal(int(syscall.Stdin)) {
		return
	}

	fmt.Printf("请输入账户 %s 的私钥: ", h.AccountID)
	key, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		fmt.Println("读取私钥失败:", err)
		return
	}
	h.PrivateKey = strings.TrimSpace(string(key))
}

// newSlotStore 按 bridge.store 选择 id 存储; sqlite 与 redis 在多次运行之间保留
func newSlotStore() (cache.Cache, []idcache.Option, func()) {
	memory := cache.NewMemoryCache(0, time.Hour)
	cleanup := func() {}

	switch config.Global.Bridge.Store {
	case "memory":
		logger.Warn("bridge.store=memory, 缓存的 id 不会跨进程保留")
		return memory, nil, cleanup
	case "redis":
		rdb, err := database.ConnectRedis(config.Global.Redis.Addr, config.Global.Redis.Password, config.Global.Redis.DB)
		if err != nil {
			logger.Warn("Redis 不可用, 改用 SQLite", zap.Error(err))
			break
		}
		store := cache.NewMultiLevelCache(memory, cache.NewRedisCache(rdb, "dapp:"))
		return store, []idcache.Option{idcache.WithLock(lock.NewRedisLock(rdb))}, func() { _ = rdb.Close() }
	}

	db, err := database.ConnectSQLite(config.Global.Bridge.SQLitePath)
	if err != nil {
		logger.Warn("SQLite 不可用, 使用内存缓存", zap.Error(err))
		return memory, nil, cleanup
	}
	store, err := cache.NewSQLCache(db, "dapp:")
	if err != nil {
		_ = database.CloseGorm(db)
		logger.Warn("SQLite 建表失败, 使用内存缓存", zap.Error(err))
		return memory, nil, cleanup
	}
	return store, nil, func() { _ = database.CloseGorm(db) }
}

func printJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("序列化失败: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

func exitOnError(msg string, err error) {
	if err != nil {
		fmt.Printf("%s: %v\n", msg, err)
		os.Exit(1)
	}
}
