package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hedera-bridge/pkg/errno"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Hedera HederaConfig `mapstructure:"hedera"`
	Mirror MirrorConfig `mapstructure:"mirror"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Kafka  KafkaConfig  `mapstructure:"kafka"`
	Bridge BridgeConfig `mapstructure:"bridge"`
	Dapp   DappConfig   `mapstructure:"dapp"`
}

type AppConfig struct {
	Env      string `mapstructure:"env"`
	HttpPort string `mapstructure:"http_port"`
}

type HederaConfig struct {
	AccountID         string  `mapstructure:"account_id"`  // NEXT_PUBLIC_HEDERA_ACCOUNT_ID
	PrivateKey        string  `mapstructure:"private_key"` // NEXT_PUBLIC_HEDERA_PRIVATE_KEY
	Network           string  `mapstructure:"network"`
	MaxTransactionFee float64 `mapstructure:"max_transaction_fee"` // HBAR
	MaxQueryPayment   float64 `mapstructure:"max_query_payment"`   // HBAR
}

type MirrorConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	Locale  string        `mapstructure:"locale"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	MQType   string `mapstructure:"mq_type"` // "redis" or "kafka"
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	GroupID string   `mapstructure:"group_id"`
}

type BridgeConfig struct {
	RequestTopic  string `mapstructure:"request_topic"`
	ResponseTopic string `mapstructure:"response_topic"`
	// UnifyErrors 为 true 时钱包侧失败也返回 JSON-RPC error, 默认保持 {error} 形式
	UnifyErrors bool `mapstructure:"unify_errors"`
	// Store 标识缓存存储: "sqlite" (默认, 本地文件), "redis" 或 "memory" (仅当前进程)
	Store string `mapstructure:"store"`
	// SQLitePath store=sqlite 时的数据库文件
	SQLitePath string `mapstructure:"sqlite_path"`
	// BalanceSync 钱包余额同步的 cron 表达式, 为空则不启动
	BalanceSync string `mapstructure:"balance_sync"`
}

type DappConfig struct {
	WalletURL string `mapstructure:"wallet_url"`
}

var Global Config

// 兼容前端项目的环境变量名
var envAliases = map[string][]string{
	"hedera.account_id":  {"NEXT_PUBLIC_HEDERA_ACCOUNT_ID", "HEDERA_ACCOUNT_ID"},
	"hedera.private_key": {"NEXT_PUBLIC_HEDERA_PRIVATE_KEY", "HEDERA_PRIVATE_KEY"},
}

// Init 加载配置到 Global, 失败直接退出
func Init() {
	cfg, err := Load(".", "./config")
	if err != nil {
		log.Fatalf("Fatal error config file: %s \n", err)
	}
	Global = *cfg
	log.Printf("Configuration loaded successfully. Env: %s", Global.App.Env)
}

// Load 依次读取 .env.local / .env / config.yaml / 环境变量
func Load(paths ...string) (*Config, error) {
	// 1. .env 文件只补充尚未设置的环境变量, 先加载的优先
	for _, f := range []string{".env.local", ".env"} {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// 2. 环境变量: hedera.account_id -> HEDERA_ACCOUNT_ID
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, envs := range envAliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, err
		}
	}

	setDefaults(v)

	// 3. 配置文件可选
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Printf("Warning: Config file not found, using defaults and environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	return &cfg, nil
}

// Validate 钱包必须同时拥有账户和私钥
func (h HederaConfig) Validate() error {
	var missing []string
	if h.AccountID == "" {
		missing = append(missing, "NEXT_PUBLIC_HEDERA_ACCOUNT_ID")
	}
	if h.PrivateKey == "" {
		missing = append(missing, "NEXT_PUBLIC_HEDERA_PRIVATE_KEY")
	}
	if len(missing) > 0 {
		return errno.ErrConfigurationMissing.WithMessage(
			"Missing environment variables: " + strings.Join(missing, ", "))
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")
	v.SetDefault("app.http_port", "8080")

	v.SetDefault("hedera.network", "testnet")
	v.SetDefault("hedera.max_transaction_fee", 100)
	v.SetDefault("hedera.max_query_payment", 50)

	v.SetDefault("mirror.base_url", "https://testnet.mirrornode.hedera.com/api/v1")
	v.SetDefault("mirror.timeout", 10*time.Second)
	v.SetDefault("mirror.locale", "en-US")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.mq_type", "redis")

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.group_id", "hedera-wallet")

	v.SetDefault("bridge.request_topic", "hedera_session_requests")
	v.SetDefault("bridge.response_topic", "hedera_session_responses")
	v.SetDefault("bridge.unify_errors", false)
	v.SetDefault("bridge.store", "sqlite")
	v.SetDefault("bridge.sqlite_path", defaultSQLitePath())
	v.SetDefault("bridge.balance_sync", "@every 1m")

	v.SetDefault("dapp.wallet_url", "http://localhost:8080")
}

// defaultSQLitePath 用户配置目录下的 hedera-bridge/dapp.db, 取不到时落在当前目录
func defaultSQLitePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "dapp.db"
	}
	return filepath.Join(dir, "hedera-bridge", "dapp.db")
}
