package hederarpc

import (
	"fmt"
	"strconv"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// ClientOptions 测试网客户端参数
type ClientOptions struct {
	AccountID  string
	PrivateKey string
	// 为 0 时使用默认上限 100 ℏ / 50 ℏ
	MaxTransactionFeeHbar float64
	MaxQueryPaymentHbar   float64
}

const (
	defaultMaxTransactionFeeHbar = 100
	defaultMaxQueryPaymentHbar   = 50
)

// ParseAccountID 只取点分格式的最后一段 num 作为账户号 (shard/realm 固定为 0)
func ParseAccountID(accountID string) (hedera.AccountID, error) {
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return hedera.AccountID{}, fmt.Errorf("empty account id")
	}
	segments := strings.Split(accountID, ".")
	num, err := strconv.ParseUint(segments[len(segments)-1], 10, 64)
	if err != nil {
		return hedera.AccountID{}, fmt.Errorf("invalid account id %q: %w", accountID, err)
	}
	return hedera.AccountID{Account: num}, nil
}

// NewTestnetClient 创建测试网客户端并设置 operator 与默认费用上限
func NewTestnetClient(opts ClientOptions) (*hedera.Client, hedera.AccountID, hedera.PrivateKey, error) {
	accountID, err := ParseAccountID(opts.AccountID)
	if err != nil {
		return nil, hedera.AccountID{}, hedera.PrivateKey{}, err
	}

	privateKey, err := hedera.PrivateKeyFromString(opts.PrivateKey)
	if err != nil {
		return nil, hedera.AccountID{}, hedera.PrivateKey{}, fmt.Errorf("parse private key: %w", err)
	}

	maxFee := opts.MaxTransactionFeeHbar
	if maxFee <= 0 {
		maxFee = defaultMaxTransactionFeeHbar
	}
	maxQuery := opts.MaxQueryPaymentHbar
	if maxQuery <= 0 {
		maxQuery = defaultMaxQueryPaymentHbar
	}

	client := hedera.ClientForTestnet()
	client.SetOperator(accountID, privateKey)
	if err := client.SetDefaultMaxTransactionFee(hedera.NewHbar(maxFee)); err != nil {
		return nil, hedera.AccountID{}, hedera.PrivateKey{}, fmt.Errorf("set max transaction fee: %w", err)
	}
	if err := client.SetDefaultMaxQueryPayment(hedera.NewHbar(maxQuery)); err != nil {
		return nil, hedera.AccountID{}, hedera.PrivateKey{}, fmt.Errorf("set max query payment: %w", err)
	}

	return client, accountID, privateKey, nil
}
