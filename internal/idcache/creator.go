package idcache

import (
	"context"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// InitialReceiverBalance 新建接收账户的初始余额 (tinybar)
const InitialReceiverBalance = 1000

// Creator 在网络上创建一个新的 id, 返回点分格式
type Creator interface {
	Create(ctx context.Context) (string, error)
}

// CreatorFunc 适配普通函数
type CreatorFunc func(ctx context.Context) (string, error)

func (f CreatorFunc) Create(ctx context.Context) (string, error) {
	return f(ctx)
}

// TopicCreator 提交 TopicCreate 交易
type TopicCreator struct {
	Client *hedera.Client
}

func (c *TopicCreator) Create(ctx context.Context) (string, error) {
	resp, err := hedera.NewTopicCreateTransaction().Execute(c.Client)
	if err != nil {
		return "", fmt.Errorf("create topic: %w", err)
	}
	receipt, err := resp.GetReceipt(c.Client)
	if err != nil {
		return "", fmt.Errorf("create topic receipt: %w", err)
	}
	if receipt.TopicID == nil {
		return "", fmt.Errorf("create topic: receipt has no topic id")
	}
	return receipt.TopicID.String(), nil
}

// AccountCreator 生成 ED25519 密钥对并创建账户
type AccountCreator struct {
	Client *hedera.Client
}

func (c *AccountCreator) Create(ctx context.Context) (string, error) {
	key, err := hedera.PrivateKeyGenerateEd25519()
	if err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}

	resp, err := hedera.NewAccountCreateTransaction().
		SetKey(key.PublicKey()).
		SetInitialBalance(hedera.HbarFromTinybar(InitialReceiverBalance)).
		Execute(c.Client)
	if err != nil {
		return "", fmt.Errorf("create account: %w", err)
	}
	receipt, err := resp.GetReceipt(c.Client)
	if err != nil {
		return "", fmt.Errorf("create account receipt: %w", err)
	}
	if receipt.AccountID == nil {
		return "", fmt.Errorf("create account: receipt has no account id")
	}
	return receipt.AccountID.String(), nil
}
