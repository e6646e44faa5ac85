package wallet

import (
	"encoding/base64"
	"fmt"
	"reflect"

	"hedera-bridge/pkg/errno"
	"hedera-bridge/pkg/hederarpc"
	"hedera-bridge/pkg/logger"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"go.uber.org/zap"
)

// Account GetAccount 的返回
type Account struct {
	AccountID string `json:"accountId"`
}

// ExecuteResult 成功时为 {response, receipt}, 失败时只有 {error}
type ExecuteResult struct {
	Response *ResponseView `json:"response,omitempty"`
	Receipt  *ReceiptView  `json:"receipt,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// SignAndReturnResult 成功时为 {transaction: {type, bytes}}, 失败时只有 {error}
type SignAndReturnResult struct {
	Transaction *hederarpc.TransactionParams `json:"transaction,omitempty"`
	Error       string                       `json:"error,omitempty"`
}

// WalletError 失败时的错误信息
func (r *ExecuteResult) WalletError() string {
	return r.Error
}

func (r *SignAndReturnResult) WalletError() string {
	return r.Error
}

// SignMessageResult signature 为签名的 base64
type SignMessageResult struct {
	Signature string `json:"signature"`
}

// Options 钱包身份与费用上限
type Options struct {
	AccountID             string
	PrivateKey            string
	MaxTransactionFeeHbar float64
	MaxQueryPaymentHbar   float64
}

type Option func(*HederaWallet)

// WithSubmitter 替换默认的网络提交实现
func WithSubmitter(s Submitter) Option {
	return func(w *HederaWallet) {
		w.submitter = s
	}
}

// HederaWallet 进程内唯一的测试网账户, 私钥不会出现在任何返回值中
type HederaWallet struct {
	accountID  hedera.AccountID
	privateKey hedera.PrivateKey
	client     *hedera.Client
	submitter  Submitter
}

// New 解析账户与私钥并创建测试网 Client
func New(opts Options, options ...Option) (*HederaWallet, error) {
	client, accountID, privateKey, err := hederarpc.NewTestnetClient(hederarpc.ClientOptions{
		AccountID:             opts.AccountID,
		PrivateKey:            opts.PrivateKey,
		MaxTransactionFeeHbar: opts.MaxTransactionFeeHbar,
		MaxQueryPaymentHbar:   opts.MaxQueryPaymentHbar,
	})
	if err != nil {
		return nil, fmt.Errorf("init hedera wallet: %w", err)
	}

	w := &HederaWallet{
		accountID:  accountID,
		privateKey: privateKey,
		client:     client,
	}
	w.submitter = &networkSubmitter{client: client}
	for _, opt := range options {
		opt(w)
	}
	return w, nil
}

// Close 关闭底层 gRPC 连接
func (w *HederaWallet) Close() error {
	if w.client == nil {
		return nil
	}
	return w.client.Close()
}

// Client 供需要直接访问网络的调用方使用 (如 dApp 侧创建 topic)
func (w *HederaWallet) Client() *hedera.Client {
	return w.client
}

func (w *HederaWallet) GetAccount() Account {
	return Account{AccountID: w.accountID.String()}
}

// PublicKey 校验签名用
func (w *HederaWallet) PublicKey() hedera.PublicKey {
	return w.privateKey.PublicKey()
}

// TransactionFromEncodedBytes base64 -> SDK 交易 (值类型, 如 hedera.TransferTransaction)
func (w *HederaWallet) TransactionFromEncodedBytes(encoded string) (interface{}, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode transaction base64: %w", err)
	}
	tx, err := hedera.TransactionFromBytes(raw)
	if err != nil {
		return nil, fmt.Errorf("transaction from bytes: %w", err)
	}
	if tx == nil {
		return nil, errno.ErrTransactionUndecodable
	}
	return tx, nil
}

// SignAndExecuteTransaction 签名 -> 提交 -> 等待 receipt, 任何错误都放进 Error 字段
func (w *HederaWallet) SignAndExecuteTransaction(tx interface{}) *ExecuteResult {
	signed, err := w.sign(tx)
	if err != nil {
		logger.Error("sign transaction failed", zap.Error(err))
		return &ExecuteResult{Error: err.Error()}
	}

	resp, receipt, err := w.submitter.Submit(signed)
	if err != nil {
		logger.Error("execute transaction failed", zap.Error(err))
		return &ExecuteResult{Error: err.Error()}
	}

	return &ExecuteResult{
		Response: newResponseView(resp),
		Receipt:  newReceiptView(receipt),
	}
}

// SignAndReturnTransaction 签名后重新序列化, type 原样带回
func (w *HederaWallet) SignAndReturnTransaction(tx interface{}, requestType string) *SignAndReturnResult {
	signed, err := w.sign(tx)
	if err != nil {
		logger.Error("sign transaction failed", zap.Error(err))
		return &SignAndReturnResult{Error: err.Error()}
	}

	raw, err := hedera.TransactionToBytes(signed)
	if err != nil {
		logger.Error("serialize signed transaction failed", zap.Error(err))
		return &SignAndReturnResult{Error: err.Error()}
	}

	return &SignAndReturnResult{
		Transaction: &hederarpc.TransactionParams{
			Type:  requestType,
			Bytes: base64.StdEncoding.EncodeToString(raw),
		},
	}
}

// SignMessage 对 base64 解码后的原始字节签名
func (w *HederaWallet) SignMessage(encoded string) (*SignMessageResult, error) {
	message, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errno.ErrMessageUndecodable
	}
	signature := w.privateKey.Sign(message)
	return &SignMessageResult{
		Signature: base64.StdEncoding.EncodeToString(signature),
	}, nil
}

// sign 返回已签名交易的值类型, 以便后续 TransactionToBytes / TransactionExecute 识别
func (w *HederaWallet) sign(tx interface{}) (interface{}, error) {
	if tx == nil {
		return nil, errno.ErrTransactionUndecodable
	}
	signed, err := hedera.TransactionSign(indirect(tx), w.privateKey)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	return indirect(signed), nil
}

// indirect *T -> T
func indirect(v interface{}) interface{} {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return rv.Elem().Interface()
	}
	return v
}
