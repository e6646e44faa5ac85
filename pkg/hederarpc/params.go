package hederarpc

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"hedera-bridge/pkg/jsonrpc"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// TransactionParams 交易载荷, bytes 为已冻结交易序列化后的 base64
type TransactionParams struct {
	Type  string `json:"type"`
	Bytes string `json:"bytes"`
}

// SignTransactionParams hedera_signAndExecuteTransaction / hedera_signAndReturnTransaction 的 params
type SignTransactionParams struct {
	Transaction *TransactionParams `json:"transaction"`
}

// SignMessageParams hedera_signMessage 的 params, message 为 UTF-8 原文的 base64
type SignMessageParams struct {
	Message string `json:"message"`
}

// Transaction 约束 SDK 中所有具体交易类型的指针 (*hedera.TransferTransaction 等)。
// SetNodeAccountIDs / Freeze 在每个交易类型上都返回自身指针, 所以只能用泛型描述。
type Transaction[T any] interface {
	*T
	GetNodeAccountIDs() []hedera.AccountID
	SetNodeAccountIDs([]hedera.AccountID) *T
	IsFrozen() bool
	Freeze() (*T, error)
	ToBytes() ([]byte, error)
}

// BuildTransactionPayload 把交易编码为 JSON-RPC params:
// 1. 未设置节点时默认发往 0.0.3
// 2. 未冻结时冻结
// 3. 序列化后 base64
func BuildTransactionPayload[T any, P Transaction[T]](requestType RequestType, tx P) (*SignTransactionParams, error) {
	if nodeIDs := tx.GetNodeAccountIDs(); len(nodeIDs) == 0 {
		tx.SetNodeAccountIDs([]hedera.AccountID{{Account: DefaultNodeAccount}})
	}

	if !tx.IsFrozen() {
		if _, err := tx.Freeze(); err != nil {
			return nil, fmt.Errorf("freeze transaction: %w", err)
		}
	}

	raw, err := tx.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("serialize transaction: %w", err)
	}

	return &SignTransactionParams{
		Transaction: &TransactionParams{
			Type:  requestType.String(),
			Bytes: base64.StdEncoding.EncodeToString(raw),
		},
	}, nil
}

// BuildSignMessagePayload 消息只做 base64, 不做其他变换
func BuildSignMessagePayload(message string) *SignMessageParams {
	return &SignMessageParams{
		Message: base64.StdEncoding.EncodeToString([]byte(message)),
	}
}

// NewRequest 把 params 包装为 JSON-RPC 请求体 (params.request)
func NewRequest(method string, params interface{}) (jsonrpc.Request, error) {
	raw, err := json.Marshal(params)
	if err != nil {
		return jsonrpc.Request{}, fmt.Errorf("marshal %s params: %w", method, err)
	}
	return jsonrpc.Request{
		ID:      jsonrpc.PayloadID(),
		JSONRPC: jsonrpc.Version,
		Method:  method,
		Params:  raw,
	}, nil
}
