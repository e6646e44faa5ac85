package dapp

import (
	"fmt"

	"hedera-bridge/pkg/hederarpc"
	"hedera-bridge/pkg/jsonrpc"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// NewTransferRequest 从 from 向 to 转账 tinybars
// method 为 hedera_signAndExecuteTransaction 或 hedera_signAndReturnTransaction
func NewTransferRequest(method string, from, to hedera.AccountID, tinybars int64) (jsonrpc.Request, error) {
	if !isTransactionMethod(method) {
		return jsonrpc.Request{}, fmt.Errorf("method %s does not carry a transaction", method)
	}
	if tinybars <= 0 {
		return jsonrpc.Request{}, fmt.Errorf("amount must be positive, got %d", tinybars)
	}

	tx := hedera.NewTransferTransaction().
		SetTransactionID(hedera.TransactionIDGenerate(from)).
		AddHbarTransfer(from, hedera.HbarFromTinybar(-tinybars)).
		AddHbarTransfer(to, hedera.HbarFromTinybar(tinybars))

	params, err := hederarpc.BuildTransactionPayload(hederarpc.RequestTypeCryptoTransfer, tx)
	if err != nil {
		return jsonrpc.Request{}, err
	}
	return hederarpc.NewRequest(method, params)
}

// ParseReceiver 接收账户保留完整的 shard.realm.num
func ParseReceiver(to string) (hedera.AccountID, error) {
	receiver, err := hedera.AccountIDFromString(to)
	if err != nil {
		return hedera.AccountID{}, fmt.Errorf("invalid receiver %q: %w", to, err)
	}
	return receiver, nil
}

// NewTopicMessageRequest 向 topic 提交一条消息, 由钱包签名并执行
func NewTopicMessageRequest(from hedera.AccountID, topicID string, message string) (jsonrpc.Request, error) {
	topic, err := hedera.TopicIDFromString(topicID)
	if err != nil {
		return jsonrpc.Request{}, fmt.Errorf("invalid topic id %q: %w", topicID, err)
	}

	tx := hedera.NewTopicMessageSubmitTransaction().
		SetTransactionID(hedera.TransactionIDGenerate(from)).
		SetTopicID(topic).
		SetMessage([]byte(message))

	params, err := hederarpc.BuildTransactionPayload(hederarpc.RequestTypeConsensusSubmitMessage, tx)
	if err != nil {
		return jsonrpc.Request{}, err
	}
	return hederarpc.NewRequest(hederarpc.MethodSignAndExecuteTransaction, params)
}

// NewSignMessageRequest hedera_signMessage
func NewSignMessageRequest(message string) (jsonrpc.Request, error) {
	return hederarpc.NewRequest(hederarpc.MethodSignMessage, hederarpc.BuildSignMessagePayload(message))
}

func isTransactionMethod(method string) bool {
	return method == hederarpc.MethodSignAndExecuteTransaction || method == hederarpc.MethodSignAndReturnTransaction
}
