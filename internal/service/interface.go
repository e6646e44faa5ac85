package service

import (
	"context"

	"hedera-bridge/internal/wallet"
	"hedera-bridge/pkg/jsonrpc"
	"hedera-bridge/pkg/walletconnect"
)

// RequestService 处理 dApp 发来的 session_request
type RequestService interface {
	// Approve 按 method 分发, 始终返回带请求 id 的 JSON-RPC 响应
	Approve(ctx context.Context, req *walletconnect.SessionRequest) *jsonrpc.Response
	// Reject 返回用户拒绝错误
	Reject(ctx context.Context, req *walletconnect.SessionRequest) *jsonrpc.Response
}

// Signer 钱包能力, *wallet.HederaWallet 实现了该接口
type Signer interface {
	TransactionFromEncodedBytes(encoded string) (interface{}, error)
	SignAndExecuteTransaction(tx interface{}) *wallet.ExecuteResult
	SignAndReturnTransaction(tx interface{}, requestType string) *wallet.SignAndReturnResult
	SignMessage(encoded string) (*wallet.SignMessageResult, error)
}
