package request

import (
	"encoding/json"

	"hedera-bridge/pkg/jsonrpc"
	"hedera-bridge/pkg/walletconnect"
)

// SessionRequest POST /api/v1/session_request 的请求体
type SessionRequest struct {
	ID     int64         `json:"id" binding:"required"`
	Topic  string        `json:"topic" binding:"required"`
	Params SessionParams `json:"params"`
}

type SessionParams struct {
	ChainID string     `json:"chainId" binding:"required"`
	Request RPCRequest `json:"request"`
}

type RPCRequest struct {
	Method string          `json:"method" binding:"required"`
	Params json.RawMessage `json:"params"`
}

// ToSession 转为 walletconnect 的事件结构
func (r *SessionRequest) ToSession() *walletconnect.SessionRequest {
	return walletconnect.NewSessionRequest(r.ID, r.Topic, r.Params.ChainID, jsonrpc.Request{
		ID:      r.ID,
		JSONRPC: jsonrpc.Version,
		Method:  r.Params.Request.Method,
		Params:  r.Params.Request.Params,
	})
}
