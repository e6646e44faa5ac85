package walletconnect

import "hedera-bridge/pkg/jsonrpc"

// SessionRequest 钱包连接 SDK 的 session_request 事件
// { id, topic, params: { chainId, request: { method, params } } }
type SessionRequest struct {
	ID     int64                `json:"id"`
	Topic  string               `json:"topic"`
	Params SessionRequestParams `json:"params"`
}

type SessionRequestParams struct {
	ChainID string          `json:"chainId"`
	Request jsonrpc.Request `json:"request"`
}

// Method 便捷访问 params.request.method
func (r *SessionRequest) Method() string {
	return r.Params.Request.Method
}

// NewSessionRequest 构造一个发往钱包的 session_request
func NewSessionRequest(id int64, topic, chainID string, request jsonrpc.Request) *SessionRequest {
	return &SessionRequest{
		ID:    id,
		Topic: topic,
		Params: SessionRequestParams{
			ChainID: chainID,
			Request: request,
		},
	}
}
