package event

import (
	"hedera-bridge/pkg/jsonrpc"
	"hedera-bridge/pkg/walletconnect"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// SessionDecision 用户对一个 session_request 的处理决定
// Topic: bridge.request_topic
type SessionDecision struct {
	Action  string                        `json:"action"`
	Request *walletconnect.SessionRequest `json:"request"`
}

// SessionResponse 钱包返回给 dApp 的结果, 分区键为会话 topic
// Topic: bridge.response_topic
type SessionResponse struct {
	Topic    string            `json:"topic"`
	Response *jsonrpc.Response `json:"response"`
}
