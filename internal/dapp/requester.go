package dapp

import (
	"context"
	"fmt"
	"time"

	"hedera-bridge/pkg/hederarpc"
	"hedera-bridge/pkg/jsonrpc"
	"hedera-bridge/pkg/logger"
	"hedera-bridge/pkg/walletconnect"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Requester 把 session_request 直接投递到钱包的 HTTP 接口
type Requester struct {
	http    *resty.Client
	chainID string
}

func NewRequester(walletURL string, timeout time.Duration) *Requester {
	return &Requester{
		http: resty.New().
			SetBaseURL(walletURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
		chainID: hederarpc.ChainTestnet,
	}
}

// Send 以 request.ID 作为事件 id, 返回钱包的 JSON-RPC 响应
func (r *Requester) Send(ctx context.Context, topic string, request jsonrpc.Request) (*jsonrpc.Response, error) {
	event := walletconnect.NewSessionRequest(request.ID, topic, r.chainID, request)

	var out jsonrpc.Response
	resp, err := r.http.R().
		SetContext(ctx).
		SetBody(event).
		SetResult(&out).
		Post("/api/v1/session_request")
	if err != nil {
		return nil, fmt.Errorf("send session request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("wallet returned %d: %s", resp.StatusCode(), resp.String())
	}

	logger.Debug("session request answered",
		zap.Int64("id", request.ID), zap.String("method", request.Method), zap.Bool("error", out.IsError()))
	return &out, nil
}
