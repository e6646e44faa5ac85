package service

import (
	"context"
	"encoding/json"
	"fmt"

	"hedera-bridge/internal/event"
	"hedera-bridge/internal/service/mq"
	"hedera-bridge/pkg/jsonrpc"
	"hedera-bridge/pkg/logger"

	"go.uber.org/zap"
)

// SessionRelay 从 MQ 读取用户决定, 交给 RequestService 处理后把响应发回
type SessionRelay struct {
	requests      RequestService
	consumer      mq.Consumer
	producer      mq.Producer
	requestTopic  string
	responseTopic string
}

func NewSessionRelay(requests RequestService, consumer mq.Consumer, producer mq.Producer, requestTopic, responseTopic string) *SessionRelay {
	return &SessionRelay{
		requests:      requests,
		consumer:      consumer,
		producer:      producer,
		requestTopic:  requestTopic,
		responseTopic: responseTopic,
	}
}

// Start 阻塞直到 ctx 取消
func (r *SessionRelay) Start(ctx context.Context) error {
	logger.Info("[Relay] 启动会话中继",
		zap.String("request_topic", r.requestTopic),
		zap.String("response_topic", r.responseTopic))

	return r.consumer.Subscribe(ctx, r.requestTopic, func(msg *mq.Message) error {
		return r.Handle(ctx, msg)
	})
}

// Handle 处理一条决定消息; 无法解析的消息只记录日志并确认, 不重试
func (r *SessionRelay) Handle(ctx context.Context, msg *mq.Message) error {
	// 1. 解析
	var decision event.SessionDecision
	if err := json.Unmarshal(msg.Payload, &decision); err != nil || decision.Request == nil {
		logger.Error("[Relay] 丢弃无法解析的消息", zap.String("id", msg.ID), zap.Error(err))
		return nil
	}

	// 2. 分发
	var resp *jsonrpc.Response
	switch decision.Action {
	case event.ActionApprove:
		resp = r.requests.Approve(ctx, decision.Request)
	case event.ActionReject:
		resp = r.requests.Reject(ctx, decision.Request)
	default:
		logger.Error("[Relay] 丢弃未知 action 的消息",
			zap.String("id", msg.ID), zap.String("action", decision.Action))
		return nil
	}

	// 3. 回传; 发送失败也确认消息, 重投会导致交易被再次执行
	if err := r.publish(ctx, decision.Request.Topic, resp); err != nil {
		logger.Error("[Relay] 响应发送失败",
			zap.String("id", msg.ID), zap.Int64("request_id", resp.ID), zap.Error(err))
	}
	return nil
}

func (r *SessionRelay) publish(ctx context.Context, topic string, resp *jsonrpc.Response) error {
	payload, err := json.Marshal(event.SessionResponse{
		Topic:    topic,
		Response: resp,
	})
	if err != nil {
		return fmt.Errorf("marshal session response: %w", err)
	}
	if err := r.producer.Publish(ctx, r.responseTopic, topic, payload); err != nil {
		return fmt.Errorf("publish session response: %w", err)
	}
	return nil
}
