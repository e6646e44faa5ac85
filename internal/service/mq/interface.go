package mq

import "context"

// Message 通用消息
type Message struct {
	ID       string            // 消息ID (Redis Stream ID 或 Kafka partition/offset)
	Topic    string            // 主题 (例如 "hedera_session_requests")
	Key      string            // 分区键, 这里使用会话 topic
	Payload  []byte            // 消息体 (JSON)
	Metadata map[string]string // 元数据
}

// Handler 返回 error 时消息不确认
type Handler func(msg *Message) error

// Producer 生产者接口
type Producer interface {
	// Publish key 用于分区排序, 传空字符串则随机分区
	Publish(ctx context.Context, topic string, key string, payload []byte) error
	Close() error
}

// Consumer 消费者接口
type Consumer interface {
	// Subscribe 阻塞消费直到 ctx 取消
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
