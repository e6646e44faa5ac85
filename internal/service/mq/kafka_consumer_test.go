package mq

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaConsumer_CloseBeforeSubscribe(t *testing.T) {
	c := NewKafkaConsumer([]string{"127.0.0.1:1"}, "hedera-wallet")
	assert.NoError(t, c.Close())
}

func TestKafkaConsumer_SubscribeLeavesReaderToClose(t *testing.T) {
	c := NewKafkaConsumer([]string{"127.0.0.1:1"}, "hedera-wallet")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := c.Subscribe(ctx, "hedera_session_requests", func(msg *Message) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, called)

	// Subscribe 返回后 reader 仍由 Close 负责关闭
	require.NotNil(t, c.reader)
	assert.NoError(t, c.Close())
}
