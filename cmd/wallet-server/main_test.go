package main

import (
	"testing"

	"hedera-bridge/pkg/config"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWallet(t *testing.T) {
	key, err := hedera.PrivateKeyGenerateEd25519()
	require.NoError(t, err)

	w := initWallet(config.HederaConfig{AccountID: "0.0.1001", PrivateKey: key.String()})
	require.NotNil(t, w)
	defer w.Close()
	assert.Equal(t, "0.0.1001", w.GetAccount().AccountID)
}

func TestInitWallet_FailuresLeaveWalletNil(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.HederaConfig
	}{
		{"missing env", config.HederaConfig{}},
		{"missing key", config.HederaConfig{AccountID: "0.0.1001"}},
		{"unparseable key", config.HederaConfig{AccountID: "0.0.1001", PrivateKey: "garbage"}},
		{"unparseable account", config.HederaConfig{AccountID: "not-an-account", PrivateKey: "garbage"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, initWallet(tt.cfg))
		})
	}
}
