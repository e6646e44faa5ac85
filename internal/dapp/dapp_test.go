package dapp

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hedera-bridge/pkg/hederarpc"
	"hedera-bridge/pkg/jsonrpc"
	"hedera-bridge/pkg/walletconnect"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	from = hedera.AccountID{Account: 1001}
	to   = hedera.AccountID{Account: 54321}
)

func TestNewTransferRequest(t *testing.T) {
	req, err := NewTransferRequest(hederarpc.MethodSignAndReturnTransaction, from, to, 100000000)
	require.NoError(t, err)
	assert.Equal(t, hederarpc.MethodSignAndReturnTransaction, req.Method)
	assert.NotZero(t, req.ID)

	var params hederarpc.SignTransactionParams
	require.NoError(t, json.Unmarshal(req.Params, &params))
	require.NotNil(t, params.Transaction)
	assert.Equal(t, "CryptoTransfer", params.Transaction.Type)

	raw, err := base64.StdEncoding.DecodeString(params.Transaction.Bytes)
	require.NoError(t, err)
	decoded, err := hedera.TransactionFromBytes(raw)
	require.NoError(t, err)
	transfer, ok := decoded.(hedera.TransferTransaction)
	require.True(t, ok)

	amounts := map[string]int64{}
	for account, amount := range transfer.GetHbarTransfers() {
		amounts[account.String()] = amount.AsTinybar()
	}
	assert.Equal(t, map[string]int64{"0.0.1001": -100000000, "0.0.54321": 100000000}, amounts)
}

func TestNewTransferRequest_Invalid(t *testing.T) {
	_, err := NewTransferRequest(hederarpc.MethodSignMessage, from, to, 1)
	assert.Error(t, err)

	_, err = NewTransferRequest(hederarpc.MethodSignAndExecuteTransaction, from, to, 0)
	assert.Error(t, err)
}

func TestParseReceiver(t *testing.T) {
	receiver, err := ParseReceiver("0.1.5")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), receiver.Shard)
	assert.Equal(t, uint64(1), receiver.Realm)
	assert.Equal(t, uint64(5), receiver.Account)

	receiver, err = ParseReceiver("0.0.54321")
	require.NoError(t, err)
	assert.Equal(t, "0.0.54321", receiver.String())

	_, err = ParseReceiver("not-an-account")
	assert.Error(t, err)
}

func TestNewTopicMessageRequest(t *testing.T) {
	req, err := NewTopicMessageRequest(from, "0.0.4242", "hello")
	require.NoError(t, err)
	assert.Equal(t, hederarpc.MethodSignAndExecuteTransaction, req.Method)

	var params hederarpc.SignTransactionParams
	require.NoError(t, json.Unmarshal(req.Params, &params))
	assert.Equal(t, "ConsensusSubmitMessage", params.Transaction.Type)

	_, err = NewTopicMessageRequest(from, "not-a-topic", "hello")
	assert.Error(t, err)
}

func TestNewSignMessageRequest(t *testing.T) {
	req, err := NewSignMessageRequest("hello")
	require.NoError(t, err)
	assert.Equal(t, "hedera_signMessage", req.Method)
	assert.JSONEq(t, `{"message":"aGVsbG8="}`, string(req.Params))
}

func TestRequesterSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/session_request", r.URL.Path)

		var event walletconnect.SessionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&event))
		assert.Equal(t, "topic-1", event.Topic)
		assert.Equal(t, "hedera:testnet", event.Params.ChainID)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(jsonrpc.FormatResult(event.ID, map[string]string{"signature": "c2ln"}))
	}))
	defer srv.Close()

	req, err := NewSignMessageRequest("hello")
	require.NoError(t, err)

	resp, err := NewRequester(srv.URL, time.Second).Send(context.Background(), "topic-1", req)
	require.NoError(t, err)
	assert.Equal(t, req.ID, resp.ID)
	assert.False(t, resp.IsError())
	assert.Equal(t, map[string]interface{}{"signature": "c2ln"}, resp.Result)
}

func TestRequesterSend_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	req, err := NewSignMessageRequest("hello")
	require.NoError(t, err)

	_, err = NewRequester(srv.URL, time.Second).Send(context.Background(), "topic-1", req)
	assert.Error(t, err)
}
