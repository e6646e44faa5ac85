package wallet

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"hedera-bridge/pkg/hederarpc"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var operator = hedera.AccountID{Account: 1001}

type fakeSubmitter struct {
	submitted []interface{}
	err       error
}

func (f *fakeSubmitter) Submit(tx interface{}) (hedera.TransactionResponse, hedera.TransactionReceipt, error) {
	f.submitted = append(f.submitted, tx)
	if f.err != nil {
		return hedera.TransactionResponse{}, hedera.TransactionReceipt{}, f.err
	}
	topicID := hedera.TopicID{Topic: 777}
	return hedera.TransactionResponse{
			NodeID: hedera.AccountID{Account: 3},
			Hash:   []byte{0xca, 0xfe},
		}, hedera.TransactionReceipt{
			Status:              hedera.StatusSuccess,
			TopicID:             &topicID,
			TopicSequenceNumber: 1,
		}, nil
}

func newTestWallet(t *testing.T, options ...Option) *HederaWallet {
	t.Helper()
	key, err := hedera.PrivateKeyGenerateEd25519()
	require.NoError(t, err)

	w, err := New(Options{AccountID: "0.0.1001", PrivateKey: key.String()}, options...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func encodedTransfer(t *testing.T) string {
	t.Helper()
	txID := hedera.NewTransactionIDWithValidStart(operator, time.Unix(1700000000, 0))
	tx := hedera.NewTransferTransaction().
		SetTransactionID(txID).
		AddHbarTransfer(operator, hedera.NewHbar(-1)).
		AddHbarTransfer(hedera.AccountID{Account: 54321}, hedera.NewHbar(1))

	params, err := hederarpc.BuildTransactionPayload(hederarpc.RequestTypeCryptoTransfer, tx)
	require.NoError(t, err)
	return params.Transaction.Bytes
}

func encodedTopicMessage(t *testing.T) string {
	t.Helper()
	txID := hedera.NewTransactionIDWithValidStart(operator, time.Unix(1700000000, 0))
	tx := hedera.NewTopicMessageSubmitTransaction().
		SetTransactionID(txID).
		SetTopicID(hedera.TopicID{Topic: 777}).
		SetMessage([]byte("hello topic"))

	params, err := hederarpc.BuildTransactionPayload(hederarpc.RequestTypeConsensusSubmitMessage, tx)
	require.NoError(t, err)
	return params.Transaction.Bytes
}

func TestNew_InvalidKey(t *testing.T) {
	_, err := New(Options{AccountID: "0.0.1001", PrivateKey: "not-a-key"})
	assert.Error(t, err)

	_, err = New(Options{AccountID: "", PrivateKey: "not-a-key"})
	assert.Error(t, err)
}

func TestGetAccount(t *testing.T) {
	w := newTestWallet(t)
	assert.Equal(t, Account{AccountID: "0.0.1001"}, w.GetAccount())
}

func TestTransactionFromEncodedBytes(t *testing.T) {
	w := newTestWallet(t)

	tx, err := w.TransactionFromEncodedBytes(encodedTransfer(t))
	require.NoError(t, err)
	_, ok := tx.(hedera.TransferTransaction)
	assert.True(t, ok, "应解码为 TransferTransaction, 得到 %T", tx)

	tx, err = w.TransactionFromEncodedBytes("!!!not-base64!!!")
	assert.Error(t, err)
	assert.Nil(t, tx)

	tx, err = w.TransactionFromEncodedBytes(base64.StdEncoding.EncodeToString([]byte("garbage")))
	assert.Error(t, err)
	assert.Nil(t, tx)
}

func TestSignAndReturnTransaction(t *testing.T) {
	w := newTestWallet(t)

	tx, err := w.TransactionFromEncodedBytes(encodedTransfer(t))
	require.NoError(t, err)

	result := w.SignAndReturnTransaction(tx, "CryptoTransfer")
	require.Empty(t, result.Error)
	require.NotNil(t, result.Transaction)
	assert.Equal(t, "CryptoTransfer", result.Transaction.Type)

	// 返回的交易应带有钱包公钥的签名
	raw, err := base64.StdEncoding.DecodeString(result.Transaction.Bytes)
	require.NoError(t, err)
	decoded, err := hedera.TransactionFromBytes(raw)
	require.NoError(t, err)
	transfer, ok := decoded.(hedera.TransferTransaction)
	require.True(t, ok)

	signatures, err := transfer.GetSignatures()
	require.NoError(t, err)

	found := false
	for _, byKey := range signatures {
		for pk, sig := range byKey {
			if pk != nil && pk.String() == w.PublicKey().String() && len(sig) > 0 {
				found = true
			}
		}
	}
	assert.True(t, found, "签名中应包含钱包公钥")
}

func TestSignAndExecuteTransaction(t *testing.T) {
	submitter := &fakeSubmitter{}
	w := newTestWallet(t, WithSubmitter(submitter))

	tx, err := w.TransactionFromEncodedBytes(encodedTopicMessage(t))
	require.NoError(t, err)

	result := w.SignAndExecuteTransaction(tx)
	require.Empty(t, result.Error)
	require.NotNil(t, result.Receipt)
	assert.Equal(t, "SUCCESS", result.Receipt.Status)
	require.NotNil(t, result.Receipt.TopicID)
	assert.Equal(t, "0.0.777", *result.Receipt.TopicID)
	assert.Equal(t, "0.0.3", result.Response.NodeID)
	assert.Equal(t, "cafe", result.Response.TransactionHash)

	require.Len(t, submitter.submitted, 1)
	_, ok := submitter.submitted[0].(hedera.TopicMessageSubmitTransaction)
	assert.True(t, ok, "提交的应是值类型交易, 得到 %T", submitter.submitted[0])
}

func TestSignAndExecuteTransaction_SubmitError(t *testing.T) {
	w := newTestWallet(t, WithSubmitter(&fakeSubmitter{err: errors.New("INSUFFICIENT_PAYER_BALANCE")}))

	tx, err := w.TransactionFromEncodedBytes(encodedTransfer(t))
	require.NoError(t, err)

	result := w.SignAndExecuteTransaction(tx)
	assert.Equal(t, "INSUFFICIENT_PAYER_BALANCE", result.Error)
	assert.Nil(t, result.Response)
	assert.Nil(t, result.Receipt)
}

func TestSignAndExecuteTransaction_NilTransaction(t *testing.T) {
	w := newTestWallet(t, WithSubmitter(&fakeSubmitter{}))
	result := w.SignAndExecuteTransaction(nil)
	assert.Equal(t, "Unable to build transaction from bytes.", result.Error)
}

func TestSignMessage(t *testing.T) {
	w := newTestWallet(t)

	result, err := w.SignMessage(base64.StdEncoding.EncodeToString([]byte("hello")))
	require.NoError(t, err)

	signature, err := base64.StdEncoding.DecodeString(result.Signature)
	require.NoError(t, err)
	assert.True(t, w.PublicKey().Verify([]byte("hello"), signature))
	assert.False(t, w.PublicKey().Verify([]byte("hell0"), signature))

	_, err = w.SignMessage("%%%")
	assert.Error(t, err)
}
