package wallet

import (
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// Submitter 把已签名交易发到网络并等待 receipt
type Submitter interface {
	Submit(tx interface{}) (hedera.TransactionResponse, hedera.TransactionReceipt, error)
}

// networkSubmitter 通过 SDK Client 提交, 超时由 SDK 默认值控制
type networkSubmitter struct {
	client *hedera.Client
}

func (s *networkSubmitter) Submit(tx interface{}) (hedera.TransactionResponse, hedera.TransactionReceipt, error) {
	resp, err := hedera.TransactionExecute(tx, s.client)
	if err != nil {
		return hedera.TransactionResponse{}, hedera.TransactionReceipt{}, fmt.Errorf("execute transaction: %w", err)
	}

	receipt, err := resp.GetReceipt(s.client)
	if err != nil {
		return resp, hedera.TransactionReceipt{}, fmt.Errorf("get receipt: %w", err)
	}
	return resp, receipt, nil
}
