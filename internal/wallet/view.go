package wallet

import (
	"encoding/hex"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// ResponseView TransactionResponse 的 JSON 形式
type ResponseView struct {
	NodeID          string `json:"nodeId"`
	TransactionHash string `json:"transactionHash"`
	TransactionID   string `json:"transactionId"`
}

// ReceiptView TransactionReceipt 的 JSON 形式, 未设置的 id 字段为 null
type ReceiptView struct {
	Status              string  `json:"status"`
	AccountID           *string `json:"accountId"`
	FileID              *string `json:"fileId"`
	TopicID             *string `json:"topicId"`
	TokenID             *string `json:"tokenId"`
	TopicSequenceNumber uint64  `json:"topicSequenceNumber"`
	TopicRunningHash    string  `json:"topicRunningHash,omitempty"`
	Serials             []int64 `json:"serials"`
}

func newResponseView(resp hedera.TransactionResponse) *ResponseView {
	return &ResponseView{
		NodeID:          resp.NodeID.String(),
		TransactionHash: hex.EncodeToString(resp.Hash),
		TransactionID:   resp.TransactionID.String(),
	}
}

func newReceiptView(receipt hedera.TransactionReceipt) *ReceiptView {
	view := &ReceiptView{
		Status:              receipt.Status.String(),
		TopicSequenceNumber: receipt.TopicSequenceNumber,
		Serials:             receipt.SerialNumbers,
	}
	if len(receipt.TopicRunningHash) > 0 {
		view.TopicRunningHash = hex.EncodeToString(receipt.TopicRunningHash)
	}
	if receipt.AccountID != nil {
		view.AccountID = stringPtr(receipt.AccountID.String())
	}
	if receipt.FileID != nil {
		view.FileID = stringPtr(receipt.FileID.String())
	}
	if receipt.TopicID != nil {
		view.TopicID = stringPtr(receipt.TopicID.String())
	}
	if receipt.TokenID != nil {
		view.TokenID = stringPtr(receipt.TokenID.String())
	}
	if view.Serials == nil {
		view.Serials = []int64{}
	}
	return view
}

func stringPtr(s string) *string {
	return &s
}
