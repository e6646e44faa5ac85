package hederarpc

import "fmt"

// RequestType Hedera 请求类型 (HederaFunctionality), 字符串形式与 JS SDK RequestType.toString() 一致
type RequestType string

const (
	RequestTypeCryptoTransfer          RequestType = "CryptoTransfer"
	RequestTypeCryptoCreateAccount     RequestType = "CryptoCreateAccount"
	RequestTypeCryptoUpdateAccount     RequestType = "CryptoUpdateAccount"
	RequestTypeCryptoDelete            RequestType = "CryptoDelete"
	RequestTypeCryptoApproveAllowance  RequestType = "CryptoApproveAllowance"
	RequestTypeCryptoDeleteAllowance   RequestType = "CryptoDeleteAllowance"
	RequestTypeConsensusCreateTopic    RequestType = "ConsensusCreateTopic"
	RequestTypeConsensusUpdateTopic    RequestType = "ConsensusUpdateTopic"
	RequestTypeConsensusDeleteTopic    RequestType = "ConsensusDeleteTopic"
	RequestTypeConsensusSubmitMessage  RequestType = "ConsensusSubmitMessage"
	RequestTypeTokenCreate             RequestType = "TokenCreate"
	RequestTypeTokenUpdate             RequestType = "TokenUpdate"
	RequestTypeTokenDelete             RequestType = "TokenDelete"
	RequestTypeTokenMint               RequestType = "TokenMint"
	RequestTypeTokenBurn               RequestType = "TokenBurn"
	RequestTypeTokenAssociateToAccount RequestType = "TokenAssociateToAccount"
	RequestTypeTokenDissociate         RequestType = "TokenDissociateFromAccount"
	RequestTypeContractCall            RequestType = "ContractCall"
	RequestTypeContractCreate          RequestType = "ContractCreate"
	RequestTypeContractUpdate          RequestType = "ContractUpdate"
	RequestTypeContractDelete          RequestType = "ContractDelete"
	RequestTypeFileCreate              RequestType = "FileCreate"
	RequestTypeFileAppend              RequestType = "FileAppend"
	RequestTypeFileUpdate              RequestType = "FileUpdate"
	RequestTypeFileDelete              RequestType = "FileDelete"
	RequestTypeScheduleCreate          RequestType = "ScheduleCreate"
	RequestTypeScheduleSign            RequestType = "ScheduleSign"
	RequestTypeScheduleDelete          RequestType = "ScheduleDelete"
	RequestTypeEthereumTransaction     RequestType = "EthereumTransaction"
)

var requestTypes = map[RequestType]struct{}{
	RequestTypeCryptoTransfer:          {},
	RequestTypeCryptoCreateAccount:     {},
	RequestTypeCryptoUpdateAccount:     {},
	RequestTypeCryptoDelete:            {},
	RequestTypeCryptoApproveAllowance:  {},
	RequestTypeCryptoDeleteAllowance:   {},
	RequestTypeConsensusCreateTopic:    {},
	RequestTypeConsensusUpdateTopic:    {},
	RequestTypeConsensusDeleteTopic:    {},
	RequestTypeConsensusSubmitMessage:  {},
	RequestTypeTokenCreate:             {},
	RequestTypeTokenUpdate:             {},
	RequestTypeTokenDelete:             {},
	RequestTypeTokenMint:               {},
	RequestTypeTokenBurn:               {},
	RequestTypeTokenAssociateToAccount: {},
	RequestTypeTokenDissociate:         {},
	RequestTypeContractCall:            {},
	RequestTypeContractCreate:          {},
	RequestTypeContractUpdate:          {},
	RequestTypeContractDelete:          {},
	RequestTypeFileCreate:              {},
	RequestTypeFileAppend:              {},
	RequestTypeFileUpdate:              {},
	RequestTypeFileDelete:              {},
	RequestTypeScheduleCreate:          {},
	RequestTypeScheduleSign:            {},
	RequestTypeScheduleDelete:          {},
	RequestTypeEthereumTransaction:     {},
}

func (t RequestType) String() string {
	return string(t)
}

// ParseRequestType 校验字符串是否为已知的请求类型
func ParseRequestType(s string) (RequestType, error) {
	t := RequestType(s)
	if _, ok := requestTypes[t]; !ok {
		return "", fmt.Errorf("unknown hedera request type: %q", s)
	}
	return t, nil
}
