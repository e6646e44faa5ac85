package errno

import "errors"

// Errno 是桥接层统一的错误类型, Code 直接作为 JSON-RPC error.code 使用
type Errno struct {
	Code    int
	Message string
}

func (e Errno) Error() string {
	return e.Message
}

// WithMessage 复制一个错误码相同、描述不同的 Errno
func (e Errno) WithMessage(msg string) Errno {
	return Errno{Code: e.Code, Message: msg}
}

// Decode tries to convert an error to (code, message)
func Decode(err error) (int, string) {
	if err == nil {
		return OK.Code, OK.Message
	}

	var typed Errno
	if errors.As(err, &typed) {
		return typed.Code, typed.Message
	}
	var typedPtr *Errno
	if errors.As(err, &typedPtr) && typedPtr != nil {
		return typedPtr.Code, typedPtr.Message
	}
	return ServerError.Code, err.Error()
}

// JSON-RPC 2.0 标准错误
var (
	OK             = Errno{Code: 0, Message: "Success"}
	ParseError     = Errno{Code: -32700, Message: "Parse error"}
	InvalidRequest = Errno{Code: -32600, Message: "Invalid Request"}
	InternalError  = Errno{Code: -32603, Message: "Internal error"}
	// ServerError 字符串错误在钱包连接 SDK 的 formatJsonRpcError 中统一落到 -32000
	ServerError = Errno{Code: -32000, Message: "Server error"}
)

// 钱包连接 SDK 的标准错误文案 (getSdkError)。线上只用到 message, code 与字符串错误保持一致
var (
	ErrInvalidMethod       = Errno{Code: -32000, Message: "Invalid method."}
	ErrUserRejectedMethods = Errno{Code: -32000, Message: "User rejected methods."}
)

// Business Errors
var (
	ErrTransactionUndecodable = Errno{Code: -32000, Message: "Unable to build transaction from bytes."}
	ErrMessageUndecodable     = Errno{Code: -32000, Message: "Unable to decode message bytes."}
	ErrBind                   = Errno{Code: -32600, Message: "Error occurred while binding the request body to the struct"}
	ErrConfigurationMissing   = Errno{Code: 10001, Message: "Missing required env vars: `NEXT_PUBLIC_HEDERA_ACCOUNT_ID` and/or `NEXT_PUBLIC_HEDERA_PRIVATE_KEY`"}
	ErrWalletUnavailable      = Errno{Code: 10002, Message: "Hedera wallet is not initialized"}
	ErrUnknownChain           = Errno{Code: 20101, Message: "No chain metadata found"}
	ErrMirrorNode             = Errno{Code: 20201, Message: "Mirror node query failed"}
)
