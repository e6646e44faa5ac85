package jsonrpc

import (
	"encoding/json"
	"math/rand"
	"time"

	"hedera-bridge/pkg/errno"
)

const Version = "2.0"

// Request JSON-RPC 请求, params 保留原始 JSON, 由调用方按 method 解析
type Request struct {
	ID      int64           `json:"id"`
	JSONRPC string          `json:"jsonrpc,omitempty"`
	Method  string          `json:"method" binding:"required"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// Error JSON-RPC 错误对象
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Response 成功时只有 result, 失败时只有 error
type Response struct {
	ID      int64       `json:"id"`
	JSONRPC string      `json:"jsonrpc"`
	Result  interface{} `json:"result,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// IsError 是否为错误响应
func (r *Response) IsError() bool {
	return r.Error != nil
}

// FormatResult 组装成功响应
func FormatResult(id int64, result interface{}) *Response {
	return &Response{
		ID:      id,
		JSONRPC: Version,
		Result:  result,
	}
}

// FormatError 组装错误响应, 非 errno 错误统一为 -32000 + err.Error()
func FormatError(id int64, err error) *Response {
	code, msg := errno.Decode(err)
	return &Response{
		ID:      id,
		JSONRPC: Version,
		Error: &Error{
			Code:    code,
			Message: msg,
		},
	}
}

// PayloadID 生成请求 ID: 毫秒时间戳 * 1000 + 3 位随机数 (与钱包连接 SDK 的 payloadId 一致)
func PayloadID() int64 {
	return time.Now().UnixMilli()*1000 + rand.Int63n(1000)
}
