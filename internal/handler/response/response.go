package response

import (
	"net/http"

	"hedera-bridge/pkg/errno"
	"hedera-bridge/pkg/jsonrpc"

	"github.com/gin-gonic/gin"
)

// Response 普通接口的统一结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"msg"`
	Data    interface{} `json:"data"`
}

// Success returns a success response with data
func Success(c *gin.Context, data interface{}) {
	if data == nil {
		data = gin.H{} // Return empty object instead of null
	}
	c.JSON(http.StatusOK, Response{
		Code:    errno.OK.Code,
		Message: errno.OK.Message,
		Data:    data,
	})
}

// Error returns an error response
func Error(c *gin.Context, err error) {
	code, msg := errno.Decode(err)
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: msg,
		Data:    gin.H{},
	})
}

// RPC session_request 接口直接返回 JSON-RPC 响应, 不套统一结构
func RPC(c *gin.Context, resp *jsonrpc.Response) {
	c.JSON(http.StatusOK, resp)
}
