package handler

import (
	"hedera-bridge/internal/handler/request"
	"hedera-bridge/internal/handler/response"
	"hedera-bridge/internal/service"
	"hedera-bridge/pkg/errno"
	"hedera-bridge/pkg/jsonrpc"
	"hedera-bridge/pkg/logger"
	"hedera-bridge/pkg/validator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SessionHandler struct {
	svc service.RequestService
}

func NewSessionHandler(svc service.RequestService) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// Approve 用户同意后执行 session_request
// @Summary 处理 session_request
// @Description 按 params.request.method 分发: hedera_signAndExecuteTransaction / hedera_signAndReturnTransaction / hedera_signMessage
// @Tags Session
// @Accept json
// @Produce json
// @Param request body request.SessionRequest true "session_request 事件"
// @Success 200 {object} jsonrpc.Response
// @Router /api/v1/session_request [post]
func (h *SessionHandler) Approve(c *gin.Context) {
	// 1. 绑定参数
	req, ok := h.bind(c)
	if !ok {
		return
	}

	// 2. 调用 Service
	response.RPC(c, h.svc.Approve(c.Request.Context(), req.ToSession()))
}

// Reject 用户拒绝
// @Summary 拒绝 session_request
// @Tags Session
// @Accept json
// @Produce json
// @Param request body request.SessionRequest true "session_request 事件"
// @Success 200 {object} jsonrpc.Response
// @Router /api/v1/session_request/reject [post]
func (h *SessionHandler) Reject(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}
	response.RPC(c, h.svc.Reject(c.Request.Context(), req.ToSession()))
}

// bind 请求体无效时直接返回 id 为 0 的 JSON-RPC 错误
func (h *SessionHandler) bind(c *gin.Context) (*request.SessionRequest, bool) {
	var req request.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("invalid session request body", zap.Error(err))
		response.RPC(c, jsonrpc.FormatError(0, errno.ErrBind.WithMessage(validator.GetErrorMsg(err))))
		return nil, false
	}
	return &req, true
}
