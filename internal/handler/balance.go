package handler

import (
	"context"

	"hedera-bridge/internal/handler/response"
	"hedera-bridge/pkg/errno"
	"hedera-bridge/pkg/logger"
	"hedera-bridge/pkg/mirror"
	"hedera-bridge/pkg/monitor"
	"hedera-bridge/pkg/validator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BalanceQuerier mirror.Client 实现了该接口
type BalanceQuerier interface {
	GetAccountBalance(ctx context.Context, address string) (*mirror.Balance, error)
}

type BalanceHandler struct {
	mirror BalanceQuerier
}

func NewBalanceHandler(m BalanceQuerier) *BalanceHandler {
	return &BalanceHandler{mirror: m}
}

// GetBalance 通过 mirror node 查询账户余额
// @Summary 查询账户余额
// @Tags Wallet
// @Produce json
// @Param accountId path string true "账户, 如 0.0.1001"
// @Success 200 {object} response.Response{data=mirror.Balance}
// @Router /api/v1/accounts/{accountId}/balance [get]
func (h *BalanceHandler) GetBalance(c *gin.Context) {
	// 1. 校验参数
	accountID := c.Param("accountId")
	if !validator.IsAccountID(accountID) {
		response.Error(c, errno.ErrBind.WithMessage("accountId 必须是 shard.realm.num 格式"))
		return
	}

	// 2. 查询 mirror node
	balance, err := h.mirror.GetAccountBalance(c.Request.Context(), accountID)
	if err != nil {
		monitor.Business.MirrorQueriesTotal.WithLabelValues("error").Inc()
		logger.Error("mirror node query failed", zap.String("account", accountID), zap.Error(err))
		response.Error(c, errno.ErrMirrorNode.WithMessage(err.Error()))
		return
	}

	monitor.Business.MirrorQueriesTotal.WithLabelValues("ok").Inc()
	response.Success(c, balance)
}
