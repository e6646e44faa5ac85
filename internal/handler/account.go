package handler

import (
	"hedera-bridge/internal/handler/response"
	"hedera-bridge/internal/wallet"
	"hedera-bridge/pkg/errno"

	"github.com/gin-gonic/gin"
)

// AccountProvider 只暴露账户 id, 不涉及私钥
type AccountProvider interface {
	GetAccount() wallet.Account
}

type AccountHandler struct {
	wallet AccountProvider
}

// NewAccountHandler w 为 nil 表示钱包未初始化
func NewAccountHandler(w AccountProvider) *AccountHandler {
	return &AccountHandler{wallet: w}
}

// GetAccount 当前钱包账户
// @Summary 钱包账户
// @Tags Wallet
// @Produce json
// @Success 200 {object} response.Response{data=wallet.Account}
// @Router /api/v1/account [get]
func (h *AccountHandler) GetAccount(c *gin.Context) {
	if h.wallet == nil {
		response.Error(c, errno.ErrWalletUnavailable)
		return
	}
	response.Success(c, h.wallet.GetAccount())
}
