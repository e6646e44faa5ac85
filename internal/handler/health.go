package handler

import (
	"hedera-bridge/internal/handler/response"
	"hedera-bridge/pkg/chain"

	"github.com/gin-gonic/gin"
)

// Health 进程存活即 UP; wallet 字段区分是否已加载私钥
// @Summary Check system health
// @Tags system
// @Produce json
// @Success 200 {object} response.Response
// @Router /health [get]
func (h *AccountHandler) Health(c *gin.Context) {
	walletState := "loaded"
	if h.wallet == nil {
		walletState = "unavailable"
	}
	response.Success(c, gin.H{
		"status": "UP",
		"wallet": walletState,
		"chains": chain.Chains(),
	})
}
