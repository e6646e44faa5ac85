package handler

import (
	"errors"

	"hedera-bridge/internal/handler/response"
	"hedera-bridge/pkg/chain"

	"github.com/gin-gonic/gin"
)

// GetChain 链展示信息
// @Summary 查询链信息
// @Tags Chain
// @Produce json
// @Param chainId path string true "链标识, 如 hedera:testnet"
// @Success 200 {object} response.Response{data=chain.Metadata}
// @Router /api/v1/chains/{chainId} [get]
func GetChain(c *gin.Context) {
	metadata, err := chain.GetChainMetadata(c.Param("chainId"))
	if err != nil {
		var unknown *chain.UnknownChainError
		if errors.As(err, &unknown) {
			response.Error(c, unknown.Errno())
			return
		}
		response.Error(c, err)
		return
	}
	response.Success(c, metadata)
}
