package server

import (
	_ "hedera-bridge/docs/swagger"
	"hedera-bridge/internal/handler"

	"hedera-bridge/pkg/monitor"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers 路由依赖的业务处理器
type Handlers struct {
	Session *handler.SessionHandler
	Account *handler.AccountHandler
	Balance *handler.BalanceHandler
}

// NewHTTPRouter 初始化并返回一个 Gin Engine
func NewHTTPRouter(h Handlers) *gin.Engine {
	// 0. 初始化监控指标
	monitor.Init()

	// 1. 创建 Engine (使用默认中间件: Logger, Recovery)
	r := gin.Default()

	// 2. 注册通用中间件
	r.Use(monitor.PrometheusMiddleware())

	// 3. 注册基础路由
	r.GET("/health", h.Account.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 4. 注册 API 路由组
	api := r.Group("/api/v1")
	{
		api.POST("/session_request", h.Session.Approve)
		api.POST("/session_request/reject", h.Session.Reject)

		api.GET("/account", h.Account.GetAccount)
		api.GET("/accounts/:accountId/balance", h.Balance.GetBalance)
		api.GET("/chains/:chainId", handler.GetChain)
	}

	return r
}
