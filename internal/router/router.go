package router

import (
	"polyscope/internal/handler/leaderboard"
	"polyscope/internal/handler/ping"
	"polyscope/internal/handler/wallet"
	"polyscope/internal/middleware"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ThrottleOption 为nil时不做防抖
type ThrottleOption struct {
	Window time.Duration
	Size   int
}

type ApiRouter struct {
	leaderboardHandler *leaderboard.Handler
	walletHandler      *wallet.Handler
	throttle           *ThrottleOption
}

func NewApiRouter(lh *leaderboard.Handler, wh *wallet.Handler, throttle *ThrottleOption) *ApiRouter {
	return &ApiRouter{leaderboardHandler: lh, walletHandler: wh, throttle: throttle}
}

func (api *ApiRouter) Load(g *gin.Engine) {
	g.GET("/ping", ping.Ping())
	g.GET("/metrics", gin.WrapH(promhttp.Handler()))

	base := g.Group("/api")
	if api.throttle != nil {
		base.Use(middleware.AntiDuplicateMiddleware(api.throttle.Window, api.throttle.Size))
	}
	{
		// 交易员排行榜
		base.GET("/leaderboard", api.leaderboardHandler.LeaderboardGet())
		// 钱包持仓、成交和统计
		base.GET("/wallet/:address", api.walletHandler.WalletGet())
		// 两个钱包对比
		base.GET("/compare", api.walletHandler.WalletCompare())
	}
}
