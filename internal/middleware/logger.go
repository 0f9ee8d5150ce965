package middleware

import (
	"net/http/httputil"
	"polyscope/internal/consts"
	"polyscope/pkg/logger"
	"polyscope/pkg/response"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Logger 访问日志
func Logger(c *gin.Context) {
	// 请求前
	t := time.Now()
	reqPath := c.Request.URL.Path
	reqId := c.GetString(consts.RequestId)
	method := c.Request.Method
	ip := c.ClientIP()

	logger.Info("[Request Start]",
		logger.Pair(consts.RequestId, reqId),
		logger.Pair("host", ip),
		logger.Pair("path", reqPath),
		logger.Pair("query", c.Request.URL.RawQuery),
		logger.Pair("method", method))

	c.Next()
	// 请求后
	latency := time.Since(t)
	logger.Info("[Request End]",
		logger.Pair(consts.RequestId, reqId),
		logger.Pair("host", ip),
		logger.Pair("path", reqPath),
		logger.Pair("status", c.Writer.Status()),
		logger.Pair("cost", latency))
}

// Recovery 捕获handler里的panic，返回统一的500结构
func Recovery(c *gin.Context) {
	defer func() {
		if r := recover(); r != nil {
			dump, _ := httputil.DumpRequest(c.Request, false)
			logger.Error("[Recovery]",
				logger.Pair(consts.RequestId, c.GetString(consts.RequestId)),
				zap.Any("panic", r),
				logger.Pair("request", string(dump)),
				logger.Pair("stack", string(debug.Stack())))
			response.InternalError(c)
		}
	}()
	c.Next()
}
