package middleware

import (
	"polyscope/pkg/response"

	"github.com/gin-gonic/gin"
)

// 全局中间件，作为第一个Router加载
type GlobalMiddleware struct{}

func NewMiddleware() *GlobalMiddleware {
	return &GlobalMiddleware{}
}

func (m *GlobalMiddleware) Load(g *gin.Engine) {
	g.Use(RequestId(), Recovery, Logger, Metrics, NoCache(), Options(), Secure())
	g.NoRoute(response.NotFound)
}
