package middleware

import (
	"net/http"
	"polyscope/internal/consts"
	"polyscope/pkg/response"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru"
)

// NoCache 控制客户端不要使用缓存
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, max-age=0, must-revalidate")
		c.Header("Expires", "Thu, 01 Jan 1970 00:00:00 GMT")
		c.Header("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
		c.Next()
	}
}

// Options 处理跨域预检请求
func Options() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.ToUpper(c.Request.Method) != http.MethodOptions {
			c.Next()
			return
		}
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET,OPTIONS")
		c.Header("Access-Control-Allow-Headers", "origin, content-type, accept")
		c.Header("Allow", "HEAD,GET,OPTIONS")
		c.Header("Content-Type", "application/json")
		c.AbortWithStatus(http.StatusOK)
	}
}

// Secure 添加安全控制和资源访问
func Secure() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-XSS-Protection", "1; mode=block")
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000")
		}
		c.Next()
	}
}

var (
	nodeOnce sync.Once
	node     *snowflake.Node
)

func nextRequestId() string {
	nodeOnce.Do(func() {
		// 单实例部署，固定节点号
		node, _ = snowflake.NewNode(1)
	})
	return node.Generate().String()
}

// RequestId 用来设置和透传requestId，客户端带了就沿用
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(consts.RequestIdHeader)
		if requestId == "" {
			requestId = nextRequestId()
		}
		c.Header(consts.RequestIdHeader, requestId)

		// 设置requestId到context中，便于后面调用链的透传
		c.Set(consts.RequestId, requestId)
		c.Next()
	}
}

// AntiDuplicateMiddleware 防止单个客户端ip在window内重复请求同一路径
// 使用ip+路径作为key，golang-lru 本身并发安全，最多记录size个key
func AntiDuplicateMiddleware(window time.Duration, size int) gin.HandlerFunc {
	reqCache, err := lru.New(size)
	if err != nil {
		reqCache, _ = lru.New(500)
	}
	return func(c *gin.Context) {
		key := c.ClientIP() + c.Request.URL.Path
		if value, ok := reqCache.Get(key); ok {
			if time.Since(value.(time.Time)) < window {
				response.TooManyRequests(c)
				return
			}
		}
		// Hit 或 Miss 都会更新时间戳
		reqCache.Add(key, time.Now())
		c.Next()
	}
}
