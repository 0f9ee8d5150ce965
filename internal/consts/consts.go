package consts

const (
	// RequestId 请求id名称
	RequestId = "request_id"
	// RequestIdHeader 透传给客户端的请求id
	RequestIdHeader = "X-Request-Id"
)

const (
	// 上游响应缓存的redis key前缀
	UpstreamCachePrefix = "polyscope:upstream:"

	TimeLayout   = "2006-01-02 15:04:05"
	TimeLayoutMs = "2006-01-02 15:04:05.000"
)
