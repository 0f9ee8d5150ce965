package response

import (
	"net/http"
	"polyscope/internal/consts"
	"polyscope/pkg/errors"
	"polyscope/pkg/errors/ecode"

	"github.com/gin-gonic/gin"
)

// 响应给客户端的统一结构
// 成功时 success=true 且带data，失败时只有error，不返回任何部分数据
type ApiResponse struct {
	RequestId string      `json:"request_id"`      // 请求的唯一ID
	Success   bool        `json:"success"`         // 是否成功
	Code      int         `json:"code"`            // 错误码 0表示无错误
	Data      interface{} `json:"data,omitempty"`  // 响应数据
	Error     string      `json:"error,omitempty"` // 失败时的提示信息
	Total     *int        `json:"total,omitempty"` // 列表接口的总数
	Meta      interface{} `json:"meta,omitempty"`  // 列表接口实际生效的查询参数
}

// JSON 发送json格式数据，http状态码由错误码决定
func JSON(c *gin.Context, err error, data interface{}) {
	c.JSON(build(c, err, data))
}

// JSONList 列表接口，额外带上total和meta
func JSONList(c *gin.Context, err error, data interface{}, total int, meta interface{}) {
	status, res := build(c, err, data)
	if res.Success {
		res.Total = &total
		res.Meta = meta
	}
	c.JSON(status, res)
}

func build(c *gin.Context, err error, data interface{}) (int, ApiResponse) {
	code, message := errors.DecodeErr(err)
	res := ApiResponse{
		RequestId: c.GetString(consts.RequestId),
		Code:      code,
	}
	if code == ecode.Success {
		res.Success = true
		res.Data = data
	} else {
		res.Error = message
	}
	return ecode.HttpStatus(code), res
}

// 请求频繁，返回429
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ApiResponse{
		RequestId: c.GetString(consts.RequestId),
		Code:      ecode.TooManyReqs,
		Error:     "The request is too frequent. Please try again later.",
	})
}

// 未处理的异常，返回500，不暴露内部信息
func InternalError(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ApiResponse{
		RequestId: c.GetString(consts.RequestId),
		Code:      ecode.Unknown,
		Error:     "Internal server error",
	})
}

// 路由不存在，返回404
func NotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, ApiResponse{
		RequestId: c.GetString(consts.RequestId),
		Code:      ecode.NotFoundErr,
		Error:     "Not found",
	})
}
