package ecode

import "net/http"

// 业务错误码，0表示成功
const (
	Success     = 0
	Unknown     = 10000
	ValidateErr = 10001
	UpstreamErr = 10002
	NotFoundErr = 10004
	TooManyReqs = 10029
)

var httpStatus = map[int]int{
	Success:     http.StatusOK,
	Unknown:     http.StatusInternalServerError,
	ValidateErr: http.StatusBadRequest,
	UpstreamErr: http.StatusBadGateway,
	NotFoundErr: http.StatusNotFound,
	TooManyReqs: http.StatusTooManyRequests,
}

// HttpStatus 错误码对应的http状态码，未登记的一律按500处理
func HttpStatus(code int) int {
	if s, ok := httpStatus[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}
