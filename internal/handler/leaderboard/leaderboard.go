package leaderboard

import (
	"polyscope/internal/model"
	"polyscope/internal/service"
	"polyscope/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *service.LeaderboardService
}

func NewHandler(service *service.LeaderboardService) *Handler {
	return &Handler{
		service: service,
	}
}

// LeaderboardGet 交易员排行榜，查询参数非法时使用默认值
func (h *Handler) LeaderboardGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.LeaderboardReq
		// 全部是字符串字段，绑定不会失败
		_ = ctx.ShouldBindQuery(&req)

		res, err := h.service.LeaderboardGet(ctx.Request.Context(), req)
		if err != nil {
			response.JSON(ctx, err, nil)
			return
		}
		response.JSONList(ctx, nil, res.List, res.Total, res.Meta)
	}
}
