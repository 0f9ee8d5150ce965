package wallet

import (
	"polyscope/internal/model"
	"polyscope/internal/service"
	"polyscope/pkg/errors"
	"polyscope/pkg/errors/ecode"
	"polyscope/pkg/logger"
	"polyscope/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const msgWalletFailed = "Failed to fetch wallet data"

type Handler struct {
	service *service.WalletService
}

func NewHandler(service *service.WalletService) *Handler {
	return &Handler{
		service: service,
	}
}

// WalletGet 钱包详情
func (h *Handler) WalletGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		data, err := h.service.WalletGet(ctx.Request.Context(), ctx.Param("address"))
		if err != nil {
			response.JSON(ctx, unexpected(err), nil)
			return
		}
		response.JSON(ctx, nil, data)
	}
}

// WalletCompare 两个钱包对比
func (h *Handler) WalletCompare() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req model.CompareReq
		if err := ctx.ShouldBindQuery(&req); err != nil {
			logger.Debug("compare bind failed", zap.Error(err))
			response.JSON(ctx, errors.WithCode(ecode.ValidateErr, "Please enter two valid wallet addresses"), nil)
			return
		}
		res, err := h.service.Compare(ctx.Request.Context(), req)
		if err != nil {
			response.JSON(ctx, unexpected(err), nil)
			return
		}
		response.JSON(ctx, nil, res)
	}
}

// 非业务错误统一返回500，原始错误只记日志
func unexpected(err error) error {
	if errors.Code(err) != ecode.Unknown {
		return err
	}
	logger.Error("wallet request failed", zap.Error(err))
	return errors.Wrap(err, ecode.Unknown, msgWalletFailed)
}
