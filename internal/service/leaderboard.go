package service

import (
	"context"
	"polyscope/internal/analytics"
	"polyscope/internal/model"
	"polyscope/pkg/errors"
	"polyscope/pkg/errors/ecode"
	"polyscope/pkg/logger"
	"polyscope/pkg/polymarket/rest"
	"polyscope/pkg/utils"

	"go.uber.org/zap"
)

const (
	defaultLeaderboardLimit = 25
	maxLeaderboardLimit     = 100

	msgLeaderboardFailed = "Failed to fetch leaderboard data"
)

// LeaderboardQuery 上游查询参数
type LeaderboardQuery = rest.LeaderboardQuery

type LeaderboardService struct {
	client DataClient
}

func NewLeaderboardService(client DataClient) *LeaderboardService {
	return &LeaderboardService{client: client}
}

// 缺失和没有数字前缀的值按默认值，其余限制在[1,100]
func clampLimit(raw string) int {
	limit, ok := utils.ParseInt(raw)
	if !ok {
		return defaultLeaderboardLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}
	return limit
}

func clampOffset(raw string) int {
	offset := utils.ToInt(raw)
	if offset < 0 {
		offset = 0
	}
	return offset
}

// LeaderboardGet 查询排行榜，非法参数回退默认值，不报错
func (s *LeaderboardService) LeaderboardGet(ctx context.Context, req model.LeaderboardReq) (*model.LeaderboardRes, error) {
	meta := model.LeaderboardMeta{
		Limit:      clampLimit(req.Limit),
		Offset:     clampOffset(req.Offset),
		TimePeriod: model.ParseTimePeriod(req.TimePeriod),
		OrderBy:    model.ParseOrderBy(req.OrderBy),
		Category:   model.ParseCategory(req.Category),
		UserName:   req.UserName,
		User:       req.User,
	}

	resp, err := s.client.Leaderboard(ctx, LeaderboardQuery{
		Limit:      meta.Limit,
		Offset:     meta.Offset,
		TimePeriod: string(meta.TimePeriod),
		OrderBy:    string(meta.OrderBy),
		Category:   string(meta.Category),
		UserName:   meta.UserName,
		User:       meta.User,
	})
	if err != nil {
		logger.Error("leaderboard fetch failed", zap.Error(err))
		return nil, errors.Wrap(err, ecode.Unknown, msgLeaderboardFailed)
	}

	return &model.LeaderboardRes{
		List:  analytics.TransformLeaderboard(resp),
		Total: resp.Count,
		Meta:  meta,
	}, nil
}
