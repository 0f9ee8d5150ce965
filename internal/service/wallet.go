package service

import (
	"context"
	"polyscope/internal/analytics"
	"polyscope/internal/model"
	"polyscope/pkg/errors"
	"polyscope/pkg/errors/ecode"
	"polyscope/pkg/logger"
	"polyscope/pkg/polymarket/types"
	"regexp"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	positionsWarning = "Positions are temporarily unavailable due to upstream API issues."
	activityWarning  = "Recent activity is temporarily unavailable due to upstream API issues."

	msgInvalidAddress      = "Invalid wallet address"
	msgUpstreamUnavailable = "Polymarket data is temporarily unavailable. Please try again shortly."
	msgWalletFailed        = "Failed to fetch wallet data"
	msgCompareInvalid      = "Please enter two valid wallet addresses"
	msgCompareSame         = "Please enter two different addresses"
)

var addressRegexp = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// ValidateAddress 0x开头的40位十六进制地址
func ValidateAddress(address string) error {
	if !addressRegexp.MatchString(address) {
		return errors.WithCode(ecode.ValidateErr, msgInvalidAddress)
	}
	return nil
}

// DataClient 上游Data API，*rest.PolymarketRestClient 实现了该接口
type DataClient interface {
	Leaderboard(ctx context.Context, q LeaderboardQuery) (types.LeaderboardResponse, error)
	Positions(ctx context.Context, address string) ([]types.Position, error)
	Activity(ctx context.Context, address string, limit int) ([]types.Activity, error)
}

type WalletService struct {
	client        DataClient
	activityLimit int
}

func NewWalletService(client DataClient, activityLimit int) *WalletService {
	if activityLimit <= 0 {
		activityLimit = 20
	}
	return &WalletService{client: client, activityLimit: activityLimit}
}

// WalletGet 查询钱包持仓、最近成交和统计
// 持仓和成交并发请求，其中一个失败时返回另一个的数据并附带warning，都失败时返回502
func (s *WalletService) WalletGet(ctx context.Context, address string) (*model.WalletData, error) {
	if err := ValidateAddress(address); err != nil {
		return nil, err
	}

	var (
		rawPositions []types.Position
		rawActivity  []types.Activity
		posErr       error
		actErr       error
	)
	// 两个请求互不影响，goroutine里只记录错误不返回，避免一个失败取消另一个
	var g errgroup.Group
	g.Go(func() error {
		rawPositions, posErr = s.client.Positions(ctx, address)
		return nil
	})
	g.Go(func() error {
		rawActivity, actErr = s.client.Activity(ctx, address, s.activityLimit)
		return nil
	})
	_ = g.Wait()

	if posErr != nil && actErr != nil {
		err := multierr.Combine(posErr, actErr)
		logger.Error("wallet upstream unavailable", logger.Pair("address", address), zap.Error(err))
		return nil, errors.Wrap(err, ecode.UpstreamErr, msgUpstreamUnavailable)
	}

	var warnings []string
	if posErr != nil {
		logger.Warn("positions fetch failed", logger.Pair("address", address), zap.Error(posErr))
		rawPositions = nil
		warnings = append(warnings, positionsWarning)
	}
	if actErr != nil {
		logger.Warn("activity fetch failed", logger.Pair("address", address), zap.Error(actErr))
		rawActivity = nil
		warnings = append(warnings, activityWarning)
	}

	positions := analytics.NormalizePositions(rawPositions)
	activity := analytics.NormalizeActivity(rawActivity)

	return &model.WalletData{
		Address:   address,
		Stats:     analytics.CalculateWalletStats(positions, activity),
		Positions: positions,
		Activity:  activity,
		Warnings:  warnings,
	}, nil
}

// Compare 两个钱包并发查询，单边失败只影响自己的结果
func (s *WalletService) Compare(ctx context.Context, req model.CompareReq) (*model.CompareRes, error) {
	a, b := strings.TrimSpace(req.A), strings.TrimSpace(req.B)
	if ValidateAddress(a) != nil || ValidateAddress(b) != nil {
		return nil, errors.WithCode(ecode.ValidateErr, msgCompareInvalid)
	}
	if strings.EqualFold(a, b) {
		return nil, errors.WithCode(ecode.ValidateErr, msgCompareSame)
	}

	var (
		res        model.CompareRes
		errA, errB error
	)
	var g errgroup.Group
	g.Go(func() error {
		res.A, errA = s.compareSlot(ctx, a)
		return nil
	})
	g.Go(func() error {
		res.B, errB = s.compareSlot(ctx, b)
		return nil
	})
	_ = g.Wait()

	if errA != nil && errB != nil {
		return nil, errors.Wrap(multierr.Append(errA, errB), ecode.UpstreamErr, msgWalletFailed)
	}
	return &res, nil
}

func (s *WalletService) compareSlot(ctx context.Context, address string) (model.CompareSlot, error) {
	data, err := s.WalletGet(ctx, address)
	if err != nil {
		_, msg := errors.DecodeErr(err)
		if errors.Code(err) == ecode.Unknown {
			msg = msgWalletFailed
		}
		return model.CompareSlot{Error: msg}, err
	}
	return model.CompareSlot{Success: true, Data: data}, nil
}
