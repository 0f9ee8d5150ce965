package analytics

import (
	"polyscope/internal/model"
	"polyscope/pkg/polymarket/types"
	"polyscope/pkg/utils"
)

// 百分位阈值，按平台公开的交易员总数估算的固定值
const (
	top1PercentRank  = 646
	top1000Rank      = 1000
	top10PercentRank = 6457
)

// Percentile 根据排名计算档位
func Percentile(rank int) string {
	switch {
	case rank <= top1PercentRank:
		return model.PercentileTop1
	case rank <= top1000Rank:
		return model.PercentileTop1000
	case rank <= top10PercentRank:
		return model.PercentileTop10
	}
	return model.PercentileAll
}

// TransformLeaderboard 上游排行数据转换成展示用结构，保持上游顺序
func TransformLeaderboard(resp types.LeaderboardResponse) []model.RankedTraderEntry {
	list := make([]model.RankedTraderEntry, 0, len(resp.Data))
	for _, entry := range resp.Data {
		list = append(list, transformEntry(entry))
	}
	return list
}

func transformEntry(entry types.LeaderboardEntry) model.RankedTraderEntry {
	rank := utils.ToInt(entry.Rank.String())
	if rank < 0 {
		rank = 0
	}
	volume := utils.ToFiniteNumber(entry.Vol)
	wallet := string(entry.ProxyWallet)

	username := string(entry.UserName)
	if username == "" {
		prefix := "Unknown"
		if wallet != "" {
			prefix = wallet
			if len(prefix) > 6 {
				prefix = prefix[:6]
			}
		}
		username = "User " + prefix
	}

	address := "Unknown"
	if wallet != "" {
		address = utils.TruncateAddress(wallet)
	}

	return model.RankedTraderEntry{
		Rank:         rank,
		Username:     username,
		Address:      address,
		FullAddress:  wallet,
		Rewards:      volume,
		Percentile:   Percentile(rank),
		Volume:       volume,
		Pnl:          utils.ToFiniteNumber(entry.Pnl),
		ProfileImage: string(entry.ProfileImage),
	}
}
