package analytics

import (
	"polyscope/internal/model"
	"polyscope/pkg/utils"
)

// CalculateWalletStats 按输入顺序累加，所有除法在分母为0时返回0
func CalculateWalletStats(positions []model.WalletPosition, activity []model.WalletActivity) model.WalletStats {
	var totalValue, totalPnl, totalCost float64
	wins := 0
	for _, p := range positions {
		totalValue += p.Value
		totalPnl += p.Pnl
		totalCost += p.Shares * p.AvgPrice
		if p.Pnl > 0 {
			wins++
		}
	}
	totalValue = utils.Finite(totalValue)
	totalPnl = utils.Finite(totalPnl)
	totalCost = utils.Finite(totalCost)

	stats := model.WalletStats{
		TotalValue:     totalValue,
		TotalPnl:       totalPnl,
		PositionsCount: len(positions),
		TradesCount:    len(activity),
	}
	if totalCost > 0 {
		stats.TotalPnlPercent = utils.Finite(totalPnl / totalCost * 100)
	}
	if len(positions) > 0 {
		stats.WinRate = float64(wins) / float64(len(positions)) * 100
	}
	return stats
}
