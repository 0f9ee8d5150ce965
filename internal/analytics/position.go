package analytics

import (
	"polyscope/internal/model"
	"polyscope/pkg/polymarket/types"
	"polyscope/pkg/utils"
)

const unknownMarket = "Unknown Market"

// NormalizePositions 过滤掉数量<=0的持仓，计算市值和盈亏
func NormalizePositions(rows []types.Position) []model.WalletPosition {
	positions := make([]model.WalletPosition, 0, len(rows))
	for _, p := range rows {
		shares := utils.ToFiniteNumber(p.Size)
		if shares <= 0 {
			continue
		}
		avgPrice := utils.ToFiniteNumber(p.AvgPrice)
		currentPrice := utils.ToFiniteNumber(p.CurPrice)
		outcomeIndex := int(utils.ToFiniteNumber(p.OutcomeIndex))

		// 上游数值极大时乘积会溢出，派生值统一回落到0
		value := utils.Finite(shares * currentPrice)
		cost := utils.Finite(shares * avgPrice)
		pnl := utils.Finite(value - cost)
		pnlPercent := 0.0
		if cost > 0 {
			pnlPercent = utils.Finite(pnl / cost * 100)
		}

		outcome := string(p.Outcome)
		if outcome == "" {
			if outcomeIndex == 0 {
				outcome = "Yes"
			} else {
				outcome = "No"
			}
		}

		positions = append(positions, model.WalletPosition{
			Asset:        string(p.Asset),
			ConditionID:  string(p.ConditionID),
			Market:       marketTitle(p.Title, p.Market),
			MarketSlug:   string(p.Slug),
			Outcome:      outcome,
			OutcomeIndex: outcomeIndex,
			Shares:       shares,
			AvgPrice:     avgPrice,
			CurrentPrice: currentPrice,
			Value:        value,
			Pnl:          pnl,
			PnlPercent:   pnlPercent,
		})
	}
	return positions
}

// 标题 -> market字段 -> Unknown Market
func marketTitle(title, market types.Text) string {
	if title != "" {
		return string(title)
	}
	if market != "" {
		return string(market)
	}
	return unknownMarket
}
