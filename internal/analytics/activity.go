package analytics

import (
	"polyscope/internal/model"
	"polyscope/pkg/polymarket/types"
	"polyscope/pkg/utils"
	"strings"
	"time"

	"github.com/google/uuid"
)

// 与前端 Date.toISOString 相同的格式
const isoLayout = "2006-01-02T15:04:05.000Z"

// NormalizeActivity 成交记录全部保留，不做过滤
func NormalizeActivity(rows []types.Activity) []model.WalletActivity {
	return normalizeActivity(rows, time.Now(), uuid.NewString)
}

func normalizeActivity(rows []types.Activity, now time.Time, newID func() string) []model.WalletActivity {
	list := make([]model.WalletActivity, 0, len(rows))
	for _, a := range rows {
		shares := utils.ToFiniteNumber(a.Size)
		price := utils.ToFiniteNumber(a.Price)

		id := string(a.ID)
		if id == "" {
			id = string(a.TransactionHash)
		}
		if id == "" {
			// 没有id和交易哈希时每次请求生成的id都不同
			id = newID()
		}

		tradeType := model.TradeBuy
		if strings.EqualFold(string(a.Type), model.TradeSell) {
			tradeType = model.TradeSell
		}

		outcome := string(a.Outcome)
		if outcome == "" {
			outcome = "Yes"
		}

		list = append(list, model.WalletActivity{
			ID:         id,
			Type:       tradeType,
			Market:     marketTitle(a.Title, a.Market),
			MarketSlug: string(a.Slug),
			Outcome:    outcome,
			Shares:     shares,
			Price:      price,
			Total:      utils.Finite(shares * price),
			Timestamp:  activityTimestamp(a.Timestamp, now),
		})
	}
	return list
}

// 上游一般返回unix秒，统一转成ISO格式；无法解析的原样返回，缺失时用当前时间
func activityTimestamp(v types.Value, now time.Time) string {
	if v.IsEmpty() {
		return now.UTC().Format(isoLayout)
	}
	if t, ok := utils.ParseTimestamp(v.String()); ok {
		return t.UTC().Format(isoLayout)
	}
	return v.String()
}
