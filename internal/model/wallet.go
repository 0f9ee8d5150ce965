package model

// 成交方向
const (
	TradeBuy  = "BUY"
	TradeSell = "SELL"
)

// 钱包当前持仓
type WalletPosition struct {
	Asset        string  `json:"asset"`
	ConditionID  string  `json:"conditionId"`
	Market       string  `json:"market"`
	MarketSlug   string  `json:"marketSlug"`
	Outcome      string  `json:"outcome"`
	OutcomeIndex int     `json:"outcomeIndex"`
	Shares       float64 `json:"shares"`
	AvgPrice     float64 `json:"avgPrice"`
	CurrentPrice float64 `json:"currentPrice"`
	Value        float64 `json:"value"`      // shares * currentPrice
	Pnl          float64 `json:"pnl"`        // value - shares * avgPrice
	PnlPercent   float64 `json:"pnlPercent"` // 成本为0时为0
}

// 钱包成交记录
type WalletActivity struct {
	ID         string  `json:"id"`
	Type       string  `json:"type"` // BUY / SELL
	Market     string  `json:"market"`
	MarketSlug string  `json:"marketSlug"`
	Outcome    string  `json:"outcome"`
	Shares     float64 `json:"shares"`
	Price      float64 `json:"price"`
	Total      float64 `json:"total"`
	Timestamp  string  `json:"timestamp"`
}

type WalletStats struct {
	TotalValue      float64 `json:"totalValue"`
	TotalPnl        float64 `json:"totalPnl"`
	TotalPnlPercent float64 `json:"totalPnlPercent"`
	PositionsCount  int     `json:"positionsCount"`
	WinRate         float64 `json:"winRate"`
	TradesCount     int     `json:"tradesCount"`
}

type WalletData struct {
	Address   string           `json:"address"`
	Stats     WalletStats      `json:"stats"`
	Positions []WalletPosition `json:"positions"`
	Activity  []WalletActivity `json:"activity"`
	// 只有一个上游接口失败时才有
	Warnings []string `json:"warnings,omitempty"`
}

// 钱包对比
type CompareReq struct {
	A string `form:"a" json:"a" label:"wallet a" validate:"required"`
	B string `form:"b" json:"b" label:"wallet b" validate:"required"`
}

type CompareSlot struct {
	Success bool        `json:"success"`
	Data    *WalletData `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type CompareRes struct {
	A CompareSlot `json:"a"`
	B CompareSlot `json:"b"`
}
