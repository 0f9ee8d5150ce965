package types

// LeaderboardEntry /v1/leaderboard 返回的单行数据，任何字段都可能缺失或者非法
type LeaderboardEntry struct {
	Rank          Value `json:"rank"`
	ProxyWallet   Text  `json:"proxyWallet"`
	UserName      Text  `json:"userName"`
	XUsername     Text  `json:"xUsername"`
	VerifiedBadge Value `json:"verifiedBadge"`
	Vol           Value `json:"vol"`
	Pnl           Value `json:"pnl"`
	ProfileImage  Text  `json:"profileImage"`
}

// LeaderboardResponse 上游直接返回数组，这里包一层带上数量
type LeaderboardResponse struct {
	Data  []LeaderboardEntry `json:"data"`
	Count int                `json:"count"`
}

// Position /positions 返回的持仓
type Position struct {
	ProxyWallet  Text  `json:"proxyWallet"`
	Asset        Text  `json:"asset"`
	ConditionID  Text  `json:"conditionId"`
	Size         Value `json:"size"`
	AvgPrice     Value `json:"avgPrice"`
	Market       Text  `json:"market"`
	Outcome      Text  `json:"outcome"`
	OutcomeIndex Value `json:"outcomeIndex"`
	CurPrice     Value `json:"curPrice"`
	CashBalance  Value `json:"cashBalance"`
	Title        Text  `json:"title"`
	Slug         Text  `json:"slug"`
}

// Activity /activity 返回的成交记录
type Activity struct {
	ID              Text  `json:"id"`
	ProxyWallet     Text  `json:"proxyWallet"`
	Type            Text  `json:"type"`
	ConditionID     Text  `json:"conditionId"`
	Asset           Text  `json:"asset"`
	Size            Value `json:"size"`
	Price           Value `json:"price"`
	Timestamp       Value `json:"timestamp"`
	Market          Text  `json:"market"`
	Outcome         Text  `json:"outcome"`
	Title           Text  `json:"title"`
	Slug            Text  `json:"slug"`
	TransactionHash Text  `json:"transactionHash"`
}
