package model

import "strings"

// 排行榜时间范围
type TimePeriod string

const (
	TimePeriodDay   TimePeriod = "DAY"
	TimePeriodWeek  TimePeriod = "WEEK"
	TimePeriodMonth TimePeriod = "MONTH"
	TimePeriodAll   TimePeriod = "ALL"
)

// 排序方式，PNL按收益，VOL按成交量
type OrderBy string

const (
	OrderByPnl OrderBy = "PNL"
	OrderByVol OrderBy = "VOL"
)

// 市场分类
type Category string

const (
	CategoryOverall  Category = "OVERALL"
	CategoryPolitics Category = "POLITICS"
	CategorySports   Category = "SPORTS"
	CategoryCrypto   Category = "CRYPTO"
	CategoryCulture  Category = "CULTURE"
)

// ParseTimePeriod 不认识的值一律按 ALL
func ParseTimePeriod(s string) TimePeriod {
	switch p := TimePeriod(strings.ToUpper(strings.TrimSpace(s))); p {
	case TimePeriodDay, TimePeriodWeek, TimePeriodMonth, TimePeriodAll:
		return p
	}
	return TimePeriodAll
}

// ParseOrderBy 不认识的值一律按 VOL
func ParseOrderBy(s string) OrderBy {
	switch o := OrderBy(strings.ToUpper(strings.TrimSpace(s))); o {
	case OrderByPnl, OrderByVol:
		return o
	}
	return OrderByVol
}

// ParseCategory 不认识的值一律按 OVERALL
func ParseCategory(s string) Category {
	switch c := Category(strings.ToUpper(strings.TrimSpace(s))); c {
	case CategoryOverall, CategoryPolitics, CategorySports, CategoryCrypto, CategoryCulture:
		return c
	}
	return CategoryOverall
}

// 排行榜查询参数，全部按字符串接收，非法值在service里回退默认值
type LeaderboardReq struct {
	Limit      string `form:"limit"`
	Offset     string `form:"offset"`
	TimePeriod string `form:"timePeriod"`
	OrderBy    string `form:"orderBy"`
	Category   string `form:"category"`
	UserName   string `form:"userName"`
	User       string `form:"user"`
}

// 百分位档位
const (
	PercentileTop1    = "TOP 1%"
	PercentileTop1000 = "TOP 1000"
	PercentileTop10   = "TOP 10%"
	PercentileAll     = "ALL"
)

// 排行榜单行，给前端直接展示
type RankedTraderEntry struct {
	Rank         int     `json:"rank"`
	Username     string  `json:"username"`
	Address      string  `json:"address"`     // 截断后的地址 0x1234...abcd
	FullAddress  string  `json:"fullAddress"` // 没有时为空串
	Rewards      float64 `json:"rewards"`     // 和volume相同，前端沿用的字段
	Percentile   string  `json:"percentile"`
	Volume       float64 `json:"volume"`
	Pnl          float64 `json:"pnl"`
	ProfileImage string  `json:"profileImage,omitempty"`
}

type LeaderboardMeta struct {
	Limit      int        `json:"limit"`
	Offset     int        `json:"offset"`
	TimePeriod TimePeriod `json:"timePeriod"`
	OrderBy    OrderBy    `json:"orderBy"`
	Category   Category   `json:"category"`
	UserName   string     `json:"userName,omitempty"`
	User       string     `json:"user,omitempty"`
}

type LeaderboardRes struct {
	List  []RankedTraderEntry
	Total int
	Meta  LeaderboardMeta
}
