package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const UnknownTime = "Unknown time"

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp 解析ISO时间或者unix秒/毫秒时间戳
func ParseTimestamp(ts string) (time.Time, bool) {
	ts = strings.TrimSpace(ts)
	if ts == "" {
		return time.Time{}, false
	}

	if n, err := strconv.ParseInt(ts, 10, 64); err == nil {
		if n <= 0 {
			return time.Time{}, false
		}
		// 12位以上按毫秒处理
		if n >= 1e11 {
			return time.UnixMilli(n), true
		}
		return time.Unix(n, 0), true
	}

	for _, layout := range timeLayouts {
		var (
			t   time.Time
			err error
		)
		// 只有日期时按UTC，带时间但没有时区的按本地时间
		if layout == "2006-01-02" || strings.Contains(layout, "07") {
			t, err = time.Parse(layout, ts)
		} else {
			t, err = time.ParseInLocation(layout, ts, time.Local)
		}
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatRelativeTime 相对时间，例如 "3h ago"
func FormatRelativeTime(ts string) string {
	return FormatRelativeTimeAt(ts, time.Now())
}

func FormatRelativeTimeAt(ts string, now time.Time) string {
	t, ok := ParseTimestamp(ts)
	if !ok {
		return UnknownTime
	}

	diff := now.Sub(t)
	if diff < 0 {
		return "Just now"
	}

	mins := int64(diff / time.Minute)
	hours := mins / 60
	days := hours / 24

	switch {
	case days > 0:
		return fmt.Sprintf("%dd ago", days)
	case hours > 0:
		return fmt.Sprintf("%dh ago", hours)
	case mins > 0:
		return fmt.Sprintf("%dm ago", mins)
	}
	return "Just now"
}

var (
	million  = decimal.NewFromInt(1_000_000)
	thousand = decimal.NewFromInt(1_000)
)

// FormatCurrency 金额展示: $1.50M / $2.5K / $42.50
func FormatCurrency(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	d := decimal.NewFromFloat(value)
	switch {
	case value >= 1_000_000:
		return "$" + d.Div(million).StringFixed(2) + "M"
	case value >= 1_000:
		return "$" + d.Div(thousand).StringFixed(1) + "K"
	}
	return "$" + d.StringFixed(2)
}

// TruncateAddress 0x1234...abcd
func TruncateAddress(address string) string {
	if address == "" {
		return ""
	}
	head := address
	if len(head) > 6 {
		head = head[:6]
	}
	tail := address
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return head + "..." + tail
}
