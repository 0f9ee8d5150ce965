package utils

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cast"
)

// 宽松的浮点数前缀，"12.5abc" 取 12.5，与前端 parseFloat 的行为一致
var floatPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// ToFiniteNumber 把上游不可信的数值字段转换成有限的float64
// 缺失、非数字、NaN、Inf 都返回 fallback（默认0），不会panic
func ToFiniteNumber(value interface{}, fallback ...float64) float64 {
	def := 0.0
	if len(fallback) > 0 {
		def = fallback[0]
	}

	var (
		f  float64
		ok bool
	)
	switch v := value.(type) {
	case nil:
		return def
	case string:
		f, ok = parseFloatPrefix(v)
	case bool:
		return def
	case fmt.Stringer:
		f, ok = parseFloatPrefix(v.String())
	default:
		n, err := cast.ToFloat64E(v)
		f, ok = n, err == nil
	}

	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

func parseFloatPrefix(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	m := floatPrefix.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// 超出范围时ParseFloat返回±Inf和ErrRange
		return 0, false
	}
	return f, true
}

// ToInt 解析整数前缀，失败返回0，与 parseInt(x, 10) || 0 一致
func ToInt(s string) int {
	n, _ := ParseInt(s)
	return n
}

// ParseInt 解析整数前缀，ok=false 表示没有数字前缀（对应 parseInt 返回 NaN）
// 超出int范围时按符号取最大/最小值
func ParseInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		if s[0] == '-' {
			return math.MinInt, true
		}
		return math.MaxInt, true
	}
	return n, true
}

// Finite 计算结果溢出成NaN或Inf时返回fallback（默认0）
func Finite(f float64, fallback ...float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if len(fallback) > 0 {
			return fallback[0]
		}
		return 0
	}
	return f
}
