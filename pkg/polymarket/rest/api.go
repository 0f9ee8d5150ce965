package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"polyscope/pkg/cache"
	"polyscope/pkg/logger"
	"polyscope/pkg/polymarket/types"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

const (
	// DefaultBaseURL Polymarket Data API
	DefaultBaseURL = "https://data-api.polymarket.com"
	// DefaultTimeout 单次上游请求的最长等待时间，超时按网络错误处理
	DefaultTimeout = 8000 * time.Millisecond
)

// UpstreamError 上游返回非2xx，或者网络错误/超时
type UpstreamError struct {
	Context    string // 例如 "Activity API error"
	StatusCode int    // 网络错误时为0
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: %d", e.Context, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Context, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// FetchOptions 单个接口的请求配置
type FetchOptions struct {
	Revalidate   int    // 响应缓存秒数，未开启缓存时无效
	ErrorContext string // 错误信息前缀
	Endpoint     string // 监控指标的endpoint标签
}

type PolymarketRestClient struct {
	url        string
	httpClient *http.Client
	timeout    time.Duration
	cache      cache.Store
}

type Option func(*PolymarketRestClient)

// WithTimeout 修改单次请求超时
func WithTimeout(d time.Duration) Option {
	return func(c *PolymarketRestClient) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient 自定义http client，测试时注入
func WithHTTPClient(hc *http.Client) Option {
	return func(c *PolymarketRestClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithCache 开启响应缓存
func WithCache(store cache.Store) Option {
	return func(c *PolymarketRestClient) {
		if store != nil {
			c.cache = store
		}
	}
}

func NewPolymarketRestClient(rawUrl string, opts ...Option) (*PolymarketRestClient, error) {
	parsedUrl, err := url.Parse(rawUrl)
	if err != nil || parsedUrl.Scheme == "" || parsedUrl.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", rawUrl)
	}
	if len(parsedUrl.Path) > 0 && parsedUrl.Path[len(parsedUrl.Path)-1:] == "/" {
		parsedUrl.Path = parsedUrl.Path[:len(parsedUrl.Path)-1]
	}

	c := &PolymarketRestClient{
		url:        parsedUrl.String(),
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		cache:      cache.Nop{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL 去掉末尾斜杠后的地址
func (rest *PolymarketRestClient) BaseURL() string {
	return rest.url
}

// FetchJSONArray 请求上游并解析成数组
// 非2xx和网络错误返回 *UpstreamError；返回合法JSON但不是数组时返回空数组
// 不做重试，由调用方决定是降级还是失败
func FetchJSONArray[T any](ctx context.Context, rest *PolymarketRestClient, rawUrl string, opts FetchOptions) ([]T, error) {
	start := time.Now()
	defer func() {
		upstreamDuration.WithLabelValues(opts.Endpoint).Observe(time.Since(start).Seconds())
	}()

	if body, ok := rest.cache.Get(ctx, rawUrl); ok {
		if items, err := decodeArray[T](body, opts); err == nil {
			upstreamRequests.WithLabelValues(opts.Endpoint, "cache_hit").Inc()
			return items, nil
		}
	}

	body, err := rest.get(ctx, rawUrl, opts)
	if err != nil {
		return nil, err
	}

	items, err := decodeArray[T](body, opts)
	if err != nil {
		upstreamRequests.WithLabelValues(opts.Endpoint, "decode_error").Inc()
		return nil, &UpstreamError{Context: opts.ErrorContext, Err: err}
	}
	upstreamRequests.WithLabelValues(opts.Endpoint, "ok").Inc()

	if opts.Revalidate > 0 {
		rest.cache.Set(ctx, rawUrl, body, time.Duration(opts.Revalidate)*time.Second)
	}
	return items, nil
}

func (rest *PolymarketRestClient) get(ctx context.Context, rawUrl string, opts FetchOptions) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, rest.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawUrl, nil)
	if err != nil {
		return nil, &UpstreamError{Context: opts.ErrorContext, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := rest.httpClient.Do(req)
	if err != nil {
		upstreamRequests.WithLabelValues(opts.Endpoint, "transport_error").Inc()
		return nil, &UpstreamError{Context: opts.ErrorContext, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// 读掉body以便连接复用
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		upstreamRequests.WithLabelValues(opts.Endpoint, "http_error").Inc()
		return nil, &UpstreamError{Context: opts.ErrorContext, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		upstreamRequests.WithLabelValues(opts.Endpoint, "transport_error").Inc()
		return nil, &UpstreamError{Context: opts.ErrorContext, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	return body, nil
}

// 合法JSON但不是数组时返回空数组；数组里不是对象或者解析失败的元素跳过
func decodeArray[T any](body []byte, opts FetchOptions) ([]T, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []T{}, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	items := make([]T, 0, len(elems))
	for i, elem := range elems {
		elem = bytes.TrimSpace(elem)
		if len(elem) == 0 || elem[0] != '{' {
			logger.Warnf("%s: skip non-object element at %d", opts.ErrorContext, i)
			continue
		}
		var item T
		if err := json.Unmarshal(elem, &item); err != nil {
			logger.Warnf("%s: skip malformed element at %d: %v", opts.ErrorContext, i, err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// LeaderboardQuery /v1/leaderboard 的查询参数，调用方负责校验
type LeaderboardQuery struct {
	Limit      int
	Offset     int
	TimePeriod string
	OrderBy    string
	Category   string
	UserName   string // 按用户名搜索
	User       string // 按钱包地址搜索
}

// Leaderboard 获取交易员排行榜
func (rest *PolymarketRestClient) Leaderboard(ctx context.Context, q LeaderboardQuery) (types.LeaderboardResponse, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(q.Limit))
	params.Set("offset", strconv.Itoa(q.Offset))
	params.Set("timePeriod", q.TimePeriod)
	params.Set("orderBy", q.OrderBy)
	params.Set("category", q.Category)
	if q.UserName != "" {
		params.Set("userName", q.UserName)
	}
	if q.User != "" {
		params.Set("user", q.User)
	}

	rows, err := FetchJSONArray[types.LeaderboardEntry](ctx, rest, rest.url+"/v1/leaderboard?"+params.Encode(), FetchOptions{
		Revalidate:   60,
		ErrorContext: "Leaderboard API error",
		Endpoint:     "leaderboard",
	})
	if err != nil {
		return types.LeaderboardResponse{}, err
	}

	// 上游直接返回数组，这里包一层
	return types.LeaderboardResponse{
		Data:  rows,
		Count: len(rows),
	}, nil
}

// Positions 获取钱包当前持仓
func (rest *PolymarketRestClient) Positions(ctx context.Context, address string) ([]types.Position, error) {
	return FetchJSONArray[types.Position](ctx, rest, rest.url+"/positions?user="+url.QueryEscape(address), FetchOptions{
		Revalidate:   30,
		ErrorContext: "Positions API error",
		Endpoint:     "positions",
	})
}

// Activity 获取钱包最近成交
func (rest *PolymarketRestClient) Activity(ctx context.Context, address string, limit int) ([]types.Activity, error) {
	rawUrl := fmt.Sprintf("%s/activity?user=%s&limit=%d", rest.url, url.QueryEscape(address), limit)
	return FetchJSONArray[types.Activity](ctx, rest, rawUrl, FetchOptions{
		Revalidate:   30,
		ErrorContext: "Activity API error",
		Endpoint:     "activity",
	})
}
