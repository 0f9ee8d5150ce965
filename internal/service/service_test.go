package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"polyscope/internal/model"
	"polyscope/pkg/errors"
	"polyscope/pkg/errors/ecode"
	"polyscope/pkg/polymarket/rest"
	"strings"
	"sync/atomic"
	"testing"
)

const (
	walletA = "0x56687bf447db6ffa42ffe2204a05edaa20f55839"
	walletB = "0x1f2dd6d473f3e824cd2f8a89d9c69fb96f6ad0cf"
)

type fakeUpstream struct {
	positions   func(w http.ResponseWriter, r *http.Request)
	activity    func(w http.ResponseWriter, r *http.Request)
	leaderboard func(w http.ResponseWriter, r *http.Request)
	calls       int32
}

func (f *fakeUpstream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt32(&f.calls, 1)
	var h func(w http.ResponseWriter, r *http.Request)
	switch r.URL.Path {
	case "/positions":
		h = f.positions
	case "/activity":
		h = f.activity
	case "/v1/leaderboard":
		h = f.leaderboard
	}
	if h == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	h(w, r)
}

func body(s string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(s))
	}
}

func status(code int) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
	}
}

func newClient(t *testing.T, up *fakeUpstream) *rest.PolymarketRestClient {
	t.Helper()
	srv := httptest.NewServer(up)
	t.Cleanup(srv.Close)
	c, err := rest.NewPolymarketRestClient(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

const positionsBody = `[{"size":"10","avgPrice":"0.5","curPrice":"0.8","title":"Rain"},{"size":"0","avgPrice":"1"}]`
const activityBody = `[{"id":"t1","type":"SELL","size":"2","price":"0.5","timestamp":1748775600}]`

func TestValidateAddress(t *testing.T) {
	valid := []string{walletA, "0x56687BF447DB6FFA42FFE2204A05EDAA20F55839"}
	for _, a := range valid {
		if err := ValidateAddress(a); err != nil {
			t.Errorf("ValidateAddress(%s) = %v", a, err)
		}
	}
	invalid := []string{"", "0x123", walletA + "0", "56687bf447db6ffa42ffe2204a05edaa20f558390x", "0x56687bf447db6ffa42ffe2204a05edaa20f5583g", " " + walletA}
	for _, a := range invalid {
		err := ValidateAddress(a)
		if errors.Code(err) != ecode.ValidateErr {
			t.Errorf("ValidateAddress(%q) = %v", a, err)
		}
	}
}

func TestWalletGet_InvalidAddressSkipsUpstream(t *testing.T) {
	up := &fakeUpstream{positions: body(`[]`), activity: body(`[]`)}
	s := NewWalletService(newClient(t, up), 20)

	_, err := s.WalletGet(context.Background(), "0xnope")
	code, msg := errors.DecodeErr(err)
	if code != ecode.ValidateErr || msg != "Invalid wallet address" {
		t.Errorf("err = %d %s", code, msg)
	}
	if up.calls != 0 {
		t.Errorf("upstream called %d times", up.calls)
	}
}

func TestWalletGet_BothOK(t *testing.T) {
	up := &fakeUpstream{positions: body(positionsBody), activity: body(activityBody)}
	s := NewWalletService(newClient(t, up), 20)

	data, err := s.WalletGet(context.Background(), walletA)
	if err != nil {
		t.Fatal(err)
	}
	if len(data.Warnings) != 0 {
		t.Errorf("warnings = %v", data.Warnings)
	}
	if len(data.Positions) != 1 || len(data.Activity) != 1 {
		t.Fatalf("data = %+v", data)
	}
	if data.Stats.PositionsCount != 1 || data.Stats.TradesCount != 1 || data.Stats.WinRate != 100 {
		t.Errorf("stats = %+v", data.Stats)
	}
	if data.Activity[0].Type != model.TradeSell || data.Activity[0].Total != 1 {
		t.Errorf("activity = %+v", data.Activity[0])
	}
}

func TestWalletGet_KeepsActivityWithNumericID(t *testing.T) {
	up := &fakeUpstream{
		positions: body(positionsBody),
		activity:  body(`[{"id":12345,"type":"SELL","size":"2","price":"0.5"},{"id":"ok","outcome":7}]`),
	}
	s := NewWalletService(newClient(t, up), 20)

	data, err := s.WalletGet(context.Background(), walletA)
	if err != nil {
		t.Fatal(err)
	}
	if len(data.Activity) != 2 || data.Stats.TradesCount != 2 {
		t.Fatalf("activity = %+v", data.Activity)
	}
	if data.Activity[0].ID != "12345" || data.Activity[0].Type != model.TradeSell || data.Activity[1].Outcome != "7" {
		t.Errorf("activity = %+v", data.Activity)
	}
}

func TestWalletGet_ActivityFails(t *testing.T) {
	up := &fakeUpstream{positions: body(positionsBody), activity: status(http.StatusServiceUnavailable)}
	s := NewWalletService(newClient(t, up), 20)

	data, err := s.WalletGet(context.Background(), walletA)
	if err != nil {
		t.Fatal(err)
	}
	if len(data.Activity) != 0 || data.Activity == nil {
		t.Errorf("activity = %v, want empty slice", data.Activity)
	}
	if len(data.Positions) != 1 {
		t.Errorf("positions = %v", data.Positions)
	}
	if len(data.Warnings) != 1 || !strings.Contains(data.Warnings[0], "activity") {
		t.Errorf("warnings = %v", data.Warnings)
	}
}

func TestWalletGet_PositionsFails(t *testing.T) {
	up := &fakeUpstream{positions: status(http.StatusInternalServerError), activity: body(activityBody)}
	s := NewWalletService(newClient(t, up), 20)

	data, err := s.WalletGet(context.Background(), walletA)
	if err != nil {
		t.Fatal(err)
	}
	if len(data.Positions) != 0 || len(data.Activity) != 1 {
		t.Errorf("data = %+v", data)
	}
	if len(data.Warnings) != 1 || data.Warnings[0] != positionsWarning {
		t.Errorf("warnings = %v", data.Warnings)
	}
	if data.Stats.WinRate != 0 || data.Stats.TotalPnlPercent != 0 {
		t.Errorf("stats = %+v", data.Stats)
	}
}

func TestWalletGet_BothFail(t *testing.T) {
	up := &fakeUpstream{positions: status(http.StatusBadGateway), activity: body(`not json`)}
	s := NewWalletService(newClient(t, up), 20)

	data, err := s.WalletGet(context.Background(), walletA)
	if data != nil {
		t.Errorf("data = %+v, want nil", data)
	}
	code, msg := errors.DecodeErr(err)
	if code != ecode.UpstreamErr || msg != msgUpstreamUnavailable {
		t.Errorf("err = %d %s", code, msg)
	}
	if !strings.Contains(errors.Cause(err).Error(), "Positions API error: 502") {
		t.Errorf("cause = %v", errors.Cause(err))
	}
}

func TestWalletGet_ActivityLimit(t *testing.T) {
	var limit string
	up := &fakeUpstream{positions: body(`[]`), activity: func(w http.ResponseWriter, r *http.Request) {
		limit = r.URL.Query().Get("limit")
		w.Write([]byte(`[]`))
	}}
	s := NewWalletService(newClient(t, up), 0)
	if _, err := s.WalletGet(context.Background(), walletA); err != nil {
		t.Fatal(err)
	}
	if limit != "20" {
		t.Errorf("limit = %s", limit)
	}
}

func TestCompare_Validation(t *testing.T) {
	up := &fakeUpstream{}
	s := NewWalletService(newClient(t, up), 20)

	tests := []struct {
		req  model.CompareReq
		want string
	}{
		{model.CompareReq{A: walletA, B: "0x1"}, msgCompareInvalid},
		{model.CompareReq{A: "", B: walletB}, msgCompareInvalid},
		{model.CompareReq{A: walletA, B: strings.ToUpper(walletA[2:])}, msgCompareInvalid},
		{model.CompareReq{A: walletA, B: "0x" + strings.ToUpper(walletA[2:])}, msgCompareSame},
	}
	for _, tt := range tests {
		_, err := s.Compare(context.Background(), tt.req)
		code, msg := errors.DecodeErr(err)
		if code != ecode.ValidateErr || msg != tt.want {
			t.Errorf("Compare(%+v) = %d %s", tt.req, code, msg)
		}
	}
	if up.calls != 0 {
		t.Errorf("upstream called %d times", up.calls)
	}
}

func TestCompare_OneSideFails(t *testing.T) {
	up := &fakeUpstream{
		positions: func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("user") == walletB {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(positionsBody))
		},
		activity: func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("user") == walletB {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			w.Write([]byte(activityBody))
		},
	}
	s := NewWalletService(newClient(t, up), 20)

	res, err := s.Compare(context.Background(), model.CompareReq{A: walletA, B: walletB})
	if err != nil {
		t.Fatal(err)
	}
	if !res.A.Success || res.A.Data == nil || res.A.Data.Address != walletA {
		t.Errorf("slot a = %+v", res.A)
	}
	if res.B.Success || res.B.Data != nil || res.B.Error != msgUpstreamUnavailable {
		t.Errorf("slot b = %+v", res.B)
	}
}

func TestCompare_BothFail(t *testing.T) {
	up := &fakeUpstream{positions: status(http.StatusBadGateway), activity: status(http.StatusBadGateway)}
	s := NewWalletService(newClient(t, up), 20)

	_, err := s.Compare(context.Background(), model.CompareReq{A: walletA, B: walletB})
	code, msg := errors.DecodeErr(err)
	if code != ecode.UpstreamErr || msg != msgWalletFailed {
		t.Errorf("err = %d %s", code, msg)
	}
}

func TestClampLimit(t *testing.T) {
	tests := map[string]int{
		"":     25,
		"abc":  25,
		"0":    1,
		" 0":   1,
		"-5":   1,
		"1":    1,
		"50":   50,
		"100":  100,
		"101":  100,
		"10x":  10,
		"9999": 100,
	}
	for raw, want := range tests {
		if got := clampLimit(raw); got != want {
			t.Errorf("clampLimit(%q) = %d, want %d", raw, got, want)
		}
	}
	if got := clampLimit("99999999999999999999999"); got != 100 {
		t.Errorf("clampLimit(overflow) = %d", got)
	}
}

func TestClampOffset(t *testing.T) {
	tests := map[string]int{"": 0, "x": 0, "-10": 0, "30": 30}
	for raw, want := range tests {
		if got := clampOffset(raw); got != want {
			t.Errorf("clampOffset(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestLeaderboardGet(t *testing.T) {
	var query string
	up := &fakeUpstream{leaderboard: func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(`[{"rank":"1","proxyWallet":"` + walletA + `","userName":"alice","vol":"1500","pnl":"20"},{"rank":"2","vol":"bad"}]`))
	}}
	s := NewLeaderboardService(newClient(t, up))

	res, err := s.LeaderboardGet(context.Background(), model.LeaderboardReq{
		Limit: "500", Offset: "-1", TimePeriod: "week", OrderBy: "profit", Category: "sports", User: walletA,
	})
	if err != nil {
		t.Fatal(err)
	}
	want := model.LeaderboardMeta{Limit: 100, Offset: 0, TimePeriod: model.TimePeriodWeek, OrderBy: model.OrderByVol, Category: model.CategorySports, User: walletA}
	if res.Meta != want {
		t.Errorf("meta = %+v", res.Meta)
	}
	if !strings.Contains(query, "limit=100") || !strings.Contains(query, "orderBy=VOL") || !strings.Contains(query, "user="+walletA) {
		t.Errorf("query = %s", query)
	}
	if strings.Contains(query, "userName") {
		t.Errorf("empty userName passed through: %s", query)
	}
	if res.Total != 2 || len(res.List) != 2 {
		t.Fatalf("res = %+v", res)
	}
	if res.List[0].Username != "alice" || res.List[1].Volume != 0 || res.List[1].Address != "Unknown" {
		t.Errorf("list = %+v", res.List)
	}
}

func TestLeaderboardGet_UpstreamError(t *testing.T) {
	up := &fakeUpstream{leaderboard: status(http.StatusTooManyRequests)}
	s := NewLeaderboardService(newClient(t, up))

	_, err := s.LeaderboardGet(context.Background(), model.LeaderboardReq{})
	code, msg := errors.DecodeErr(err)
	if code != ecode.Unknown || msg != "Failed to fetch leaderboard data" {
		t.Errorf("err = %d %s", code, msg)
	}
}
