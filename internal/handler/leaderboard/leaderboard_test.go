package leaderboard

import (
	"net/http"
	"net/http/httptest"
	"polyscope/internal/model"
	"polyscope/internal/service"
	"polyscope/pkg/polymarket/rest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type envelope struct {
	Success bool                      `json:"success"`
	Data    []model.RankedTraderEntry `json:"data"`
	Total   *int                      `json:"total"`
	Meta    *model.LeaderboardMeta    `json:"meta"`
	Error   string                    `json:"error"`
}

func setup(t *testing.T, handler http.HandlerFunc) *gin.Engine {
	t.Helper()
	upstream := httptest.NewServer(handler)
	t.Cleanup(upstream.Close)

	client, err := rest.NewPolymarketRestClient(upstream.URL)
	if err != nil {
		t.Fatal(err)
	}
	gin.SetMode(gin.TestMode)
	g := gin.New()
	g.GET("/api/leaderboard", NewHandler(service.NewLeaderboardService(client)).LeaderboardGet())
	return g
}

func get(t *testing.T, g *gin.Engine, url string) (int, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid body %s: %v", w.Body.String(), err)
	}
	return w.Code, env
}

func TestLeaderboardGet(t *testing.T) {
	g := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"rank":"1","proxyWallet":"0x56687bf447db6ffa42ffe2204a05edaa20f55839","userName":"alice","vol":"2500","pnl":"100"},{"rank":"x"}]`))
	})

	code, env := get(t, g, "/api/leaderboard?limit=abc&timePeriod=DAY&orderBy=PNL&userName=alice")
	if code != http.StatusOK || !env.Success {
		t.Fatalf("code=%d env=%+v", code, env)
	}
	if env.Total == nil || *env.Total != 2 || len(env.Data) != 2 {
		t.Fatalf("env = %+v", env)
	}
	if env.Meta == nil || env.Meta.Limit != 25 || env.Meta.TimePeriod != model.TimePeriodDay || env.Meta.OrderBy != model.OrderByPnl || env.Meta.UserName != "alice" {
		t.Errorf("meta = %+v", env.Meta)
	}
	if env.Data[0].Volume != 2500 || env.Data[0].Percentile != model.PercentileTop1 || env.Data[1].Rank != 0 {
		t.Errorf("data = %+v", env.Data)
	}
}

func TestLeaderboardGet_EmptyShape(t *testing.T) {
	g := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"nope"}`))
	})
	code, env := get(t, g, "/api/leaderboard")
	if code != http.StatusOK || !env.Success || len(env.Data) != 0 || *env.Total != 0 {
		t.Errorf("code=%d env=%+v", code, env)
	}
}

func TestLeaderboardGet_UpstreamDown(t *testing.T) {
	g := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	code, env := get(t, g, "/api/leaderboard")
	if code != http.StatusInternalServerError || env.Success || env.Error != "Failed to fetch leaderboard data" {
		t.Errorf("code=%d env=%+v", code, env)
	}
	if env.Data != nil || env.Total != nil {
		t.Errorf("unexpected data: %+v", env)
	}
}
