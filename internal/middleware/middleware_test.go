package middleware

import (
	"net/http"
	"net/http/httptest"
	"polyscope/internal/consts"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	NewMiddleware().Load(g)
	g.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(consts.RequestId))
	})
	g.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return g
}

func TestRequestId(t *testing.T) {
	g := newEngine()

	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	id := w.Header().Get(consts.RequestIdHeader)
	if id == "" || w.Body.String() != id {
		t.Errorf("request id header=%q body=%q", id, w.Body.String())
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(consts.RequestIdHeader, "abc")
	g.ServeHTTP(w, req)
	if w.Header().Get(consts.RequestIdHeader) != "abc" {
		t.Errorf("incoming request id not kept: %q", w.Header().Get(consts.RequestIdHeader))
	}
}

func TestRecovery(t *testing.T) {
	g := newEngine()
	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("code = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"success":false`) || strings.Contains(w.Body.String(), "boom") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestNotFound(t *testing.T) {
	g := newEngine()
	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("code = %d", w.Code)
	}
}

func TestOptions(t *testing.T) {
	g := newEngine()
	w := httptest.NewRecorder()
	g.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/ok", nil))
	if w.Code != http.StatusOK || w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Errorf("code=%d headers=%v", w.Code, w.Header())
	}
}

func TestAntiDuplicateMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g := gin.New()
	g.Use(AntiDuplicateMiddleware(time.Minute, 16))
	g.GET("/a", func(c *gin.Context) { c.Status(http.StatusOK) })
	g.GET("/b", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for _, path := range []string{"/a", "/a", "/b"} {
		w := httptest.NewRecorder()
		g.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests || codes[2] != http.StatusOK {
		t.Errorf("codes = %v", codes)
	}
}
