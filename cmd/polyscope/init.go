package api

import (
	"polyscope/conf"
	"polyscope/internal/consts"
	"polyscope/internal/handler/leaderboard"
	"polyscope/internal/handler/wallet"
	"polyscope/internal/router"
	"polyscope/internal/service"
	"polyscope/pkg/cache"
	"polyscope/pkg/logger"
	"polyscope/pkg/polymarket/rest"
	"time"
)

// InitRouter 组装上游client、service和handler
func InitRouter(cfg *conf.Config) (Router, error) {
	client, err := rest.NewPolymarketRestClient(
		cfg.Upstream.BaseURL,
		rest.WithTimeout(time.Duration(cfg.Upstream.TimeoutMs)*time.Millisecond),
		rest.WithCache(newCacheStore(cfg.Cache)),
	)
	if err != nil {
		return nil, err
	}

	lh := leaderboard.NewHandler(service.NewLeaderboardService(client))
	wh := wallet.NewHandler(service.NewWalletService(client, cfg.Upstream.ActivityLimit))

	var throttle *router.ThrottleOption
	if cfg.Throttle.Enabled {
		throttle = &router.ThrottleOption{
			Window: time.Duration(cfg.Throttle.WindowMs) * time.Millisecond,
			Size:   cfg.Cache.Size,
		}
	}
	return router.NewApiRouter(lh, wh, throttle), nil
}

// 根据配置选择缓存，redis需要在调用前初始化
func newCacheStore(cfg conf.CacheConfig) cache.Store {
	switch cfg.Driver {
	case conf.CacheDriverMemory:
		store, err := cache.NewMemoryStore(cfg.Size)
		if err != nil {
			logger.Errorf("memory cache init failed, cache disabled: %v", err)
			return cache.Nop{}
		}
		return store
	case conf.CacheDriverRedis:
		return cache.NewRedisStore(cache.GetRedisClient(), consts.UpstreamCachePrefix)
	}
	return cache.Nop{}
}
