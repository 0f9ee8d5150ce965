package main

import (
	"flag"
	"log"
	"os"
	api "polyscope/cmd/polyscope"
	"polyscope/conf"
	"polyscope/internal/middleware"
	"polyscope/pkg/cache"
	"polyscope/pkg/logger"

	"github.com/joho/godotenv"
)

/*
测试

curl "http://localhost:12180/api/leaderboard?limit=10&timePeriod=WEEK&orderBy=PNL"
curl "http://localhost:12180/api/wallet/0x56687bf447db6ffa42ffe2204a05edaa20f55839"
curl "http://localhost:12180/api/compare?a=0x56687bf447db6ffa42ffe2204a05edaa20f55839&b=0x1f2dd6d473f3e824cd2f8a89d9c69fb96f6ad0cf"
*/

func main() {
	configPath := flag.String("config", "conf/config.yaml", "config file path")
	flag.Parse()

	// .env 不存在时忽略
	_ = godotenv.Load()

	// 加载配置文件
	err := conf.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	appCfg := conf.AppConfig

	// 环境变量优先于配置文件
	if listen := os.Getenv("POLYSCOPE_LISTEN"); listen != "" {
		appCfg.Listen = listen
	}
	if upstream := os.Getenv("POLYSCOPE_UPSTREAM_URL"); upstream != "" {
		appCfg.Upstream.BaseURL = upstream
	}
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		appCfg.Cache.Redis.Addr = redisAddr
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		appCfg.Cache.Redis.Password = redisPassword
	}

	logger.InitLogger(&appCfg.Log, appCfg.AppName)
	defer logger.Sync()

	// 初始化redis缓存
	if appCfg.Cache.Driver == conf.CacheDriverRedis {
		if err := cache.InitRedis(appCfg.Cache.Redis); err != nil {
			logger.Fatalf("redis init failed: %v", err)
		}
	}

	// 创建并启动服务
	srv := api.NewServer(&appCfg)
	srv.RegisterOnShutdown(func() {
		cache.CloseRedis()
	})
	srvRouter, err := api.InitRouter(&appCfg)
	if err != nil {
		logger.Fatalf("router init failed: %v", err)
	}

	srv.Run(middleware.NewMiddleware(), srvRouter)
}
