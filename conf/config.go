package conf

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"os"
)

// 配置加载

type LogConfig struct {
	Level      string `yaml:"level"`
	FileName   string `yaml:"file-name"`
	TimeFormat string `yaml:"time-format"`
	MaxSize    int    `yaml:"max-size"`
	MaxBackups int    `yaml:"max-backups"`
	MaxAge     int    `yaml:"max-age"`
	Compress   bool   `yaml:"compress"`
	LocalTime  bool   `yaml:"local-time"`
	Console    bool   `yaml:"console"`
}

// UpstreamConfig 上游Data API
type UpstreamConfig struct {
	BaseURL       string `yaml:"base-url"`
	TimeoutMs     int    `yaml:"timeout-ms"`     // 单次请求的最长等待时间
	ActivityLimit int    `yaml:"activity-limit"` // 钱包最近成交的条数
}

// RedisConfig is used to configure redis
type RedisConfig struct {
	Addr         string `yaml:"address"`
	Password     string `yaml:"password"`
	Db           int    `yaml:"db"`
	PoolSize     int    `yaml:"pool-size"`
	MinIdleConns int    `yaml:"min-idle-conns"`
	IdleTimeout  int    `yaml:"idle-timeout"`
}

// CacheConfig 上游响应的短期缓存，driver: none | memory | redis
type CacheConfig struct {
	Driver string      `yaml:"driver"`
	Size   int         `yaml:"size"` // memory模式下最多缓存的响应数
	Redis  RedisConfig `yaml:"redis"`
}

// ThrottleConfig 同一ip同一路径的防抖
type ThrottleConfig struct {
	Enabled  bool `yaml:"enabled"`
	WindowMs int  `yaml:"window-ms"`
}

type Config struct {
	AppName      string `yaml:"app_name"`
	Listen       string `yaml:"listen"`
	Mode         string `yaml:"mode"`
	Language     string `yaml:"language"`
	MaxPingCount int    `yaml:"max-ping-count"`

	Log      LogConfig      `yaml:"log"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Cache    CacheConfig    `yaml:"cache"`
	Throttle ThrottleConfig `yaml:"throttle"`
}

const (
	DefaultUpstreamURL   = "https://data-api.polymarket.com"
	DefaultTimeoutMs     = 8000
	DefaultActivityLimit = 20

	CacheDriverNone   = "none"
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

var AppConfig Config

func LoadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Read config file error %w", err)
	}
	if err := yaml.Unmarshal(data, &AppConfig); err != nil {
		return fmt.Errorf("Unmarshal config yaml error: %w", err)
	}
	AppConfig.ApplyDefaults()
	return nil
}

// ApplyDefaults 补齐未配置的字段，空配置文件也能启动
func (c *Config) ApplyDefaults() {
	if c.AppName == "" {
		c.AppName = "polyscope"
	}
	if c.Listen == "" {
		c.Listen = ":12180"
	}
	switch c.Mode {
	case "debug", "release", "test":
	default:
		c.Mode = "release"
	}
	if c.Language == "" {
		c.Language = "en"
	}
	if c.MaxPingCount <= 0 {
		c.MaxPingCount = 10
	}
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = DefaultUpstreamURL
	}
	if c.Upstream.TimeoutMs <= 0 {
		c.Upstream.TimeoutMs = DefaultTimeoutMs
	}
	if c.Upstream.ActivityLimit <= 0 {
		c.Upstream.ActivityLimit = DefaultActivityLimit
	}
	switch c.Cache.Driver {
	case CacheDriverMemory, CacheDriverRedis:
	default:
		c.Cache.Driver = CacheDriverNone
	}
	if c.Cache.Size <= 0 {
		c.Cache.Size = 1024
	}
	if c.Throttle.WindowMs <= 0 {
		c.Throttle.WindowMs = 1000
	}
}
