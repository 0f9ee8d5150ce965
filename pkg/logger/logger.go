package logger

import (
	"os"
	"polyscope/conf"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	log   *zap.Logger
	sugar *zap.SugaredLogger
	once  sync.Once
)

func init() {
	// 未初始化前先用一个控制台logger兜底，避免测试或者工具代码里直接调用时panic
	log = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig("")),
		zapcore.AddSync(os.Stdout),
		zap.InfoLevel,
	), zap.AddCaller(), zap.AddCallerSkip(1))
	sugar = log.Sugar()
}

// InitLogger 根据配置初始化全局logger，日志文件按大小切割
func InitLogger(cfg *conf.LogConfig, appName string) {
	once.Do(func() {
		level := parseLevel(cfg.Level)

		var cores []zapcore.Core
		if cfg.FileName != "" {
			writer := &lumberjack.Logger{
				Filename:   cfg.FileName,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
				LocalTime:  cfg.LocalTime,
			}
			cores = append(cores, zapcore.NewCore(
				zapcore.NewJSONEncoder(encoderConfig(cfg.TimeFormat)),
				zapcore.AddSync(writer),
				level,
			))
		}
		// 没有配置文件输出时强制打到控制台
		if cfg.Console || len(cores) == 0 {
			cores = append(cores, zapcore.NewCore(
				zapcore.NewConsoleEncoder(encoderConfig(cfg.TimeFormat)),
				zapcore.AddSync(os.Stdout),
				level,
			))
		}

		log = zap.New(zapcore.NewTee(cores...),
			zap.AddCaller(),
			zap.AddCallerSkip(1),
			zap.AddStacktrace(zap.ErrorLevel),
		)
		if appName != "" {
			log = log.With(zap.String("app", appName))
		}
		sugar = log.Sugar()
	})
}

func encoderConfig(timeFormat string) zapcore.EncoderConfig {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	if timeFormat == "" {
		timeFormat = "2006-01-02 15:04:05.000"
	}
	ec.EncodeTime = zapcore.TimeEncoderOfLayout(timeFormat)
	return ec
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zap.DebugLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

// L 返回结构化logger
func L() *zap.Logger {
	return log
}

// Pair 构造一个日志字段
func Pair(key string, v interface{}) zap.Field {
	return zap.Any(key, v)
}

func Debug(msg string, fields ...zap.Field) {
	log.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	log.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	log.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	log.Error(msg, fields...)
}

func Fatal(msg string, fields ...zap.Field) {
	log.Fatal(msg, fields...)
}

func Debugf(template string, args ...interface{}) {
	sugar.Debugf(template, args...)
}

func Infof(template string, args ...interface{}) {
	sugar.Infof(template, args...)
}

func Warnf(template string, args ...interface{}) {
	sugar.Warnf(template, args...)
}

func Errorf(template string, args ...interface{}) {
	sugar.Errorf(template, args...)
}

func Fatalf(template string, args ...interface{}) {
	sugar.Fatalf(template, args...)
}

// Sync 刷新缓冲区，退出前调用
func Sync() {
	_ = log.Sync()
}
