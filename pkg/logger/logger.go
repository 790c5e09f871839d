package logger

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config 日志配置
type Config struct {
	Level       string `mapstructure:"level"`
	Format      string `mapstructure:"format"` // json | console
	Development bool   `mapstructure:"development"`
}

var sugar = zap.NewNop().Sugar()

// DefaultConfig 默认日志配置
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
	}
}

// Init 初始化全局日志
func Init(cfg Config) {
	level := zapcore.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zapcore.DebugLevel
	case "warn", "warning":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if strings.ToLower(cfg.Format) == "json" {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1)}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	sugar = zap.New(core, opts...).Sugar()
}

// Sync 刷新缓冲
func Sync() {
	_ = sugar.Sync()
}

// Debug 调试日志
func Debug(msg string, keysAndValues ...interface{}) {
	sugar.Debugw(msg, normalize(keysAndValues)...)
}

// Info 信息日志
func Info(msg string, keysAndValues ...interface{}) {
	sugar.Infow(msg, normalize(keysAndValues)...)
}

// Warn 警告日志
func Warn(msg string, keysAndValues ...interface{}) {
	sugar.Warnw(msg, normalize(keysAndValues)...)
}

// Error 错误日志，第二个参数为错误本身
func Error(msg string, err error, keysAndValues ...interface{}) {
	kv := append([]interface{}{"error", err}, keysAndValues...)
	sugar.Errorw(msg, normalize(kv)...)
}

// normalize 把 "key: " 形式的键去掉尾部冒号和空格，并补齐奇数个参数
func normalize(kv []interface{}) []interface{} {
	out := make([]interface{}, 0, len(kv)+1)
	for i, v := range kv {
		if i%2 == 0 {
			if s, ok := v.(string); ok {
				v = strings.TrimRight(s, ": ")
			}
		}
		out = append(out, v)
	}
	if len(out)%2 == 1 {
		out = append(out, "")
	}
	return out
}
