// 指示: miu200521358
package mlogging

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger = zap.NewNop()
)

// DefaultLogger は共有ロガーを返す。未設定時は何も出力しないロガーを返す。
func DefaultLogger() *zap.Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefaultLogger は共有ロガーを差し替える。nil の場合は何も出力しないロガーを設定する。
func SetDefaultLogger(logger *zap.Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if logger == nil {
		logger = zap.NewNop()
	}
	defaultLogger = logger
}

// ParseLevel はログレベル名を解決する。空文字は info とみなす。
func ParseLevel(level string) (zapcore.Level, error) {
	name := strings.TrimSpace(strings.ToLower(level))
	if name == "" {
		return zapcore.InfoLevel, nil
	}
	var parsed zapcore.Level
	if err := parsed.UnmarshalText([]byte(name)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("未対応のログレベルです: %s", level)
	}
	return parsed, nil
}

// NewLogger は指定レベルのコンソール出力ロガーを生成する。
func NewLogger(level string) (*zap.Logger, error) {
	parsed, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.Level = zap.NewAtomicLevelAt(parsed)
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("ロガーの初期化に失敗しました: %w", err)
	}
	return logger, nil
}
