// Package logger builds the zap logger used across akaw.
package logger

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	generalutils "github.com/tatran0195/akaw/utils/general"
)

// timeEncoder is built once and shared by every core.
var timeEncoder = sync.OnceValue(func() zapcore.TimeEncoder {
	layout := zapcore.TimeEncoderOfLayout(generalutils.DisplayTimeLayout)
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		layout(t.UTC(), enc)
	}
})

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.EncodeTime = timeEncoder()
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

// New returns a logger writing human-readable lines to stderr and, when
// logFile is set, JSON lines to that file. An unknown level falls back to info.
func New(level, logFile string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig()), zapcore.Lock(os.Stderr), lvl),
	}

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0o700); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(f), lvl))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}
