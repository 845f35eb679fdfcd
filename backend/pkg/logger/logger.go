package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "aitools"

var (
	mu     sync.RWMutex
	global *zap.Logger
)

// New builds a logger for env without installing it globally.
// Production logs JSON at info, everything else logs colored console output at debug.
// Both write to stderr so CLI stdout stays clean for command output.
func New(env string) (*zap.Logger, error) {
	return buildConfig(env).Build(zap.Fields(zap.String("service", serviceName)))
}

func buildConfig(env string) zap.Config {
	cfg := zap.NewDevelopmentConfig()
	level := zapcore.DebugLevel
	if env == "production" {
		cfg = zap.NewProductionConfig()
		level = zapcore.InfoLevel
	} else {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg
}

// Init installs the logger for env as the package-wide default
func Init(env string) error {
	l, err := New(env)
	if err != nil {
		return err
	}
	Set(l)
	return nil
}

// Set replaces the package-wide logger
func Set(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = l
}

func current() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Sync flushes buffered entries of the package-wide logger
func Sync() {
	if l := current(); l != nil {
		_ = l.Sync()
	}
}

// Get returns the package-wide logger, or a no-op one before Init has run
func Get() *zap.Logger {
	if l := current(); l != nil {
		return l
	}
	return zap.NewNop()
}
