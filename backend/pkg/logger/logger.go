package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"family-tree/backend/internal/constants"
)

// Logger is a global logger instance
var Logger *zap.Logger

// Init initializes the global logger.
// "production" logs JSON at info, "test" discards everything, anything else
// is the colored development console at debug.
func Init(env string) error {
	if env == constants.EnvTest {
		Logger = zap.NewNop()
		return nil
	}

	var config zap.Config
	if env == constants.EnvProduction {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	built, err := config.Build()
	if err != nil {
		return err
	}
	Logger = built.With(zap.String("env", env))

	return nil
}

// Sync flushes any buffered log entries
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// Get returns the global logger instance
func Get() *zap.Logger {
	if Logger == nil {
		// Fallback to a basic logger if not initialized
		logger, _ := zap.NewDevelopment()
		return logger
	}
	return Logger
}

// Named returns the global logger scoped to a component.
func Named(component string) *zap.Logger {
	return Get().Named(component)
}
