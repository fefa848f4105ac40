package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the shared logger instance. InitLogger must run before any
// package-level logging helper is used.
var Log *zap.Logger

// InitLogger builds the logger for the current environment. Release mode
// (GIN_MODE=release) gets JSON production output, everything else gets the
// colored development console.
func InitLogger() {
	var config zap.Config
	if os.Getenv("GIN_MODE") == "release" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := config.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Log = logger
}

// Debug logs a message at DebugLevel.
func Debug(msg string, fields ...zapcore.Field) {
	Log.Debug(msg, fields...)
}

// Info logs a message at InfoLevel.
func Info(msg string, fields ...zapcore.Field) {
	Log.Info(msg, fields...)
}

// Warn logs a message at WarnLevel.
func Warn(msg string, fields ...zapcore.Field) {
	Log.Warn(msg, fields...)
}

// Error logs a message at ErrorLevel.
func Error(msg string, fields ...zapcore.Field) {
	Log.Error(msg, fields...)
}

// Fatal logs a message at FatalLevel and exits.
func Fatal(msg string, fields ...zapcore.Field) {
	Log.Fatal(msg, fields...)
}

// With creates a child logger with the given structured context.
func With(fields ...zapcore.Field) *zap.Logger {
	return Log.With(fields...)
}

// Sync flushes any buffered log entries.
func Sync() error {
	return Log.Sync()
}
