package logging

import (
	"go.uber.org/zap"
)

// Logger is a leveled logger taking a message plus alternating keys and values.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// Sublogger returns a logger named "<name>.<subname>" sharing this logger's appenders.
	Sublogger(subname string) Logger
	Name() string
	SetLevel(level Level)
	GetLevel() Level
	AddAppender(appender Appender)
	// AsZap returns a zap logger that also feeds any appenders implementing zapcore.Core.
	AsZap() *zap.SugaredLogger
	Sync() error
}
