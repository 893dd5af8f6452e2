package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is used when output is not a terminal (CI, pipes).
type ZapLogger struct {
	log *zap.SugaredLogger
}

func NewZapLogger(verbose bool) *ZapLogger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	// stdout is reserved for rendered configs
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	return &ZapLogger{log: l.Sugar()}
}

// NewZapLoggerFrom wraps an existing zap logger.
func NewZapLoggerFrom(l *zap.Logger) *ZapLogger {
	return &ZapLogger{log: l.Sugar()}
}

func (l *ZapLogger) Title(msg string, args ...any) {
	for _, line := range strings.Split(fmt.Sprintf(msg, args...), "\n") {
		if line == "" {
			continue
		}
		l.log.Infof("== %s ==", line)
	}
}

func (l *ZapLogger) Info(msg string, args ...any) {
	if msg = strings.Trim(msg, "\n"); msg != "" {
		l.log.Infof(msg, args...)
	}
}

func (l *ZapLogger) Warn(msg string, args ...any) {
	if msg = strings.Trim(msg, "\n"); msg != "" {
		l.log.Warnf(msg, args...)
	}
}

func (l *ZapLogger) Error(msg string, args ...any) {
	if msg = strings.Trim(msg, "\n"); msg != "" {
		l.log.Errorf(msg, args...)
	}
}

func (l *ZapLogger) Debug(msg string, args ...any) {
	if msg = strings.Trim(msg, "\n"); msg != "" {
		l.log.Debugf(msg, args...)
	}
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.log.Sync()
}
