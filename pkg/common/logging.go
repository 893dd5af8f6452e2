package common

import (
	"context"
	"os"

	"github.com/hummus-finance/toolchain/pkg/common/iface"
	"github.com/hummus-finance/toolchain/pkg/common/logger"

	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

type loggerContextKey struct{}

// IsTTY reports whether log output goes to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// GetLogger picks plain output for terminals and zap everywhere else.
func GetLogger(verbose bool) iface.Logger {
	if IsTTY() {
		return logger.NewLogger(verbose)
	}
	return logger.NewZapLogger(verbose)
}

func GetLoggerFromCLIContext(cCtx *cli.Context) iface.Logger {
	return GetLogger(cCtx.Bool("verbose"))
}

func WithLogger(ctx context.Context, l iface.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, l)
}

// LoggerFromContext returns the stored logger or a non-verbose fallback.
func LoggerFromContext(ctx context.Context) iface.Logger {
	if l, ok := ctx.Value(loggerContextKey{}).(iface.Logger); ok {
		return l
	}
	return GetLogger(false)
}
