package common

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/hummus-finance/toolchain/internal/version"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

// WithShutdown returns a context cancelled on SIGTERM/SIGINT.
func WithShutdown(ctx context.Context) context.Context {
	ctx, cancel := context.WithCancel(ctx)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		signal.Stop(sigChan)
		cancel()
		_, _ = fmt.Fprintln(os.Stderr, "caught interrupt, shutting down gracefully.")
	}()

	return ctx
}

type appEnvironmentContextKey struct{}

// AppEnvironment describes the running binary; it tags telemetry.
type AppEnvironment struct {
	CLIVersion   string
	OS           string
	Arch         string
	InvocationID string
}

func NewAppEnvironment(goos, arch, invocationID string) *AppEnvironment {
	return &AppEnvironment{
		CLIVersion:   version.GetVersion(),
		OS:           goos,
		Arch:         arch,
		InvocationID: invocationID,
	}
}

// WithAppEnvironment attaches a fresh AppEnvironment to the cli context.
func WithAppEnvironment(cCtx *cli.Context) {
	cCtx.Context = withAppEnvironment(cCtx.Context, NewAppEnvironment(
		runtime.GOOS,
		runtime.GOARCH,
		uuid.New().String(),
	))
}

func withAppEnvironment(ctx context.Context, env *AppEnvironment) context.Context {
	return context.WithValue(ctx, appEnvironmentContextKey{}, env)
}

func AppEnvironmentFromContext(ctx context.Context) (*AppEnvironment, bool) {
	env, ok := ctx.Value(appEnvironmentContextKey{}).(*AppEnvironment)
	return env, ok
}
