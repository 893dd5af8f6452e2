package testutils

import (
	"bytes"
	"testing"

	"github.com/hummus-finance/toolchain/pkg/common"
	"github.com/hummus-finance/toolchain/pkg/common/logger"
	"github.com/hummus-finance/toolchain/pkg/toolchain"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// BuildConfig builds a config from env or fails the test.
func BuildConfig(t *testing.T, env toolchain.Env) *toolchain.Config {
	t.Helper()
	cfg, err := toolchain.Build(env)
	require.NoError(t, err)
	return cfg
}

// TestApp wraps commands in an app that injects cfg and a NoopLogger and
// captures stdout.
type TestApp struct {
	App    *cli.App
	Logger *logger.NoopLogger
	Out    *bytes.Buffer
}

func NewTestApp(cfg *toolchain.Config, commands ...*cli.Command) *TestApp {
	ta := &TestApp{
		Logger: logger.NewNoopLogger(),
		Out:    &bytes.Buffer{},
	}
	ta.App = &cli.App{
		Name:     "hummus-toolchain",
		Writer:   ta.Out,
		Flags:    common.GlobalFlags,
		Commands: commands,
		Before: func(cCtx *cli.Context) error {
			cCtx.Context = common.WithLogger(cCtx.Context, ta.Logger)
			if cfg != nil {
				cCtx.Context = common.WithConfig(cCtx.Context, cfg)
			}
			return nil
		},
		// keep failures as returned errors instead of os.Exit
		ExitErrHandler: func(*cli.Context, error) {},
	}
	return ta
}

// Run executes args after the binary name.
func (ta *TestApp) Run(args ...string) error {
	return ta.App.Run(append([]string{"hummus-toolchain"}, args...))
}
