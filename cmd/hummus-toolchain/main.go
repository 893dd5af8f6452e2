package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hummus-finance/toolchain/internal/version"
	"github.com/hummus-finance/toolchain/pkg/commands"
	"github.com/hummus-finance/toolchain/pkg/commands/config"
	versioncmd "github.com/hummus-finance/toolchain/pkg/commands/version"
	"github.com/hummus-finance/toolchain/pkg/common"
	"github.com/hummus-finance/toolchain/pkg/hooks"

	"github.com/urfave/cli/v2"
)

func main() {
	ctx := common.WithShutdown(context.Background())

	app := &cli.App{
		Name:                   "hummus-toolchain",
		Usage:                  "Build and inspect the Hummus contract toolchain configuration",
		Version:                version.GetVersion(),
		Flags:                  common.GlobalFlags,
		UseShortOptionHandling: true,
		Before: func(cCtx *cli.Context) error {
			if err := hooks.WithLogger(cCtx); err != nil {
				return err
			}
			if err := hooks.LoadEnvFile(cCtx); err != nil {
				return err
			}
			common.WithAppEnvironment(cCtx)
			return hooks.WithCommandMetricsContext(cCtx)
		},
		Commands: []*cli.Command{
			commands.InitCommand,
			config.Command,
			commands.NetworksCommand,
			commands.AccountsCommand,
			versioncmd.VersionCommand,
		},
	}

	actionChain := hooks.NewActionChain()
	actionChain.Use(hooks.WithMetricEmission)
	hooks.ApplyMiddleware(app.Commands, actionChain)

	if err := app.RunContext(ctx, os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
