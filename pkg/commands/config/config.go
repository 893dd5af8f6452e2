package config

import (
	"fmt"

	"github.com/hummus-finance/toolchain/pkg/common"
	"github.com/hummus-finance/toolchain/pkg/export"

	"github.com/urfave/cli/v2"
)

// Command groups the configuration subcommands.
var Command = &cli.Command{
	Name:  "config",
	Usage: "Renders or checks the toolchain configuration built from the environment",
	Subcommands: []*cli.Command{
		ShowCommand,
		ValidateCommand,
	},
}

var ShowCommand = &cli.Command{
	Name:  "show",
	Usage: "Print the configuration, or write it with --out",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "format",
			Usage: "Output format (yaml or json); defaults to the --out extension",
		},
		&cli.BoolFlag{
			Name:  "redact",
			Usage: "Replace account private keys with a placeholder",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "Write to this file instead of stdout",
		},
	},
	Action: func(cCtx *cli.Context) error {
		logger := common.LoggerFromContext(cCtx.Context)

		cfg, err := common.LoadConfig(cCtx.Context)
		if err != nil {
			return err
		}

		out := cCtx.String("out")
		format := export.Format(common.DefaultFormat)
		if out != "" {
			format = export.FormatFromPath(out)
		}
		if cCtx.IsSet("format") {
			if format, err = export.ParseFormat(cCtx.String("format")); err != nil {
				return err
			}
		}
		opts := export.Options{Redact: cCtx.Bool("redact")}

		if out == "" {
			return export.Encode(cCtx.App.Writer, cfg, format, opts)
		}
		if err := export.WriteFile(out, cfg, format, opts); err != nil {
			return err
		}
		logger.Info("Wrote %s config to %s", format, out)
		return nil
	},
}

var ValidateCommand = &cli.Command{
	Name:  "validate",
	Usage: "Check urls, addresses and account keys",
	Action: func(cCtx *cli.Context) error {
		logger := common.LoggerFromContext(cCtx.Context)

		cfg, err := common.LoadConfig(cCtx.Context)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			logger.Error("%v", err)
			return fmt.Errorf("configuration is invalid")
		}
		logger.Info("Configuration is valid (%d networks, %d named accounts)", len(cfg.Networks), len(cfg.NamedAccounts))
		return nil
	},
}
