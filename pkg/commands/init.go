package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hummus-finance/toolchain/config"
	"github.com/hummus-finance/toolchain/pkg/common"

	"github.com/urfave/cli/v2"
)

// InitCommand writes an env template listing every variable the config reads.
var InitCommand = &cli.Command{
	Name:      "init",
	Usage:     "Write a .env.example template into DIR (default: current directory)",
	ArgsUsage: "[DIR]",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "force",
			Usage: "Overwrite an existing template",
		},
	},
	Action: func(cCtx *cli.Context) error {
		logger := common.LoggerFromContext(cCtx.Context)

		dir := cCtx.Args().First()
		if dir == "" {
			dir = "."
		}
		path := filepath.Join(dir, ".env.example")

		if _, err := os.Stat(path); err == nil && !cCtx.Bool("force") {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
		if err := os.WriteFile(path, []byte(config.EnvExample), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Info("Wrote %s; copy it to %s and fill in the values", path, common.DefaultEnvFile)
		return nil
	},
}
