package common

import "github.com/urfave/cli/v2"

// GlobalFlags apply to every command.
var GlobalFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Enable verbose logging",
	},
	&cli.StringFlag{
		Name:    "env-file",
		Usage:   "Load environment variables from this file when it exists",
		Value:   DefaultEnvFile,
		EnvVars: []string{"HUMMUS_ENV_FILE"},
	},
}
