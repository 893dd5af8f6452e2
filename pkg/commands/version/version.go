package version

import (
	"fmt"

	"github.com/hummus-finance/toolchain/internal/version"

	"github.com/urfave/cli/v2"
)

var VersionCommand = &cli.Command{
	Name:  "version",
	Usage: "Print the version of the toolchain CLI",
	Action: func(cCtx *cli.Context) error {
		_, err := fmt.Fprintf(cCtx.App.Writer, "Version: %s\nCommit: %s\n", version.GetVersion(), version.GetCommit())
		return err
	},
}
