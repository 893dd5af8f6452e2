package commands

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/hummus-finance/toolchain/pkg/common"
	"github.com/hummus-finance/toolchain/pkg/toolchain"

	"github.com/urfave/cli/v2"
)

var networkFlag = &cli.StringFlag{
	Name:    "network",
	Aliases: []string{"n"},
	Usage:   "Network whose chain id and accounts are used",
	Value:   toolchain.NetworkHardhat,
}

// AccountsCommand resolves named accounts.
var AccountsCommand = &cli.Command{
	Name:  "accounts",
	Usage: "Show which address each named account maps to",
	Subcommands: []*cli.Command{
		{
			Name:   "list",
			Usage:  "List named accounts on a network",
			Flags:  []cli.Flag{networkFlag},
			Action: AccountsList,
		},
		{
			Name:      "resolve",
			Usage:     "Print the address of one named account",
			ArgsUsage: "NAME [--network NAME]",
			Flags:     []cli.Flag{networkFlag},
			Action:    AccountsResolve,
		},
	},
}

func AccountsList(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx.Context)

	cfg, err := common.LoadConfig(cCtx.Context)
	if err != nil {
		return err
	}
	network := cCtx.String("network")
	chainID, err := cfg.ChainIDFor(network)
	if err != nil {
		return err
	}

	refs := cfg.AccountsForChain(chainID)
	names := make([]string, 0, len(refs))
	for name := range refs {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(cCtx.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tADDRESS\tSOURCE")
	for _, name := range names {
		ref := refs[name]
		source := "address"
		if !ref.IsAddress() {
			source = fmt.Sprintf("account #%d", ref.Index)
		}
		addr, err := cfg.ResolveAccount(name, network)
		display := addr.Hex()
		if err != nil {
			logger.Debug("%s on %s: %v", name, network, err)
			display = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, display, source)
	}
	return w.Flush()
}

func AccountsResolve(cCtx *cli.Context) error {
	name, network, err := resolveArgs(cCtx)
	if err != nil {
		return err
	}
	cfg, err := common.LoadConfig(cCtx.Context)
	if err != nil {
		return err
	}
	addr, err := cfg.ResolveAccount(name, network)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cCtx.App.Writer, addr.Hex())
	return err
}

// resolveArgs takes the account name from the positional args. Flag parsing
// stops at the first positional, so a trailing --network/-n is read here.
func resolveArgs(cCtx *cli.Context) (name, network string, err error) {
	network = cCtx.String("network")
	args := cCtx.Args().Slice()

	var names []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--network" || arg == "-n":
			if i+1 >= len(args) {
				return "", "", fmt.Errorf("flag %s needs a value", arg)
			}
			network = args[i+1]
			i++
		case strings.HasPrefix(arg, "--network="):
			network = strings.TrimPrefix(arg, "--network=")
		case strings.HasPrefix(arg, "-n="):
			network = strings.TrimPrefix(arg, "-n=")
		default:
			names = append(names, arg)
		}
	}
	if len(names) != 1 {
		return "", "", fmt.Errorf("expected exactly one account name, got %d", len(names))
	}
	return names[0], network, nil
}
