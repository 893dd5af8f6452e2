package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/hummus-finance/toolchain/pkg/common"
	"github.com/hummus-finance/toolchain/pkg/rpc"
	"github.com/hummus-finance/toolchain/pkg/toolchain"

	"github.com/ethereum/go-ethereum/params"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NetworksCommand inspects the configured networks.
var NetworksCommand = &cli.Command{
	Name:  "networks",
	Usage: "List networks or check their RPC endpoints",
	Subcommands: []*cli.Command{
		{
			Name:   "list",
			Usage:  "Print every network with its chain id, url and gas price",
			Action: NetworksList,
		},
		{
			Name:  "check",
			Usage: "Dial every network and compare the reported chain id",
			Flags: []cli.Flag{
				&cli.DurationFlag{
					Name:  "timeout",
					Usage: "Per-network timeout",
					Value: rpc.DefaultTimeout,
				},
			},
			Action: NetworksCheck,
		},
	},
}

func NetworksList(cCtx *cli.Context) error {
	cfg, err := common.LoadConfig(cCtx.Context)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	w := tabwriter.NewWriter(cCtx.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NETWORK\tCHAIN ID\tURL\tGAS PRICE (GWEI)\tACCOUNTS")
	for _, name := range cfg.NetworkNames() {
		n := cfg.Networks[name]

		chain := "-"
		if id, err := cfg.ChainIDFor(name); err == nil {
			chain = fmt.Sprint(id)
		}
		url := toolchain.RedactURL(n.URL)
		if n.Forking != nil {
			url = "fork " + toolchain.RedactURL(n.Forking.URL)
		}
		if url == "" {
			url = "-"
		}
		gas := "auto"
		if n.GasPrice > 0 {
			gas = p.Sprintf("%d", n.GasPrice/params.GWei)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", name, chain, url, gas, len(n.Accounts))
	}
	return w.Flush()
}

func NetworksCheck(cCtx *cli.Context) error {
	logger := common.LoggerFromContext(cCtx.Context)

	cfg, err := common.LoadConfig(cCtx.Context)
	if err != nil {
		return err
	}

	results, err := rpc.ProbeAll(cCtx.Context, cfg, cCtx.Duration("timeout"))
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		switch {
		case r.Skipped():
			logger.Debug("%s: skipped, no url", r.Network)
		case r.Err != nil:
			failed++
			logger.Error("%s: %v", r.Network, r.Err)
		case !r.Match():
			failed++
			logger.Error("%s: chain id %d, expected %d", r.Network, r.ChainID, r.Expected)
		default:
			logger.Info("%s: ok (chain %d)", r.Network, r.ChainID)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d networks failed the check", failed, len(results))
	}
	return nil
}
