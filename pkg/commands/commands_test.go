package commands

import (
	"strings"
	"testing"
	"time"

	"github.com/hummus-finance/toolchain/pkg/testutils"
	"github.com/hummus-finance/toolchain/pkg/toolchain"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const anvilKey0 = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestNetworksList(t *testing.T) {
	cfg := testutils.BuildConfig(t, toolchain.Env{
		AlchemyAPI:  "https://eth-mainnet.alchemyapi.io/v2/secret",
		ForkMainnet: "1",
	})
	app := testutils.NewTestApp(cfg, NetworksCommand)

	require.NoError(t, app.Run("networks", "list"))
	out := app.Out.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 7)
	assert.True(t, strings.HasPrefix(lines[0], "NETWORK"))
	assert.NotContains(t, out, "secret")
	assert.Contains(t, out, "fork https://eth-mainnet.alchemyapi.io/***")

	fields := map[string][]string{}
	for _, line := range lines[1:] {
		f := strings.Fields(line)
		fields[f[0]] = f
	}
	assert.Equal(t, "1", fields["mainnet"][1])
	assert.Equal(t, "140", fields["mainnet"][3])
	assert.Equal(t, "42", fields["kovan"][1])
	assert.Equal(t, "-", fields["kovan"][2])
	assert.Equal(t, "auto", fields["andromeda"][3])
}

func TestNetworksCheck_AllSkipped(t *testing.T) {
	cfg := testutils.BuildConfig(t, toolchain.Env{})
	cfg.Networks[toolchain.NetworkStardust] = toolchain.Network{ChainID: toolchain.ChainStardust}
	cfg.Networks[toolchain.NetworkAndromeda] = toolchain.Network{ChainID: toolchain.ChainAndromeda}
	app := testutils.NewTestApp(cfg, NetworksCommand)

	require.NoError(t, app.Run("networks", "check", "--timeout", time.Second.String()))
	assert.Len(t, app.Logger.GetMessagesByLevel("DEBUG"), 5)
}

func TestNetworksCheck_Failure(t *testing.T) {
	cfg := testutils.BuildConfig(t, toolchain.Env{KovanAPI: "http://127.0.0.1:1"})
	cfg.Networks[toolchain.NetworkStardust] = toolchain.Network{ChainID: toolchain.ChainStardust}
	cfg.Networks[toolchain.NetworkAndromeda] = toolchain.Network{ChainID: toolchain.ChainAndromeda}
	app := testutils.NewTestApp(cfg, NetworksCommand)

	err := app.Run("networks", "check", "--timeout", "2s")
	require.ErrorContains(t, err, "1 of 5 networks failed")
	assert.True(t, app.Logger.ContainsLevel("ERROR", "kovan"))
}

func TestAccountsResolve(t *testing.T) {
	cfg := testutils.BuildConfig(t, toolchain.Env{AccountPrivateKeys: `["` + anvilKey0 + `"]`})

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"accounts", "resolve", "--network", "andromeda", "multisig"}, "0x08961b470a39bEE12435f3742aFaA70B64DCa893"},
		{[]string{"accounts", "resolve", "-n", "kovan", "multisig"}, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"},
		{[]string{"accounts", "resolve", "--network", "stardust", "HLPUSDT"}, "0xF8F6F0C986B2dE4ABf1E8AAE12ffad3A376438D2"},
		{[]string{"accounts", "resolve", "multisig", "--network", "andromeda"}, "0x08961b470a39bEE12435f3742aFaA70B64DCa893"},
		{[]string{"accounts", "resolve", "multisig", "-n", "kovan"}, "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"},
		{[]string{"accounts", "resolve", "TOKEN", "--network=andromeda"}, "0x4aAC94985cD83be30164DfE7e9AF7C054D7d2121"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			app := testutils.NewTestApp(cfg, AccountsCommand)
			require.NoError(t, app.Run(tt.args...))
			assert.Equal(t, common.HexToAddress(tt.want).Hex()+"\n", app.Out.String())
		})
	}
}

func TestAccountsResolve_Errors(t *testing.T) {
	cfg := testutils.BuildConfig(t, toolchain.Env{})

	app := testutils.NewTestApp(cfg, AccountsCommand)
	require.ErrorIs(t, app.Run("accounts", "resolve", "--network", "rinkeby", "TOKEN"), toolchain.ErrNoAccountForChain)

	app = testutils.NewTestApp(cfg, AccountsCommand)
	require.ErrorContains(t, app.Run("accounts", "resolve", "--network", "rinkeby"), "exactly one account name")

	app = testutils.NewTestApp(cfg, AccountsCommand)
	require.ErrorIs(t, app.Run("accounts", "resolve", "TOKEN", "--network", "rinkeby"), toolchain.ErrNoAccountForChain)

	app = testutils.NewTestApp(cfg, AccountsCommand)
	require.ErrorContains(t, app.Run("accounts", "resolve", "TOKEN", "--network"), "needs a value")

	app = testutils.NewTestApp(cfg, AccountsCommand)
	require.ErrorContains(t, app.Run("accounts", "resolve", "TOKEN", "ESCROW"), "got 2")
}

func TestAccountsList(t *testing.T) {
	cfg := testutils.BuildConfig(t, toolchain.Env{})
	app := testutils.NewTestApp(cfg, AccountsCommand)

	require.NoError(t, app.Run("accounts", "list", "--network", "kovan"))
	out := app.Out.String()
	assert.Contains(t, out, "STAKING")
	assert.Contains(t, out, common.HexToAddress("0x765099591EA91DFAb032dD12cBFbe5976319FdF4").Hex())
	assert.Regexp(t, `deployer\s+-\s+account #0`, out)
	assert.True(t, app.Logger.ContainsLevel("DEBUG", "deployer on kovan"))
}
