package toolchain

// Network names
const (
	NetworkHardhat   = "hardhat"
	NetworkMainnet   = "mainnet"
	NetworkRinkeby   = "rinkeby"
	NetworkKovan     = "kovan"
	NetworkStardust  = "stardust"
	NetworkAndromeda = "andromeda"
)

// Chain ids
const (
	ChainMainnet   uint64 = 1
	ChainRinkeby   uint64 = 4
	ChainKovan     uint64 = 42
	ChainStardust  uint64 = 588
	ChainAndromeda uint64 = 1088

	// Chain id of the in-process network when nothing overrides it
	ChainHardhat uint64 = 31337
)

// Environment variables read by Build
const (
	EnvAlchemyAPI         = "ALCHEMY_API"
	EnvRinkebyAPI         = "RINKEBY_API"
	EnvKovanAPI           = "KOVAN_API"
	EnvAccountPrivateKeys = "ACCOUNT_PRIVATE_KEYS"
	EnvForkMainnet        = "FORK_MAINNET"
	EnvReportGas          = "REPORT_GAS"
)

// accountNetworks receive ACCOUNT_PRIVATE_KEYS when it is set
var accountNetworks = []string{
	NetworkMainnet,
	NetworkRinkeby,
	NetworkKovan,
	NetworkStardust,
	NetworkAndromeda,
}
