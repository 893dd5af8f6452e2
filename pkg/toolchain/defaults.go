package toolchain

import (
	"github.com/ethereum/go-ethereum/params"
)

const (
	stardustURL  = "https://stardust.metis.io/?owner=588"
	andromedaURL = "https://andromeda.metis.io/?owner=1088"

	solcVersion    = "0.8.9"
	optimizerRuns  = 10000
	mochaTimeoutMs = 200000
)

// defaultNetworks builds the networks table from env URLs.
func defaultNetworks(env Env) map[string]Network {
	return map[string]Network{
		NetworkMainnet: {
			URL:      env.AlchemyAPI,
			GasPrice: 140 * params.GWei,
		},
		NetworkRinkeby: {
			URL:      env.RinkebyAPI,
			ChainID:  ChainRinkeby,
			GasPrice: 5 * params.GWei,
		},
		NetworkKovan: {
			URL:      env.KovanAPI,
			ChainID:  ChainKovan,
			GasPrice: 2 * params.GWei,
		},
		NetworkStardust: {
			URL:     stardustURL,
			ChainID: ChainStardust,
		},
		NetworkAndromeda: {
			URL:     andromedaURL,
			ChainID: ChainAndromeda,
		},
	}
}

// perChain builds a NamedAccount of literal addresses on kovan, stardust and andromeda.
func perChain(kovan, stardust, andromeda string) NamedAccount {
	return NamedAccount{
		ByChain: map[uint64]AccountRef{
			ChainKovan:     AddressRef(kovan),
			ChainStardust:  AddressRef(stardust),
			ChainAndromeda: AddressRef(andromeda),
		},
	}
}

func defaultNamedAccounts() map[string]NamedAccount {
	first := IndexRef(0)
	multisigDefault := IndexRef(0)

	return map[string]NamedAccount{
		"deployer": {Default: &first},
		"multisig": {
			ByChain: map[uint64]AccountRef{
				ChainAndromeda: AddressRef("0x08961b470a39bEE12435f3742aFaA70B64DCa893"),
			},
			Default: &multisigDefault,
		},

		// contracts
		"STAKING": perChain( // MasterHummusV2
			"0x765099591EA91DFAb032dD12cBFbe5976319FdF4",
			"0x838b73a945cF42e07f316a9d0a5715e8B5B973c9",
			"0x9cadd693cDb2B118F00252Bb3be4C6Df6A74d42C",
		),
		"TOKEN": perChain( // Hum
			"0xe8Eb8149ac20d75C5fAE054FE5C3A9688aCa8c67",
			"0x8b2AF921F3eaef0d9D6a47B65E1F7F83bEfB2f1f",
			"0x4aAC94985cD83be30164DfE7e9AF7C054D7d2121",
		),
		"ESCROW": perChain( // veHum
			"0x955514d7e1DB34BB612c7a0Bbd63D25eA02dD29A",
			"0xd5A0760D55ad46B6A1C46D28725e4C117312a7aD",
			"0x89351BEAA4AbbA563710864051a8C253E7b3E16d",
		),
		"WHITELIST": perChain(
			"0x927BADD28b3AF1156e9cCAb2F0FA3AFb13af8b65",
			"0x3878edF8E00fD8e29812A9379303F539ea012C5F",
			"0xd5A67E95f21155f147be33562158a453Aa423840",
		),

		// lp assets
		"HLPDAI": perChain(
			"0x53211440f038dBBe9DE1B9fa58757cb430ecb752",
			"0xaFFbDb406d41b9a1AFD041FeBD412A2dd236244C",
			"0xd5A0760D55ad46B6A1C46D28725e4C117312a7aD",
		),
		"HLPUSDC": perChain(
			"0x0F6f2E19Bc2Ad2b847dd329A0D89DC0043003754",
			"0xa6ae03Ff644156401205Afb6d241f245E3714F78",
			"0x9E3F3Be65fEc3731197AFF816489eB1Eb6E6b830",
		),
		"HLPUSDT": perChain(
			"0x44ba84500C5CeEB235653BA4952bc61F376847Ec",
			"0xF8F6F0C986B2dE4ABf1E8AAE12ffad3A376438D2",
			"0x9F51f0D7F500343E969D28010C7Eb0Db1bCaAEf9",
		),
	}
}

// Defaults returns the configuration before any env-driven overrides.
func Defaults(env Env) *Config {
	return &Config{
		DefaultNetwork: NetworkHardhat,
		Networks:       defaultNetworks(env),
		Solidity: Solidity{
			Compilers: []Compiler{
				{
					Version: solcVersion,
					Settings: CompilerSettings{
						Optimizer: Optimizer{Enabled: true, Runs: optimizerRuns},
					},
				},
			},
		},
		Typechain: Typechain{
			OutDir: "./build/typechain/",
			Target: "ethers-v5",
		},
		AbiExporter: AbiExporter{
			Flat:         true,
			Clear:        true,
			RunOnCompile: true,
			Path:         "./build/abi",
		},
		SPDXLicenseIdentifier: SPDXLicenseIdentifier{
			Overwrite:    false,
			RunOnCompile: true,
		},
		Mocha:         Mocha{Timeout: mochaTimeoutMs},
		NamedAccounts: defaultNamedAccounts(),
		Docgen: Docgen{
			Path:         "./docs",
			Clear:        true,
			RunOnCompile: false,
			Except:       []string{"/test/*", "/mock/*", "/hardhat-proxy/*"},
		},
		Etherscan: Etherscan{
			APIKey: map[string]string{
				"metisAndromeda": "api-key",
				"metisStardust":  "api-key",
			},
		},
	}
}
