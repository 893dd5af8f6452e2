package export

import (
	"strconv"

	"github.com/hummus-finance/toolchain/pkg/toolchain"

	"gopkg.in/yaml.v3"
)

const redacted = "<redacted>"

// document mirrors the key layout the build tool reads.
type document struct {
	DefaultNetwork        string                `yaml:"defaultNetwork"`
	Networks              map[string]networkDoc `yaml:"networks"`
	Solidity              solidityDoc           `yaml:"solidity"`
	Typechain             typechainDoc          `yaml:"typechain"`
	AbiExporter           abiExporterDoc        `yaml:"abiExporter"`
	SPDXLicenseIdentifier spdxDoc               `yaml:"spdxLicenseIdentifier"`
	Mocha                 mochaDoc              `yaml:"mocha"`
	NamedAccounts         map[string]any        `yaml:"namedAccounts"`
	Docgen                docgenDoc             `yaml:"docgen"`
	Etherscan             etherscanDoc          `yaml:"etherscan"`
	GasReporter           gasReporterDoc        `yaml:"gasReporter"`
}

type networkDoc struct {
	URL      *string       `yaml:"url,omitempty"`
	ChainID  uint64        `yaml:"chainId,omitempty"`
	GasPrice uint64        `yaml:"gasPrice,omitempty"`
	Accounts *[]*yaml.Node `yaml:"accounts,omitempty"` // nil omitted, empty kept as []
	Forking  *forkingDoc   `yaml:"forking,omitempty"`
}

type forkingDoc struct {
	URL string `yaml:"url"`
}

type solidityDoc struct {
	Compilers []compilerDoc `yaml:"compilers"`
}

type compilerDoc struct {
	Version  string `yaml:"version"`
	Settings struct {
		Optimizer struct {
			Enabled bool `yaml:"enabled"`
			Runs    int  `yaml:"runs"`
		} `yaml:"optimizer"`
	} `yaml:"settings"`
}

type typechainDoc struct {
	OutDir string `yaml:"outDir"`
	Target string `yaml:"target"`
}

type abiExporterDoc struct {
	Flat         bool   `yaml:"flat"`
	Clear        bool   `yaml:"clear"`
	RunOnCompile bool   `yaml:"runOnCompile"`
	Path         string `yaml:"path"`
}

type spdxDoc struct {
	Overwrite    bool `yaml:"overwrite"`
	RunOnCompile bool `yaml:"runOnCompile"`
}

type mochaDoc struct {
	Timeout int `yaml:"timeout"`
}

type docgenDoc struct {
	Path         string   `yaml:"path"`
	Clear        bool     `yaml:"clear"`
	RunOnCompile bool     `yaml:"runOnCompile"`
	Except       []string `yaml:"except"`
}

type etherscanDoc struct {
	APIKey map[string]string `yaml:"apiKey"`
}

type gasReporterDoc struct {
	Enabled bool `yaml:"enabled"`
}

func newDocument(cfg *toolchain.Config, opts Options) document {
	doc := document{
		DefaultNetwork: cfg.DefaultNetwork,
		Networks:       make(map[string]networkDoc, len(cfg.Networks)),
		Typechain:      typechainDoc(cfg.Typechain),
		AbiExporter:    abiExporterDoc(cfg.AbiExporter),
		SPDXLicenseIdentifier: spdxDoc{
			Overwrite:    cfg.SPDXLicenseIdentifier.Overwrite,
			RunOnCompile: cfg.SPDXLicenseIdentifier.RunOnCompile,
		},
		Mocha:         mochaDoc{Timeout: cfg.Mocha.Timeout},
		NamedAccounts: make(map[string]any, len(cfg.NamedAccounts)),
		Docgen: docgenDoc{
			Path:         cfg.Docgen.Path,
			Clear:        cfg.Docgen.Clear,
			RunOnCompile: cfg.Docgen.RunOnCompile,
			Except:       cfg.Docgen.Except,
		},
		Etherscan:   etherscanDoc{APIKey: cfg.Etherscan.APIKey},
		GasReporter: gasReporterDoc{Enabled: cfg.GasReporter.Enabled},
	}

	for name, n := range cfg.Networks {
		doc.Networks[name] = newNetworkDoc(n, opts)
	}

	for _, c := range cfg.Solidity.Compilers {
		var cd compilerDoc
		cd.Version = c.Version
		cd.Settings.Optimizer.Enabled = c.Settings.Optimizer.Enabled
		cd.Settings.Optimizer.Runs = c.Settings.Optimizer.Runs
		doc.Solidity.Compilers = append(doc.Solidity.Compilers, cd)
	}

	for name, acct := range cfg.NamedAccounts {
		doc.NamedAccounts[name] = namedAccountValue(acct)
	}

	return doc
}

func newNetworkDoc(n toolchain.Network, opts Options) networkDoc {
	nd := networkDoc{
		ChainID:  n.ChainID,
		GasPrice: n.GasPrice,
	}
	// a forked network has no url of its own
	if n.Forking == nil || n.URL != "" {
		u := n.URL
		nd.URL = &u
	}
	if n.Forking != nil {
		nd.Forking = &forkingDoc{URL: n.Forking.URL}
	}
	if n.Accounts != nil {
		keys := make([]*yaml.Node, len(n.Accounts))
		for i, key := range n.Accounts {
			if opts.Redact {
				key = redacted
			}
			keys[i] = quoted(key)
		}
		nd.Accounts = &keys
	}
	return nd
}

// namedAccountValue renders a default-only account as a bare ref and
// anything else as a table keyed by chain id plus "default".
func namedAccountValue(acct toolchain.NamedAccount) any {
	if len(acct.ByChain) == 0 && acct.Default != nil {
		return refValue(*acct.Default)
	}
	table := make(map[string]any, len(acct.ByChain)+1)
	for chainID, ref := range acct.ByChain {
		table[strconv.FormatUint(chainID, 10)] = refValue(ref)
	}
	if acct.Default != nil {
		table["default"] = refValue(*acct.Default)
	}
	return table
}

func refValue(ref toolchain.AccountRef) any {
	if ref.IsAddress() {
		return quoted(ref.Address.Hex())
	}
	return ref.Index
}

// quoted keeps hex strings from being read back as integers.
func quoted(s string) *yaml.Node {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!str",
		Value: s,
		Style: yaml.DoubleQuotedStyle,
	}
}
