package toolchain

import (
	"github.com/ethereum/go-ethereum/common"
)

// Network is one entry of the networks table.
type Network struct {
	URL      string
	ChainID  uint64 // 0 means the tool infers it
	GasPrice uint64 // wei; 0 means auto
	Accounts []string
	Forking  *Forking
}

// Forking points the in-process network at a remote node.
type Forking struct {
	URL string
}

type Optimizer struct {
	Enabled bool
	Runs    int
}

type CompilerSettings struct {
	Optimizer Optimizer
}

type Compiler struct {
	Version  string
	Settings CompilerSettings
}

type Solidity struct {
	Compilers []Compiler
}

// Typechain controls generation of typed contract bindings.
type Typechain struct {
	OutDir string
	Target string
}

type AbiExporter struct {
	Flat         bool
	Clear        bool
	RunOnCompile bool
	Path         string
}

type SPDXLicenseIdentifier struct {
	Overwrite    bool
	RunOnCompile bool
}

type Mocha struct {
	Timeout int // milliseconds
}

type Docgen struct {
	Path         string
	Clear        bool
	RunOnCompile bool
	Except       []string
}

// Etherscan holds explorer API keys keyed by explorer network name.
type Etherscan struct {
	APIKey map[string]string
}

type GasReporter struct {
	Enabled bool
}

// AccountRef is either an index into a network's accounts or a literal address.
type AccountRef struct {
	Index   int
	Address *common.Address
	// Raw is the address as written, kept for validation
	Raw string
}

// IndexRef refers to the i-th configured account of the active network.
func IndexRef(i int) AccountRef {
	return AccountRef{Index: i}
}

// AddressRef refers to a fixed on-chain address. Malformed input is kept in
// Raw and reported by Config.Validate.
func AddressRef(hex string) AccountRef {
	addr := common.HexToAddress(hex)
	return AccountRef{Address: &addr, Raw: hex}
}

// IsAddress reports whether the ref is a literal address.
func (r AccountRef) IsAddress() bool {
	return r.Address != nil
}

// NamedAccount maps a logical role to per-chain refs with an optional fallback.
type NamedAccount struct {
	ByChain map[uint64]AccountRef
	Default *AccountRef
}

// Lookup returns the explicit ref for chainID, then Default.
func (n NamedAccount) Lookup(chainID uint64) (AccountRef, bool) {
	if ref, ok := n.ByChain[chainID]; ok {
		return ref, true
	}
	if n.Default != nil {
		return *n.Default, true
	}
	return AccountRef{}, false
}

// Config is the full toolchain configuration.
type Config struct {
	DefaultNetwork        string
	Networks              map[string]Network
	Solidity              Solidity
	Typechain             Typechain
	AbiExporter           AbiExporter
	SPDXLicenseIdentifier SPDXLicenseIdentifier
	Mocha                 Mocha
	NamedAccounts         map[string]NamedAccount
	Docgen                Docgen
	Etherscan             Etherscan
	GasReporter           GasReporter
}
