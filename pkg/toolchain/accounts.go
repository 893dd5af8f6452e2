package toolchain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// ChainIDFor returns the chain id of network name. Networks without an
// explicit chain id fall back to their well-known id.
func (c *Config) ChainIDFor(name string) (uint64, error) {
	n, ok := c.Networks[name]
	if ok && n.ChainID != 0 {
		return n.ChainID, nil
	}
	switch name {
	case NetworkMainnet:
		return ChainMainnet, nil
	case NetworkHardhat:
		// the in-process network exists even when not configured
		return ChainHardhat, nil
	}
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownNetwork, name)
	}
	return 0, fmt.Errorf("%w: %s", ErrNoChainID, name)
}

// AccountsForChain returns every named account with a ref on chainID.
func (c *Config) AccountsForChain(chainID uint64) map[string]AccountRef {
	out := make(map[string]AccountRef)
	for name, acct := range c.NamedAccounts {
		if ref, ok := acct.Lookup(chainID); ok {
			out[name] = ref
		}
	}
	return out
}

// ResolveAccount returns the address the named account maps to on network.
func (c *Config) ResolveAccount(name, network string) (common.Address, error) {
	acct, ok := c.NamedAccounts[name]
	if !ok {
		return common.Address{}, fmt.Errorf("%w: %s", ErrUnknownAccount, name)
	}
	chainID, err := c.ChainIDFor(network)
	if err != nil {
		return common.Address{}, err
	}
	ref, ok := acct.Lookup(chainID)
	if !ok {
		return common.Address{}, fmt.Errorf("%w: %s on %d", ErrNoAccountForChain, name, chainID)
	}
	return c.resolveRef(ref, network)
}

func (c *Config) resolveRef(ref AccountRef, network string) (common.Address, error) {
	if ref.IsAddress() {
		return *ref.Address, nil
	}
	keys := c.Networks[network].Accounts
	if ref.Index < 0 || ref.Index >= len(keys) {
		return common.Address{}, fmt.Errorf("%w: index %d, %s has %d accounts", ErrAccountIndexOutOfRange, ref.Index, network, len(keys))
	}
	return AddressFromPrivateKey(keys[ref.Index])
}

// AddressFromPrivateKey derives the account address of a hex secp256k1 key.
func AddressFromPrivateKey(hexKey string) (common.Address, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}
