package toolchain

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/ethereum/go-ethereum/common"
)

var rpcSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
}

// Validate reports every malformed URL, address and key in the config.
// Empty URLs are allowed.
func (c *Config) Validate() error {
	var errs []error

	for _, name := range c.NetworkNames() {
		n := c.Networks[name]
		if err := validateRPCURL(n.URL); err != nil {
			errs = append(errs, fmt.Errorf("networks.%s.url: %w", name, err))
		}
		if n.Forking != nil {
			if err := validateRPCURL(n.Forking.URL); err != nil {
				errs = append(errs, fmt.Errorf("networks.%s.forking.url: %w", name, err))
			}
		}
		for i, key := range n.Accounts {
			if _, err := AddressFromPrivateKey(key); err != nil {
				errs = append(errs, fmt.Errorf("networks.%s.accounts[%d]: %w", name, i, err))
			}
		}
	}

	for _, name := range c.AccountNames() {
		acct := c.NamedAccounts[name]
		for chainID, ref := range acct.ByChain {
			if err := validateRef(ref); err != nil {
				errs = append(errs, fmt.Errorf("namedAccounts.%s.%d: %w", name, chainID, err))
			}
		}
		if acct.Default != nil {
			if err := validateRef(*acct.Default); err != nil {
				errs = append(errs, fmt.Errorf("namedAccounts.%s.default: %w", name, err))
			}
		}
	}

	return errors.Join(errs...)
}

func validateRef(ref AccountRef) error {
	if !ref.IsAddress() {
		if ref.Index < 0 {
			return fmt.Errorf("negative index %d", ref.Index)
		}
		return nil
	}
	if ref.Raw != "" && !common.IsHexAddress(ref.Raw) {
		return fmt.Errorf("invalid address %q", ref.Raw)
	}
	if *ref.Address == (common.Address{}) {
		return fmt.Errorf("zero address")
	}
	return nil
}

func validateRPCURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if !rpcSchemes[u.Scheme] {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}

// RedactURL hides everything after the host, where providers put API keys.
func RedactURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "<invalid>"
	}
	out := u.Scheme + "://" + u.Host
	if (u.Path != "" && u.Path != "/") || u.RawQuery != "" {
		out += "/***"
	}
	return out
}
