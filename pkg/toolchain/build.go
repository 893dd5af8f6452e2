package toolchain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Build returns the configuration for env. Overrides are applied on top of
// Defaults in a fixed order: accounts, mainnet fork, gas reporter.
func Build(env Env) (*Config, error) {
	cfg := Defaults(env)

	if env.AccountPrivateKeys != "" {
		keys, err := ParseAccountKeys(env.AccountPrivateKeys)
		if err != nil {
			return nil, err
		}
		for _, name := range accountNetworks {
			n := cfg.Networks[name]
			n.Accounts = append([]string(nil), keys...)
			cfg.Networks[name] = n
		}
	}

	if env.ForkMainnet != "" {
		cfg.Networks[NetworkHardhat] = Network{
			Forking: &Forking{URL: env.AlchemyAPI},
			ChainID: ChainMainnet,
		}
	}

	cfg.GasReporter = GasReporter{Enabled: env.ReportGas != ""}

	return cfg, nil
}

// ParseAccountKeys decodes a JSON array of private keys.
func ParseAccountKeys(raw string) ([]string, error) {
	var keys []string
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAccountKeys, err)
	}
	if keys == nil {
		// "null" decodes without error
		return nil, fmt.Errorf("%w: expected a JSON array", ErrInvalidAccountKeys)
	}
	return keys, nil
}

// Network looks up a network by name.
func (c *Config) Network(name string) (Network, bool) {
	n, ok := c.Networks[name]
	return n, ok
}

// NetworkNames returns the configured network names in sorted order.
func (c *Config) NetworkNames() []string {
	names := make([]string, 0, len(c.Networks))
	for name := range c.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AccountNames returns the named account roles in sorted order.
func (c *Config) AccountNames() []string {
	names := make([]string, 0, len(c.NamedAccounts))
	for name := range c.NamedAccounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
