package toolchain

import "os"

// Env is the set of environment variables the configuration depends on.
// Empty strings mean unset.
type Env struct {
	AlchemyAPI         string
	RinkebyAPI         string
	KovanAPI           string
	AccountPrivateKeys string
	ForkMainnet        string
	ReportGas          string
}

// EnvFromLookup reads Env through lookup, e.g. os.LookupEnv.
func EnvFromLookup(lookup func(string) (string, bool)) Env {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}
	return Env{
		AlchemyAPI:         get(EnvAlchemyAPI),
		RinkebyAPI:         get(EnvRinkebyAPI),
		KovanAPI:           get(EnvKovanAPI),
		AccountPrivateKeys: get(EnvAccountPrivateKeys),
		ForkMainnet:        get(EnvForkMainnet),
		ReportGas:          get(EnvReportGas),
	}
}

// EnvFromOS reads Env from the process environment.
func EnvFromOS() Env {
	return EnvFromLookup(os.LookupEnv)
}

// EnvFromMap is EnvFromLookup over a plain map.
func EnvFromMap(m map[string]string) Env {
	return EnvFromLookup(func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	})
}
