package toolchain

import "errors"

var (
	ErrInvalidAccountKeys     = errors.New("invalid " + EnvAccountPrivateKeys)
	ErrUnknownNetwork         = errors.New("unknown network")
	ErrUnknownAccount         = errors.New("unknown named account")
	ErrNoChainID              = errors.New("network has no chain id")
	ErrNoAccountForChain      = errors.New("named account has no entry for chain")
	ErrAccountIndexOutOfRange = errors.New("account index out of range")
	ErrInvalidPrivateKey      = errors.New("invalid private key")
)
