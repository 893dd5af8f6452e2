package rpc

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hummus-finance/toolchain/pkg/toolchain"

	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds a single probe.
const DefaultTimeout = 10 * time.Second

// ErrNoURL marks a network that has nothing to dial.
var ErrNoURL = errors.New("no rpc url configured")

// Result is the outcome of probing one network.
type Result struct {
	Network  string
	URL      string
	ChainID  uint64
	Expected uint64
	Err      error
}

// Skipped reports whether the network had no url.
func (r Result) Skipped() bool {
	return errors.Is(r.Err, ErrNoURL)
}

// Match reports whether the node answered with the expected chain id.
func (r Result) Match() bool {
	return r.Err == nil && r.ChainID == r.Expected
}

// ProbeURL dials url and returns the node's chain id.
func ProbeURL(ctx context.Context, url string) (uint64, error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return 0, fmt.Errorf("dial: %w", err)
	}
	defer client.Close()

	id, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("eth_chainId: %w", err)
	}
	if !id.IsUint64() {
		return 0, fmt.Errorf("chain id %s out of range", id)
	}
	return id.Uint64(), nil
}

// ProbeNetwork checks the network's endpoint against its configured chain id.
// The forking url is used for networks that fork a remote node.
func ProbeNetwork(ctx context.Context, cfg *toolchain.Config, name string, timeout time.Duration) Result {
	res := Result{Network: name}

	n, ok := cfg.Network(name)
	if !ok {
		res.Err = fmt.Errorf("%w: %s", toolchain.ErrUnknownNetwork, name)
		return res
	}
	res.URL = n.URL
	if n.Forking != nil {
		res.URL = n.Forking.URL
	}
	if res.URL == "" {
		res.Err = ErrNoURL
		return res
	}

	expected, err := cfg.ChainIDFor(name)
	if err != nil {
		res.Err = err
		return res
	}
	res.Expected = expected
	if n.Forking != nil {
		// the fork target is mainnet whatever the local chain id is
		res.Expected = toolchain.ChainMainnet
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	pctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res.ChainID, res.Err = ProbeURL(pctx, res.URL)
	return res
}

// ProbeAll probes every configured network concurrently. Results are sorted
// by network name; per-network failures are carried in Result.Err.
func ProbeAll(ctx context.Context, cfg *toolchain.Config, timeout time.Duration) ([]Result, error) {
	names := cfg.NetworkNames()

	var (
		mu      sync.Mutex
		results = make([]Result, 0, len(names))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, name := range names {
		g.Go(func() error {
			res := ProbeNetwork(gctx, cfg, name, timeout)
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return ctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Network < results[j].Network })
	return results, nil
}
