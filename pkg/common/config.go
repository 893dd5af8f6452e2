package common

import (
	"context"
	"fmt"

	"github.com/hummus-finance/toolchain/pkg/toolchain"
)

type configContextKey struct{}

// WithConfig stores a prebuilt configuration, mainly for tests.
func WithConfig(ctx context.Context, cfg *toolchain.Config) context.Context {
	return context.WithValue(ctx, configContextKey{}, cfg)
}

// LoadConfig returns the configuration stored on ctx, or builds one from the
// process environment.
func LoadConfig(ctx context.Context) (*toolchain.Config, error) {
	if cfg, ok := ctx.Value(configContextKey{}).(*toolchain.Config); ok && cfg != nil {
		return cfg, nil
	}
	cfg, err := toolchain.Build(toolchain.EnvFromOS())
	if err != nil {
		return nil, fmt.Errorf("load toolchain config: %w", err)
	}
	return cfg, nil
}
