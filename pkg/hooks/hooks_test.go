package hooks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hummus-finance/toolchain/pkg/common"
	"github.com/hummus-finance/toolchain/pkg/common/logger"
	"github.com/hummus-finance/toolchain/pkg/telemetry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

type mockTelemetryClient struct {
	metrics []telemetry.Metric
	closed  bool
}

func (m *mockTelemetryClient) AddMetric(_ context.Context, metric telemetry.Metric) error {
	m.metrics = append(m.metrics, metric)
	return nil
}

func (m *mockTelemetryClient) Close() error {
	m.closed = true
	return nil
}

func (m *mockTelemetryClient) names() []string {
	out := make([]string, len(m.metrics))
	for i, metric := range m.metrics {
		out[i] = metric.Name
	}
	return out
}

func newApp(mock *mockTelemetryClient, action cli.ActionFunc) *cli.App {
	cmd := &cli.Command{
		Name:   "show",
		Flags:  []cli.Flag{&cli.StringFlag{Name: "format"}},
		Action: action,
	}
	chain := NewActionChain()
	chain.Use(WithMetricEmission)
	ApplyMiddleware([]*cli.Command{cmd}, chain)

	return &cli.App{
		Name:     "hummus-toolchain",
		Flags:    common.GlobalFlags,
		Commands: []*cli.Command{cmd},
		Before: func(cCtx *cli.Context) error {
			cCtx.Context = common.WithLogger(cCtx.Context, logger.NewNoopLogger())
			cCtx.Context = telemetry.ContextWithClient(cCtx.Context, mock)
			return WithCommandMetricsContext(cCtx)
		},
	}
}

func TestWithMetricEmission_Success(t *testing.T) {
	mock := &mockTelemetryClient{}
	app := newApp(mock, func(*cli.Context) error { return nil })

	require.NoError(t, app.Run([]string{"hummus-toolchain", "show", "--format", "json"}))

	assert.Equal(t, []string{"Count", "Success", "DurationMilliseconds"}, mock.names())
	assert.True(t, mock.closed)
	dims := mock.metrics[0].Dimensions
	assert.Equal(t, "json", dims["flag_format"])
	assert.Contains(t, dims["command"], "show")
}

func TestWithMetricEmission_Failure(t *testing.T) {
	mock := &mockTelemetryClient{}
	app := newApp(mock, func(*cli.Context) error { return errors.New("bad keys") })

	err := app.Run([]string{"hummus-toolchain", "show"})
	require.EqualError(t, err, "bad keys")

	require.Len(t, mock.metrics, 3)
	assert.Equal(t, "Failure", mock.metrics[1].Name)
	assert.Equal(t, "bad keys", mock.metrics[1].Dimensions["error"])
}

func TestActionChain_Order(t *testing.T) {
	var calls []string
	mk := func(name string) func(cli.ActionFunc) cli.ActionFunc {
		return func(next cli.ActionFunc) cli.ActionFunc {
			return func(cCtx *cli.Context) error {
				calls = append(calls, name)
				return next(cCtx)
			}
		}
	}
	chain := NewActionChain()
	chain.Use(mk("outer"))
	chain.Use(mk("inner"))

	cmds := []*cli.Command{{
		Name: "parent",
		Subcommands: []*cli.Command{{
			Name:   "child",
			Action: func(*cli.Context) error { calls = append(calls, "action"); return nil },
		}},
	}}
	ApplyMiddleware(cmds, chain)

	app := &cli.App{Commands: cmds}
	require.NoError(t, app.Run([]string{"app", "parent", "child"}))
	assert.Equal(t, []string{"outer", "inner", "action"}, calls)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("KOVAN_API=https://kovan.from.file\nREPORT_GAS=1\n"), 0644))

	t.Setenv("KOVAN_API", "")
	require.NoError(t, os.Unsetenv("KOVAN_API"))
	t.Setenv("REPORT_GAS", "already-set")

	var kovan, gas string
	app := &cli.App{
		Flags:  common.GlobalFlags,
		Before: LoadEnvFile,
		Action: func(*cli.Context) error {
			kovan = os.Getenv("KOVAN_API")
			gas = os.Getenv("REPORT_GAS")
			return nil
		},
	}
	require.NoError(t, app.Run([]string{"app", "--env-file", envPath}))

	assert.Equal(t, "https://kovan.from.file", kovan)
	assert.Equal(t, "already-set", gas)
}

func TestLoadEnvFile_Missing(t *testing.T) {
	app := &cli.App{
		Flags:  common.GlobalFlags,
		Before: LoadEnvFile,
		Action: func(*cli.Context) error { return nil },
	}
	require.NoError(t, app.Run([]string{"app", "--env-file", filepath.Join(t.TempDir(), "nope.env")}))
}
