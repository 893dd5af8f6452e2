package hooks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/hummus-finance/toolchain/pkg/common"
	"github.com/hummus-finance/toolchain/pkg/telemetry"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

const namespace = "HummusToolchain"

// ActionChain wraps command actions in middleware, outermost first.
type ActionChain struct {
	Processors []func(action cli.ActionFunc) cli.ActionFunc
}

func NewActionChain() *ActionChain {
	return &ActionChain{
		Processors: make([]func(action cli.ActionFunc) cli.ActionFunc, 0),
	}
}

func (ac *ActionChain) Use(processor func(action cli.ActionFunc) cli.ActionFunc) {
	ac.Processors = append(ac.Processors, processor)
}

func (ac *ActionChain) Wrap(action cli.ActionFunc) cli.ActionFunc {
	for i := len(ac.Processors) - 1; i >= 0; i-- {
		action = ac.Processors[i](action)
	}
	return action
}

// ApplyMiddleware wraps every action in commands and their subcommands.
func ApplyMiddleware(commands []*cli.Command, chain *ActionChain) {
	for _, cmd := range commands {
		if cmd.Action != nil {
			cmd.Action = chain.Wrap(cmd.Action)
		}
		if len(cmd.Subcommands) > 0 {
			ApplyMiddleware(cmd.Subcommands, chain)
		}
	}
}

// LoadEnvFile loads --env-file into the process environment. A missing file
// is not an error, and variables already set are left alone.
func LoadEnvFile(cCtx *cli.Context) error {
	path := cCtx.String("env-file")
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	common.LoggerFromContext(cCtx.Context).Debug("Loaded environment from %s", path)
	return nil
}

// WithLogger stores a logger matching --verbose on the context.
func WithLogger(cCtx *cli.Context) error {
	cCtx.Context = common.WithLogger(cCtx.Context, common.GetLoggerFromCLIContext(cCtx))
	return nil
}

// WithCommandMetricsContext starts metric collection for the invocation.
func WithCommandMetricsContext(cCtx *cli.Context) error {
	metrics := telemetry.NewMetricsContext()
	cCtx.Context = telemetry.WithMetricsContext(cCtx.Context, metrics)

	if appEnv, ok := common.AppEnvironmentFromContext(cCtx.Context); ok {
		metrics.Properties["cli_version"] = appEnv.CLIVersion
		metrics.Properties["os"] = appEnv.OS
		metrics.Properties["arch"] = appEnv.Arch
		metrics.Properties["invocation_id"] = appEnv.InvocationID
	}

	metrics.AddMetric("Count", 1)
	return nil
}

// WithMetricEmission emits the collected metrics after the action returns.
func WithMetricEmission(action cli.ActionFunc) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		err := action(cCtx)

		if _, ok := telemetry.ClientFromContext(cCtx.Context); !ok {
			appEnv, _ := common.AppEnvironmentFromContext(cCtx.Context)
			cCtx.Context = telemetry.ContextWithClient(cCtx.Context, telemetry.NewClient(appEnv, namespace))
		}
		emitTelemetryMetrics(cCtx, err)

		return err
	}
}

func emitTelemetryMetrics(cCtx *cli.Context, actionError error) {
	metrics, err := telemetry.MetricsFromContext(cCtx.Context)
	if err != nil {
		return
	}
	metrics.Properties["command"] = cCtx.Command.FullName()
	for k, v := range collectFlagValues(cCtx) {
		metrics.Properties["flag_"+k] = v
	}

	result := "Success"
	dimensions := map[string]string{}
	if actionError != nil {
		result = "Failure"
		dimensions["error"] = actionError.Error()
	}
	metrics.AddMetricWithDimensions(result, 1, dimensions)
	metrics.AddMetric("DurationMilliseconds", float64(time.Since(metrics.StartTime).Milliseconds()))

	client, ok := telemetry.ClientFromContext(cCtx.Context)
	if !ok {
		return
	}
	defer client.Close()

	logger := common.LoggerFromContext(cCtx.Context)
	for _, metric := range metrics.Snapshot() {
		if err := client.AddMetric(cCtx.Context, metric); err != nil {
			logger.Debug("failed to add metric %s: %v", metric.Name, err)
		}
	}
}

// collectFlagValues returns the command flags the user set.
func collectFlagValues(cCtx *cli.Context) map[string]string {
	flags := make(map[string]string)
	for _, flag := range cCtx.Command.Flags {
		name := flag.Names()[0]
		if !cCtx.IsSet(name) {
			continue
		}
		flags[name] = fmt.Sprint(cCtx.Value(name))
	}
	return flags
}
