package telemetry

import (
	"context"
	"os"

	"github.com/hummus-finance/toolchain/pkg/common"

	"github.com/posthog/posthog-go"
)

const defaultPostHogEndpoint = "https://us.i.posthog.com"

// PostHogClient sends metrics as PostHog capture events.
type PostHogClient struct {
	namespace      string
	client         posthog.Client
	appEnvironment *common.AppEnvironment
}

// NewClient returns a PostHog client when an API key is configured and a
// NoopClient otherwise.
func NewClient(env *common.AppEnvironment, namespace string) Client {
	key := os.Getenv(common.TelemetryKeyEnv)
	if key == "" || env == nil {
		return NewNoopClient()
	}
	ph, err := NewPostHogClient(env, namespace, key, endpoint())
	if err != nil {
		return NewNoopClient()
	}
	return ph
}

func NewPostHogClient(env *common.AppEnvironment, namespace, apiKey, endpoint string) (*PostHogClient, error) {
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		return nil, err
	}
	return &PostHogClient{
		namespace:      namespace,
		client:         client,
		appEnvironment: env,
	}, nil
}

func (c *PostHogClient) AddMetric(_ context.Context, metric Metric) error {
	if c == nil || c.client == nil {
		return nil
	}

	props := posthog.NewProperties().
		Set("name", metric.Name).
		Set("value", metric.Value)
	for k, v := range metric.Dimensions {
		props.Set(k, v)
	}

	return c.client.Enqueue(posthog.Capture{
		DistinctId: c.appEnvironment.InvocationID,
		Event:      c.namespace,
		Properties: props,
	})
}

// Close flushes queued events; errors are ignored.
func (c *PostHogClient) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	_ = c.client.Close()
	return nil
}

func endpoint() string {
	if e := os.Getenv(common.TelemetryEndpointEnv); e != "" {
		return e
	}
	return defaultPostHogEndpoint
}
