package telemetry

import (
	"context"
	"testing"

	"github.com/hummus-finance/toolchain/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopClient(t *testing.T) {
	client := NewNoopClient()
	assert.True(t, IsNoopClient(client))
	require.NoError(t, client.AddMetric(context.Background(), Metric{Name: "Count", Value: 1}))
	require.NoError(t, client.Close())
}

func TestClientContext(t *testing.T) {
	client := NewNoopClient()
	got, ok := ClientFromContext(ContextWithClient(context.Background(), client))
	require.True(t, ok)
	assert.Same(t, client, got)

	_, ok = ClientFromContext(context.Background())
	assert.False(t, ok)
}

func TestNewClient_DisabledWithoutKey(t *testing.T) {
	t.Setenv(common.TelemetryKeyEnv, "")
	env := common.NewAppEnvironment("linux", "amd64", "id")
	assert.True(t, IsNoopClient(NewClient(env, "Hummus")))
}

func TestNewClient_WithKey(t *testing.T) {
	t.Setenv(common.TelemetryKeyEnv, "phc_test")
	t.Setenv(common.TelemetryEndpointEnv, "http://127.0.0.1:1")
	env := common.NewAppEnvironment("linux", "amd64", "id")

	client := NewClient(env, "Hummus")
	_, isPostHog := client.(*PostHogClient)
	assert.True(t, isPostHog)
	require.NoError(t, client.Close())
}

func TestMetricsContext_Snapshot(t *testing.T) {
	m := NewMetricsContext()
	m.Properties["command"] = "config show"
	m.AddMetric("Count", 1)
	m.AddMetricWithDimensions("Failure", 1, map[string]string{"error": "boom"})

	snap := m.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "config show", snap[0].Dimensions["command"])
	assert.Equal(t, "boom", snap[1].Dimensions["error"])

	// snapshot does not alias the stored dimensions
	snap[0].Dimensions["command"] = "x"
	assert.Empty(t, m.Metrics[0].Dimensions)
}

func TestMetricsFromContext(t *testing.T) {
	_, err := MetricsFromContext(context.Background())
	require.Error(t, err)

	m := NewMetricsContext()
	got, err := MetricsFromContext(WithMetricsContext(context.Background(), m))
	require.NoError(t, err)
	assert.Same(t, m, got)
}
