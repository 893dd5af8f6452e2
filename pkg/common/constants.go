package common

const (
	// DefaultEnvFile is loaded before every command when present
	DefaultEnvFile = ".env"

	// DefaultFormat is the render format of `config show`
	DefaultFormat = "yaml"

	// TelemetryKeyEnv enables command metrics when set
	TelemetryKeyEnv = "HUMMUS_POSTHOG_KEY"

	// TelemetryEndpointEnv overrides the metrics endpoint
	TelemetryEndpointEnv = "HUMMUS_POSTHOG_ENDPOINT"
)
