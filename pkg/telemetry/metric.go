package telemetry

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Metric is a named value with string dimensions.
type Metric struct {
	Value      float64           `json:"value"`
	Name       string            `json:"name"`
	Dimensions map[string]string `json:"dimensions"`
}

// MetricsContext collects metrics during one command invocation.
type MetricsContext struct {
	mu         sync.Mutex
	StartTime  time.Time         `json:"start_time"`
	Metrics    []Metric          `json:"metrics"`
	Properties map[string]string `json:"properties"`
}

type metricsContextKey struct{}

func NewMetricsContext() *MetricsContext {
	return &MetricsContext{
		StartTime:  time.Now(),
		Metrics:    make([]Metric, 0),
		Properties: make(map[string]string),
	}
}

func WithMetricsContext(ctx context.Context, metrics *MetricsContext) context.Context {
	return context.WithValue(ctx, metricsContextKey{}, metrics)
}

func MetricsFromContext(ctx context.Context) (*MetricsContext, error) {
	metrics, ok := ctx.Value(metricsContextKey{}).(*MetricsContext)
	if !ok {
		return nil, errors.New("no metrics context")
	}
	return metrics, nil
}

func (m *MetricsContext) AddMetric(name string, value float64) {
	m.AddMetricWithDimensions(name, value, nil)
}

func (m *MetricsContext) AddMetricWithDimensions(name string, value float64, dimensions map[string]string) {
	if dimensions == nil {
		dimensions = make(map[string]string)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Metrics = append(m.Metrics, Metric{Name: name, Value: value, Dimensions: dimensions})
}

// Snapshot returns the metrics with the context properties merged into each
// metric's dimensions.
func (m *MetricsContext) Snapshot() []Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Metric, len(m.Metrics))
	for i, metric := range m.Metrics {
		dims := make(map[string]string, len(metric.Dimensions)+len(m.Properties))
		for k, v := range m.Properties {
			dims[k] = v
		}
		for k, v := range metric.Dimensions {
			dims[k] = v
		}
		out[i] = Metric{Name: metric.Name, Value: metric.Value, Dimensions: dims}
	}
	return out
}
