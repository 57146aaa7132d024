package obs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitTracerNone(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), TracingConfig{ServiceName: "taxplanner-api", Exporter: "none"})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestInitTracerUnsupportedExporter(t *testing.T) {
	_, err := InitTracer(context.Background(), TracingConfig{Exporter: "zipkin"})
	require.Error(t, err)
}

func TestTracingSamplerClampsRatio(t *testing.T) {
	for _, ratio := range []float64{0, -1, 2} {
		desc := TracingConfig{SamplingRatio: ratio}.sampler().Description()
		require.Contains(t, desc, "root:AlwaysOnSampler", "ratio %v", ratio)
	}
	require.Contains(t, TracingConfig{SamplingRatio: 0.25}.sampler().Description(), "TraceIDRatioBased{0.25}")
}
