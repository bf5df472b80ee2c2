package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/config"
	"github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/telemetry"
)

func TestSetupDisabled(t *testing.T) {
	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, config.TelemetryConfig{Enabled: false, Endpoint: "http://localhost:4318"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(ctx))

	shutdown, err = telemetry.Setup(ctx, config.TelemetryConfig{Enabled: true})
	require.NoError(t, err)
	assert.NoError(t, shutdown(ctx))
}

func TestNewProviderRecordsSpans(t *testing.T) {
	ctx := context.Background()
	recorder := tracetest.NewSpanRecorder()

	tp, err := telemetry.NewProvider(ctx, "bags-test", sdktrace.WithSpanProcessor(recorder))
	require.NoError(t, err)
	defer func() { _ = tp.Shutdown(ctx) }()

	_, span := tp.Tracer("test").Start(ctx, "ActionResolver.Resolve")
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "ActionResolver.Resolve", ended[0].Name())

	found := false
	for _, attr := range ended[0].Resource().Attributes() {
		if string(attr.Key) == "service.name" {
			found = true
			assert.Equal(t, "bags-test", attr.Value.AsString())
		}
	}
	assert.True(t, found)
}
