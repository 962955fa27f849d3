package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/KirkDiggler/rpg-tactics/internal/telemetry"
)

func TestTracerUsesGlobalProvider(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, span := telemetry.Tracer("turn").Start(context.Background(), "turn.click")
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "turn.click", ended[0].Name())
	assert.Equal(t, "rpg-tactics/turn", ended[0].InstrumentationScope().Name)
}

func TestNoopTracerRecordsNothing(t *testing.T) {
	_, span := telemetry.NoopTracer().Start(context.Background(), "ignored")
	defer span.End()

	assert.False(t, span.SpanContext().IsValid())
	assert.False(t, span.IsRecording())
}
