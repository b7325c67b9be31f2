package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newBufferLogger() (*zap.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	core := zapcore.NewCore(encoder, zapcore.AddSync(&buf), zapcore.DebugLevel)
	return zap.New(core), &buf
}

// contextWithRecordedSpan starts a span on an SDK tracer so its context is valid
func contextWithRecordedSpan(t *testing.T) (context.Context, trace.Span) {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(tracetest.NewSpanRecorder()))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return tp.Tracer("test").Start(context.Background(), "test-span")
}

func TestWithContext(t *testing.T) {
	logger, err := NewForEnvironment("development")
	require.NoError(t, err)

	ctx := WithContext(context.Background(), logger)

	assert.Equal(t, logger, FromContext(ctx))
}

func TestFromContext_NotFound(t *testing.T) {
	logger := FromContext(context.Background())

	assert.NotNil(t, logger)
	assert.NotPanics(t, func() { logger.Info("test") })
}

func TestFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), LoggerKey, "not a logger")

	assert.NotPanics(t, func() { FromContext(ctx).Info("test") })
}

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-123")

	assert.Equal(t, "req-123", GetRequestID(ctx))
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestWithCustomerID(t *testing.T) {
	ctx := WithCustomerID(context.Background(), 42)

	assert.Equal(t, int64(42), GetCustomerID(ctx))
	assert.Zero(t, GetCustomerID(context.Background()))
}

func TestMultipleWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "first-id")
	ctx = WithRequestID(ctx, "second-id")

	assert.Equal(t, "second-id", GetRequestID(ctx))
}

func TestGetTraceID(t *testing.T) {
	t.Run("empty without span", func(t *testing.T) {
		assert.Empty(t, GetTraceID(context.Background()))
		assert.Empty(t, GetSpanID(context.Background()))
	})

	t.Run("empty for invalid span context", func(t *testing.T) {
		ctx, span := noop.NewTracerProvider().Tracer("test").Start(context.Background(), "test-span")
		defer span.End()

		assert.Empty(t, GetTraceID(ctx))
		assert.Empty(t, GetSpanID(ctx))
	})

	t.Run("returns ids of a recorded span", func(t *testing.T) {
		ctx, span := contextWithRecordedSpan(t)
		defer span.End()

		assert.Equal(t, span.SpanContext().TraceID().String(), GetTraceID(ctx))
		assert.Equal(t, span.SpanContext().SpanID().String(), GetSpanID(ctx))
	})
}

func TestContextLogger_EnrichesWithContextFields(t *testing.T) {
	baseLogger, buf := newBufferLogger()

	ctx, span := contextWithRecordedSpan(t)
	defer span.End()
	ctx = WithRequestID(ctx, "req-123")
	ctx = WithCustomerID(ctx, 7)
	ctx = WithContext(ctx, baseLogger)

	L(ctx).Info("test message", zap.String("extra_field", "extra_value"))

	output := buf.String()
	assert.Contains(t, output, `"request_id":"req-123"`)
	assert.Contains(t, output, `"customer_id":7`)
	assert.Contains(t, output, `"trace_id":"`+span.SpanContext().TraceID().String()+`"`)
	assert.Contains(t, output, `"span_id":"`+span.SpanContext().SpanID().String()+`"`)
	assert.Contains(t, output, `"extra_field":"extra_value"`)
	assert.Contains(t, output, `"msg":"test message"`)
}

func TestContextLogger_EmptyContextFields(t *testing.T) {
	baseLogger, buf := newBufferLogger()

	WithLogger(context.Background(), baseLogger).Info("test")

	output := buf.String()
	assert.Contains(t, output, `"msg":"test"`)
	assert.NotContains(t, output, `"request_id"`)
	assert.NotContains(t, output, `"customer_id"`)
	assert.NotContains(t, output, `"trace_id"`)
}

func TestContextLogger_With(t *testing.T) {
	baseLogger, buf := newBufferLogger()

	WithLogger(context.Background(), baseLogger).
		With(zap.String("field1", "value1")).
		With(zap.String("field2", "value2")).
		Warn("chained")

	assert.Contains(t, buf.String(), `"field1":"value1"`)
	assert.Contains(t, buf.String(), `"field2":"value2"`)
}

func TestContextLogger_NilLogger(t *testing.T) {
	cl := &ContextLogger{ctx: context.Background()}

	assert.NotPanics(t, func() {
		cl.Info("test")
		cl.Zap().Debug("zap")
		cl.Sugar().Infof("sugar %d", 1)
	})
}
