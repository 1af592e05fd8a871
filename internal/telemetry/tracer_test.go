package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"club-ads/internal/config/configs"
)

func TestInitTracer_DisabledWithoutEndpoint(t *testing.T) {
	tp, shutdown, err := InitTracer(context.Background(), configs.Tracing{}, "test")
	require.NoError(t, err)
	_, isSDK := tp.(*sdktrace.TracerProvider)
	assert.False(t, isSDK)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracer_ExportsSpans(t *testing.T) {
	var hits atomic.Int32
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/traces" {
			hits.Add(1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer collector.Close()

	tp, shutdown, err := InitTracer(context.Background(), configs.Tracing{
		Endpoint:    collector.URL,
		ServiceName: "club-ads-test",
		SampleRatio: 1,
	}, "test")
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "serve")
	span.End()

	require.NoError(t, shutdown(context.Background()))
	assert.Equal(t, int32(1), hits.Load())
}
