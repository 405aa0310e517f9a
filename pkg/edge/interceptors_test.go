package edge_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edgewise-io/edgeapi/pkg/edge"
)

func TestInterceptorChainRunsInOrder(t *testing.T) {
	t.Parallel()

	chain := edge.NewInterceptorChain()

	var order []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *edge.Request) error {
		order = append(order, "first")

		return nil
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *edge.Request) error {
		order = append(order, "second")

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &edge.Request{})
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestInterceptorChainStopsOnError(t *testing.T) {
	t.Parallel()

	chain := edge.NewInterceptorChain()

	var reached bool

	chain.AddRequestInterceptor(func(ctx context.Context, req *edge.Request) error {
		return assert.AnError
	})
	chain.AddRequestInterceptor(func(ctx context.Context, req *edge.Request) error {
		reached = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &edge.Request{})
	require.ErrorIs(t, err, assert.AnError)
	assert.False(t, reached, "later interceptors must not run after a failure")
}

func TestHeaderInterceptor(t *testing.T) {
	t.Parallel()

	interceptor := edge.HeaderInterceptor(map[string]string{
		"X-Request-Source": "edgectl",
	})

	req := &edge.Request{}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "edgectl", req.Headers.Get("X-Request-Source"))
}

func TestMetricsCollector(t *testing.T) {
	t.Parallel()

	collector := edge.NewMetricsCollector()
	requestHook := edge.MetricsRequestInterceptor(collector)
	responseHook := edge.MetricsResponseInterceptor(collector)

	ctx := context.Background()

	for i := 0; i < 3; i++ {
		req := &edge.Request{Method: http.MethodGet, Path: "/zones"}

		require.NoError(t, requestHook(ctx, req))
		require.NoError(t, responseHook(ctx, req, &edge.Response{StatusCode: http.StatusOK}))
	}

	failing := &edge.Request{Method: http.MethodGet, Path: "/zones"}
	require.NoError(t, requestHook(ctx, failing))
	require.NoError(t, responseHook(ctx, failing, &edge.Response{StatusCode: http.StatusNotFound}))

	metrics := collector.GetMetrics("GET /zones")
	require.NotNil(t, metrics)
	assert.Equal(t, int64(4), metrics.TotalRequests)
	assert.Equal(t, int64(1), metrics.TotalErrors)
	assert.False(t, metrics.LastRequestTime.IsZero())

	assert.Nil(t, collector.GetMetrics("GET /accounts"))
}

func TestMetricsCollectorOnChange(t *testing.T) {
	t.Parallel()

	collector := edge.NewMetricsCollector()

	var notified []string

	collector.SetOnChange(func(endpoint string, metrics *edge.Metrics) {
		notified = append(notified, endpoint)
	})

	responseHook := edge.MetricsResponseInterceptor(collector)

	req := &edge.Request{Method: http.MethodDelete, Path: "/zones/z1"}
	require.NoError(t, responseHook(context.Background(), req, &edge.Response{StatusCode: http.StatusOK}))

	assert.Equal(t, []string{"DELETE /zones/z1"}, notified)
}

func TestLoggingInterceptors(t *testing.T) {
	t.Parallel()

	logger := &recordingLogger{}

	req := &edge.Request{Method: http.MethodGet, Path: "/zones"}

	require.NoError(t, edge.LoggingInterceptor(logger)(context.Background(), req))
	require.NoError(t, edge.LoggingResponseInterceptor(logger)(context.Background(), req,
		&edge.Response{StatusCode: http.StatusOK}))

	require.Len(t, logger.entries, 2)
	assert.Equal(t, "API Request", logger.entries[0].msg)
	assert.Equal(t, "/zones", logger.entries[0].fields["path"])
	assert.Equal(t, http.StatusOK, logger.entries[1].fields["status_code"])
}

type logEntry struct {
	msg    string
	fields map[string]interface{}
}

// recordingLogger implements edge.Logger for assertions.
type recordingLogger struct {
	entries []logEntry
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{msg: msg, fields: fields})
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{msg: msg, fields: fields})
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{msg: msg, fields: fields})
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.entries = append(l.entries, logEntry{msg: msg, fields: fields})
}
