package edge

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// RequestInterceptor is called before a request is sent.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor is called after a response is received.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain manages a chain of interceptors. The HTTP layer runs
// request interceptors once per logical call, before the first send, and
// response interceptors once per terminal outcome; individual retry
// attempts are not visible to the chain.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{
		requestInterceptors:  make([]RequestInterceptor, 0),
		responseInterceptors: make([]ResponseInterceptor, 0),
	}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// ExecuteRequestInterceptors runs all request interceptors.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	for _, interceptor := range c.requestInterceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	for _, interceptor := range c.responseInterceptors {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// LoggingInterceptor logs outgoing requests.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		logger.Debug("API Request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs responses.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		logger.Debug("API Response", map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
		})

		return nil
	}
}

// HeaderInterceptor adds custom headers to requests.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		for key, value := range headers {
			req.Headers.Set(key, value)
		}

		return nil
	}
}

// Metrics holds per-endpoint call counters.
type Metrics struct {
	TotalRequests   int64
	TotalErrors     int64
	TotalLatency    time.Duration
	AverageLatency  time.Duration
	LastRequestTime time.Time
}

// MetricsCollector collects API call metrics keyed by "METHOD path".
type MetricsCollector struct {
	mu       sync.Mutex
	metrics  map[string]*Metrics
	started  map[*Request]time.Time
	onChange func(endpoint string, metrics *Metrics)
}

// NewMetricsCollector creates a new metrics collector.
func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{
		metrics: make(map[string]*Metrics),
		started: make(map[*Request]time.Time),
	}
}

// SetOnChange sets a callback invoked whenever an endpoint's metrics change.
func (m *MetricsCollector) SetOnChange(fn func(endpoint string, metrics *Metrics)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.onChange = fn
}

// GetMetrics returns a snapshot of the metrics for an endpoint, or nil.
func (m *MetricsCollector) GetMetrics(endpoint string) *Metrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	metrics, ok := m.metrics[endpoint]
	if !ok {
		return nil
	}

	snapshot := *metrics

	return &snapshot
}

// MetricsRequestInterceptor records the request start time.
func MetricsRequestInterceptor(collector *MetricsCollector) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		collector.mu.Lock()
		defer collector.mu.Unlock()

		collector.started[req] = time.Now()

		return nil
	}
}

// MetricsResponseInterceptor records response metrics.
func MetricsResponseInterceptor(collector *MetricsCollector) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		endpoint := fmt.Sprintf("%s %s", req.Method, req.Path)

		collector.mu.Lock()
		defer collector.mu.Unlock()

		metrics, ok := collector.metrics[endpoint]
		if !ok {
			metrics = &Metrics{}
			collector.metrics[endpoint] = metrics
		}

		metrics.TotalRequests++
		metrics.LastRequestTime = time.Now()

		if startTime, ok := collector.started[req]; ok {
			delete(collector.started, req)

			latency := time.Since(startTime)
			metrics.TotalLatency += latency
			metrics.AverageLatency = metrics.TotalLatency / time.Duration(metrics.TotalRequests)
		}

		if resp.StatusCode >= 400 {
			metrics.TotalErrors++
		}

		if collector.onChange != nil {
			collector.onChange(endpoint, metrics)
		}

		return nil
	}
}
