package client

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Belphemur/Aggregator/internal/metrics"
)

// instrumentedTransport records upstream request counts and latencies per resource
type instrumentedTransport struct {
	next     http.RoundTripper
	resource string
}

// RoundTrip implements http.RoundTripper
func (t *instrumentedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	metrics.UpstreamRequestDuration.WithLabelValues(t.resource).Observe(time.Since(start).Seconds())

	code := "error"
	if err == nil {
		code = strconv.Itoa(resp.StatusCode)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(t.resource, code).Inc()

	return resp, err
}

// withResourceInstrumentation returns a shallow copy of httpClient whose transport
// reports metrics under the given resource label. The underlying transport, and
// therefore the connection pool, stays shared.
func withResourceInstrumentation(httpClient *http.Client, resource string) *http.Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	next := httpClient.Transport
	if next == nil {
		next = http.DefaultTransport
	}

	instrumented := *httpClient
	instrumented.Transport = &instrumentedTransport{next: next, resource: resource}
	return &instrumented
}
