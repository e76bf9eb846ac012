package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/svc-project-messaging/internal/mocks"
)

func TestMetricsMiddleware_RecordsRoutePattern(t *testing.T) {
	t.Parallel()

	metrics := &mocks.FakeMetrics{}

	router := chi.NewRouter()
	router.Use(NewMetricsMiddleware(metrics).Middleware)
	router.Post("/deliveries/{tag}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("queued"))
	})

	req := httptest.NewRequest(http.MethodPost, "/deliveries/42", strings.NewReader("payload"))
	router.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, metrics.RecordHTTPRequestCallCount())

	_, method, path, statusCode, duration, requestSize, responseSize := metrics.RecordHTTPRequestArgsForCall(0)
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/deliveries/{tag}", path)
	assert.Equal(t, http.StatusAccepted, statusCode)
	assert.Positive(t, duration)
	assert.EqualValues(t, len("payload"), requestSize)
	assert.EqualValues(t, len("queued"), responseSize)
}

func TestMetricsMiddleware_UnmatchedRoute(t *testing.T) {
	t.Parallel()

	metrics := &mocks.FakeMetrics{}

	handler := NewMetricsMiddleware(metrics).Middleware(http.NotFoundHandler())
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/random/path", nil))

	require.Equal(t, 1, metrics.RecordHTTPRequestCallCount())

	_, _, path, statusCode, _, _, _ := metrics.RecordHTTPRequestArgsForCall(0)
	assert.Equal(t, "unmatched", path)
	assert.Equal(t, http.StatusNotFound, statusCode)
}
