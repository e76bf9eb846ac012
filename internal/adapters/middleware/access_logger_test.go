package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/svc-project-messaging/internal/infrastructure"
)

func newBufferedLogger(buf *bytes.Buffer) infrastructure.Logger {
	logger := zerolog.New(buf)

	return infrastructure.Logger{Logger: &logger}
}

func TestAccessLogger_Middleware(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		path          string
		statusCode    int
		requestID     string
		skipAccessLog bool
		expectedLevel string
	}{
		{
			name:          "successful request logs info level",
			path:          "/readyz",
			statusCode:    http.StatusOK,
			expectedLevel: "info",
		},
		{
			name:          "client error logs warn level",
			path:          "/unknown",
			statusCode:    http.StatusNotFound,
			expectedLevel: "warn",
		},
		{
			name:          "not ready logs error level",
			path:          "/readyz",
			statusCode:    http.StatusServiceUnavailable,
			expectedLevel: "error",
		},
		{
			name:          "includes request_id when present",
			path:          "/healthz",
			statusCode:    http.StatusOK,
			requestID:     "req_12345",
			expectedLevel: "info",
		},
		{
			name:          "skipped access log does not log",
			path:          "/healthz",
			statusCode:    http.StatusOK,
			skipAccessLog: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			accessLogger := NewAccessLogger(newBufferedLogger(&buf))

			handler := accessLogger.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.statusCode)
				_, _ = w.Write([]byte("ok"))
			}))

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.requestID != "" {
				req.Header.Set("X-Request-ID", tc.requestID)
			}

			if tc.skipAccessLog {
				req = req.WithContext(WithoutAccessLog(req.Context()))
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			if tc.skipAccessLog {
				assert.Zero(t, buf.Len())

				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

			assert.Equal(t, tc.expectedLevel, entry["level"])
			assert.Equal(t, "http_access", entry["component"])
			assert.Equal(t, tc.path, entry["path"])
			assert.EqualValues(t, tc.statusCode, entry["status_code"])
			assert.EqualValues(t, 2, entry["response_size_bytes"])
			assert.Equal(t, "HTTP request completed", entry["message"])

			if tc.requestID != "" {
				assert.Equal(t, tc.requestID, entry["request_id"])
			} else {
				assert.NotContains(t, entry, "request_id")
			}
		})
	}
}
