package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheckFilter_Middleware(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name            string
		path            string
		logHealthChecks bool
		shouldLog       bool
	}{
		{name: "liveness probe is quiet", path: "/healthz"},
		{name: "readiness probe is quiet", path: "/readyz"},
		{name: "scrape is quiet", path: "/metrics"},
		{name: "other paths are logged", path: "/debug", shouldLog: true},
		{name: "suffix match is not enough", path: "/v1/healthz", shouldLog: true},
		{name: "probes are logged when enabled", path: "/healthz", logHealthChecks: true, shouldLog: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			handler := NewHealthCheckFilter(tc.logHealthChecks).Middleware(
				NewAccessLogger(newBufferedLogger(&buf)).Middleware(
					http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
						w.WriteHeader(http.StatusOK)
					}),
				),
			)

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.shouldLog, buf.Len() > 0)
		})
	}
}
