package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/architeacher/svc-project-messaging/internal/infrastructure"
)

type contextKey string

const (
	skipAccessLogKey contextKey = "skip_access_log"
)

type AccessLogger struct {
	logger infrastructure.Logger
}

func NewAccessLogger(logger infrastructure.Logger) *AccessLogger {
	return &AccessLogger{
		logger: logger.Component("http_access"),
	}
}

// WithoutAccessLog marks the request so the access logger skips it.
func WithoutAccessLog(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipAccessLogKey, true)
}

func (a *AccessLogger) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if skip, ok := r.Context().Value(skipAccessLogKey).(bool); ok && skip {
			next.ServeHTTP(w, r)

			return
		}

		startTime := time.Now()
		recorder := NewResponseRecorder(w)

		next.ServeHTTP(recorder, r)

		duration := time.Since(startTime)

		logEvent := a.eventFor(recorder.StatusCode()).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote_addr", r.RemoteAddr).
			Str("user_agent", r.UserAgent()).
			Int("status_code", recorder.StatusCode()).
			Int64("response_size_bytes", recorder.BytesWritten()).
			Dur("duration", duration)

		if requestID := r.Header.Get("X-Request-ID"); requestID != "" {
			logEvent.Str("request_id", requestID)
		}

		logEvent.Msg("HTTP request completed")
	})
}

func (a *AccessLogger) eventFor(statusCode int) *zerolog.Event {
	switch {
	case statusCode >= http.StatusInternalServerError:
		return a.logger.Error()
	case statusCode >= http.StatusBadRequest:
		return a.logger.Warn()
	default:
		return a.logger.Info()
	}
}
