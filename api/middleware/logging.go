// ABOUTME: Request logging middleware for API endpoints
// ABOUTME: Assigns request IDs and logs request details, response status and timing

package middleware

import (
	"context"
	"net/http"
	"time"

	"anifinder-api/core/interfaces"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID on requests and responses
const RequestIDHeader = "X-Request-ID"

// SlowRequestThreshold is the duration above which a request is logged as slow.
// Provider timeouts default to 15s, so a normal two-search resolution stays below it.
var SlowRequestThreshold = 5 * time.Second

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.ResponseWriter.WriteHeader(code)
		rw.written = true
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// requestIDKey is the context key for request ID
type requestIDKey struct{}

// WithRequestID stores id in ctx
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID returns the request ID stored in ctx, or ""
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// RequestLoggingMiddleware creates a middleware that logs all requests.
// An incoming X-Request-ID is reused; otherwise a new UUID is assigned.
func RequestLoggingMiddleware(logger interfaces.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" || len(requestID) > 128 {
				requestID = uuid.New().String()
			}

			w.Header().Set(RequestIDHeader, requestID)
			r = r.WithContext(WithRequestID(r.Context(), requestID))

			start := time.Now()

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			logger.Info("Request started", RequestLogFields(r))

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)

			logger.Info("Request completed", map[string]interface{}{
				"request_id":  requestID,
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      wrapped.statusCode,
				"duration":    duration.String(),
				"duration_ms": duration.Milliseconds(),
			})

			if duration > SlowRequestThreshold {
				logger.Warn("Slow request detected", map[string]interface{}{
					"request_id": requestID,
					"method":     r.Method,
					"path":       r.URL.Path,
					"duration":   duration.String(),
				})
			}

			if wrapped.statusCode >= 500 {
				logger.Error("Request failed with server error", map[string]interface{}{
					"request_id": requestID,
					"method":     r.Method,
					"path":       r.URL.Path,
					"status":     wrapped.statusCode,
				})
			}
		})
	}
}

// LoggingRoundTripper implements http.RoundTripper with logging of
// outbound provider calls, tagged with the inbound request ID
type LoggingRoundTripper struct {
	Transport http.RoundTripper
	Logger    interfaces.Logger
}

// RoundTrip logs outgoing HTTP requests
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	start := time.Now()
	requestID := GetRequestID(req.Context())

	t.Logger.Debug("Outgoing HTTP request", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        req.URL.String(),
	})

	resp, err := transport.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.Logger.Warn("Outgoing HTTP request failed", map[string]interface{}{
			"request_id": requestID,
			"method":     req.Method,
			"url":        req.URL.String(),
			"duration":   duration.String(),
			"error":      err.Error(),
		})
		return nil, err
	}

	t.Logger.Debug("Outgoing HTTP response", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        req.URL.String(),
		"status":     resp.StatusCode,
		"duration":   duration.String(),
	})

	return resp, nil
}

// RequestLogFields extracts common log fields from a request
func RequestLogFields(r *http.Request) map[string]interface{} {
	return map[string]interface{}{
		"request_id": GetRequestID(r.Context()),
		"method":     r.Method,
		"path":       r.URL.Path,
		"query":      r.URL.RawQuery,
		"remote_ip":  extractIP(r, nil),
		"user_agent": r.UserAgent(),
	}
}
