package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/flamesResource6/food-ordering-backend/logger"
)

// Context keys for request-scoped values
type contextKey string

const RequestIDKey contextKey = "request_id"

// RequestLogger tags every request with an id and logs method, path
// and duration after the handler finishes.
func RequestLogger(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", requestID)

			start := time.Now()
			ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))

			log.Info("http_request", requestID,
				fmt.Sprintf("%s %s completed in %s", r.Method, r.URL.Path, time.Since(start)))
		})
	}
}

// GetRequestID retrieves the request id from the request context.
func GetRequestID(r *http.Request) string {
	requestID, _ := r.Context().Value(RequestIDKey).(string)
	return requestID
}
