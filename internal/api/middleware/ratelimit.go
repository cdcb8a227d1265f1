package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/atu-cloudnative/catalog-service/internal/domain"
)

// Allower is satisfied by *ratelimiter.Limiter.
type Allower interface {
	Allow() bool
}

// RateLimit rejects requests with 429 once the shared token bucket is empty.
// onLimited may be nil.
func RateLimit(lim Allower, logger *zap.Logger, onLimited func()) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if lim.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			if onLimited != nil {
				onLimited()
			}
			logger.Debug("request rate limited",
				zap.String("path", r.URL.Path),
				zap.String("correlation_id", GetCorrelationID(r.Context())),
			)

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": domain.ErrRateLimited.Error()})
		})
	}
}
