package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	pkgerrors "grapheditor/pkg/errors"
	"grapheditor/pkg/ratelimit"

	"go.uber.org/zap"
)

// RetryAfterer is implemented by limiters that can tell a rejected client
// when to come back
type RetryAfterer interface {
	RetryAfter(key string) time.Duration
}

// RateLimit rejects requests from client addresses that exceeded limiter.
// It expects RealIP to have run first.
func RateLimit(limiter ratelimit.Limiter, errs *pkgerrors.ErrorHandler, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				errs.Handle(w, r, err)
				return
			}
			if !allowed {
				if ra, ok := limiter.(RetryAfterer); ok {
					secs := int(math.Ceil(ra.RetryAfter(key).Seconds()))
					w.Header().Set("Retry-After", strconv.Itoa(secs))
				}
				logger.Debug("Rate limited", zap.String("client", key), zap.String("path", r.URL.Path))
				errs.Handle(w, r, pkgerrors.NewRateLimitError("too many requests"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
