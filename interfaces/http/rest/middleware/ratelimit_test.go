package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgerrors "grapheditor/pkg/errors"
	"grapheditor/pkg/ratelimit"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRateLimit(t *testing.T) {
	logger := zap.NewNop()
	limiter := ratelimit.NewSlidingWindowLimiter(1, time.Minute)
	handler := RateLimit(limiter, pkgerrors.NewErrorHandler(logger, false), logger)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		}),
	)

	send := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusCreated, send("10.0.0.1:1234").Code)

	rec := send("10.0.0.1:5678")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), `"type":"RATE_LIMITED"`)

	assert.Equal(t, http.StatusCreated, send("10.0.0.2:1234").Code)
}
