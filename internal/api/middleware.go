package api

import (
	"event-staffing-service/internal/api/handlers"
	"event-staffing-service/internal/platform/auth"
	"event-staffing-service/internal/platform/obs"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// statusWriter captures the final HTTP status code and number of bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// Record implicit 200 responses when handlers write without calling WriteHeader.
func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestIDMiddleware reuses a caller-supplied X-Request-ID or mints one, and
// stores it in the request context for obs.Time.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(requestIDHeader))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(obs.WithRequestID(r.Context(), id)))
	})
}

func loggingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}

			next.ServeHTTP(sw, r)

			status := sw.status
			if status == 0 {
				status = http.StatusOK
			}

			logger.Info("request",
				zap.String("req_id", obs.RequestID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int("bytes", sw.bytes),
				zap.Int64("dur_ms", time.Since(start).Milliseconds()),
			)
		})
	}
}

// requireAuth guards next with HTTP Basic Auth. Without credentials the
// route is closed unless allowOpen is set.
func requireAuth(creds *auth.Credentials, allowOpen bool, next http.Handler) http.Handler {
	if creds == nil {
		if allowOpen {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlers.Forbidden(w, r, "settings are disabled: no admin auth file configured")
		})
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, password, ok := r.BasicAuth()
		if !ok {
			handlers.Unauthorized(w, r)
			return
		}

		valid, err := creds.Check(user, password)
		if err != nil {
			zap.L().Error("verify admin password failed",
				zap.String("req_id", obs.RequestID(r.Context())),
				zap.Error(err),
			)
		}
		if !valid {
			handlers.Unauthorized(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
