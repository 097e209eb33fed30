// Package middleware holds the HTTP wrappers shared by every service router.
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ctxKeyLog struct{}

type responseRecorder struct {
	b      int
	status int
	w      http.ResponseWriter
}

func (r *responseRecorder) Header() http.Header { return r.w.Header() }

func (r *responseRecorder) Write(p []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.w.Write(p)
	r.b += n
	return n, err
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.status = statusCode
	r.w.WriteHeader(statusCode)
}

// Logging attaches a request-scoped logger and logs one line per request.
func Logging(log logrus.FieldLogger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rr := &responseRecorder{w: w}
			reqLog := log.WithFields(logrus.Fields{
				"http.req.path":   r.URL.Path,
				"http.req.method": r.Method,
				"http.req.id":     uuid.NewString(),
			})

			ctx := context.WithValue(r.Context(), ctxKeyLog{}, reqLog)
			next.ServeHTTP(rr, r.WithContext(ctx))

			if rr.status == 0 {
				rr.status = http.StatusOK
			}
			reqLog.WithFields(logrus.Fields{
				"http.resp.took_ms": int64(time.Since(start) / time.Millisecond),
				"http.resp.status":  rr.status,
				"http.resp.bytes":   rr.b,
			}).Debug("request complete")
		})
	}
}

// Logger returns the request logger, or fallback outside Logging.
func Logger(r *http.Request, fallback logrus.FieldLogger) logrus.FieldLogger {
	if log, ok := r.Context().Value(ctxKeyLog{}).(logrus.FieldLogger); ok {
		return log
	}
	return fallback
}
