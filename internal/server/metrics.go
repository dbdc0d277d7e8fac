package server

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/pibulus/cosmic-horoscope-sub001/internal/logging"
)

// Metrics records request count, error responses and cumulative handling time.
type Metrics struct {
	requests  int64
	errors    int64
	durationN int64
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		atomic.AddInt64(&m.requests, 1)
		atomic.AddInt64(&m.durationN, elapsed.Nanoseconds())
		if rec.status >= 400 {
			atomic.AddInt64(&m.errors, 1)
		}
		logging.Debug("%s %s %d %s", r.Method, r.URL.Path, rec.status, elapsed)
	})
}

func (m *Metrics) Snapshot() (requests, errors int64, total time.Duration) {
	return atomic.LoadInt64(&m.requests), atomic.LoadInt64(&m.errors), time.Duration(atomic.LoadInt64(&m.durationN))
}
