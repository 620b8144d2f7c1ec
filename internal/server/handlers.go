package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/user/pwa-builder/internal/logging"
)

// StaticHandler serves files below root
func StaticHandler(root string) http.Handler {
	return http.FileServer(http.Dir(root))
}

// RedirectHandler answers every request with a permanent redirect to the same
// request URI on the HTTPS origin.
func RedirectHandler(hostname string, httpsPort int) http.Handler {
	origin := fmt.Sprintf("https://%s:%d", hostname, httpsPort)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Location", origin+r.URL.RequestURI())
		w.WriteHeader(http.StatusMovedPermanently)
	})
}

// instrument wraps next with access logging and, when metrics is set, request metrics
func instrument(name string, logger *logging.Logger, metrics *Metrics, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		elapsed := time.Since(start)
		if metrics != nil {
			metrics.Observe(name, r.Method, recorder.status, elapsed)
		}
		logger.Debug("request",
			logging.String("server", name),
			logging.String("method", r.Method),
			logging.String("uri", r.RequestURI),
			logging.Int("status", recorder.status),
			logging.Duration("duration", elapsed),
			logging.String("remote", r.RemoteAddr),
		)
	})
}

// statusRecorder captures the status code written by the wrapped handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Unwrap returns the underlying ResponseWriter for http.ResponseController
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
