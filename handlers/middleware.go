package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// WithRecover catches panics from downstream handlers and answers with the
// standard message body, keeping faults from escaping the handler boundary.
func WithRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logrus.WithFields(logrus.Fields{
					"panic":  rec,
					"method": r.Method,
					"path":   r.URL.Path,
				}).Error("recovered from panic")
				respondMessage(w, "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// WithRequestID tags each request with an id, echoed in the response header
// and attached to the access log line.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		logrus.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
		}).Info("request")

		next.ServeHTTP(w, r)
	})
}

// WithCORS allows cross-origin calls from any origin, as the API has always
// done.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
