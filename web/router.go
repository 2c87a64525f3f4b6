/* router.go
 * Contains the route table and middleware chain. Split from server.go so
 * tests can drive the full router with httptest without binding a socket.
 * Authors: Karan Kamath
 */

package web

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Router builds the route table wrapped in the middleware chain:
// CORS -> request logging -> rate limit -> routes. Only GET routes exist;
// the API has no write surface.
func (s *Server) Router(allowedOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/contests", s.ListContestsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/contests/{id}", s.GetContestHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/questions/{questionId}", s.ListQuestionRecordsHandler).Methods(http.MethodGet)

	var h http.Handler = r
	h = s.rateLimitMiddleware(h)
	h = s.loggingMiddleware(h)

	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	return cors(h)
}

// rateLimitMiddleware rejects requests once the shared token bucket is empty.
// A nil limiter disables the check.
func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow() {
			s.writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: "Too many requests"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs one line per request with the handling duration
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
