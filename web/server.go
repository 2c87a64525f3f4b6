//go:build !test

/* server.go
 * Contains the HTTP server Start function that listens for incoming
 * connections. Excluded from test coverage as it blocks and requires real
 * network binding; tests exercise the router directly.
 * Authors: Karan Kamath
 */

package web

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Start initializes and starts the HTTP server with the given configuration
func Start(cfg Config) error {
	s := NewServer(cfg)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Router(cfg.AllowedOrigins),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.logger.Info("HTTP server listening", zap.String("addr", cfg.Addr))
	return srv.ListenAndServe()
}
