/* models.go
 * Contains the configuration and server structs for the web package
 * Authors: Karan Kamath
 */

package web

import (
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/KaranKamath21/Plagify/api/api"
)

// Config holds the configuration for the web server
type Config struct {
	Addr           string
	API            *api.API
	Logger         *zap.Logger
	AllowedOrigins []string
	// RateLimit is the sustained requests-per-second budget shared by all
	// callers; RateBurst is the bucket size. Zero values disable limiting.
	RateLimit rate.Limit
	RateBurst int
}

// Server is the HTTP server that handles API requests
type Server struct {
	api     *api.API
	logger  *zap.Logger
	limiter *rate.Limiter
}

// NewServer builds a Server from the config. A nil logger is replaced with a
// no-op logger so handlers never nil-check it.
func NewServer(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(cfg.RateLimit, cfg.RateBurst)
	}

	return &Server{
		api:     cfg.API,
		logger:  logger,
		limiter: limiter,
	}
}
