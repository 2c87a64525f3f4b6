/* main.go
 * The entrypoint for running the Plagify retrieval service.
 * Usage: go run main.go -addr=":5000" -db="plagify"
 * Authors: Karan Kamath
 */

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/KaranKamath21/Plagify/api/api"
	"github.com/KaranKamath21/Plagify/web"
)

// Shared request budget for the whole API surface. Generous: the client
// fetches full datasets, so a browsing session is only a handful of requests.
const (
	requestsPerSecond = 50
	requestBurst      = 100
)

func main() {
	// A missing .env file is fine in deployed environments where the
	// variables come from the process environment
	_ = godotenv.Load()

	addrPtr := flag.String("addr", "", "Listen address, e.g. :5000. Overrides PORT")
	dbPtr := flag.String("db", "", "Database name. Overrides DB_NAME")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		logger.Fatal("MONGO_URI is not set")
	}

	dbName := *dbPtr
	if dbName == "" {
		dbName = os.Getenv("DB_NAME")
	}
	if dbName == "" {
		dbName = "plagify"
	}

	addr := *addrPtr
	if addr == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "5000"
		}
		addr = ":" + port
	}

	a, err := api.NewAPI(dbName, mongoURI)
	if err != nil {
		logger.Fatal("failed to initialize API", zap.Error(err))
	}
	defer func() {
		if err := a.Store.Disconnect(context.TODO()); err != nil {
			logger.Error("failed to disconnect from storage", zap.Error(err))
		}
	}()
	logger.Info("storage connected", zap.String("database", dbName))

	var origins []string
	if raw := os.Getenv("ALLOWED_ORIGINS"); raw != "" {
		origins = strings.Split(raw, ",")
	}

	err = web.Start(web.Config{
		Addr:           addr,
		API:            a,
		Logger:         logger,
		AllowedOrigins: origins,
		RateLimit:      rate.Limit(requestsPerSecond),
		RateBurst:      requestBurst,
	})
	if err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
