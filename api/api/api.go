/* api.go
 * This file contains the public methods for interacting with this package.
 * The API is the retrieval service: it translates caller requests into store
 * lookups and returns the results unmodified. All narrowing (threshold,
 * search, sort, pagination) happens client side, so every method returns the
 * full dataset for the requested scope.
 * Authors: Karan Kamath
 */

package api

import (
	"context"
	"fmt"
	"time"

	"github.com/KaranKamath21/Plagify/api/shared"
	"github.com/KaranKamath21/Plagify/api/store"
)

// pingTimeout bounds the startup reachability check.
const pingTimeout = 5 * time.Second

// API provides read access to the contest directory and the per-question
// record stores.
type API struct {
	Store store.Interface
}

// NewAPI creates a new API instance with the provided configuration and
// verifies the storage engine is reachable.
// Preconditions: Receives strings containing dbName and mongoURI
// Postconditions: Returns pointer to the API object, or error if it occurs
func NewAPI(dbName string, mongoURI string) (*API, error) {
	if dbName == "" || mongoURI == "" {
		return nil, fmt.Errorf("dbName and mongoURI are required")
	}

	s, err := store.NewStore(dbName, mongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := s.Ping(ctx); err != nil {
		return nil, err
	}

	return &API{Store: s}, nil
}

// ListContests returns the full contest directory snapshot in storage order.
func (a *API) ListContests(ctx context.Context) ([]shared.Contest, error) {
	return a.Store.ListContests(ctx)
}

// GetContest returns a single contest by its id.
func (a *API) GetContest(ctx context.Context, id string) (shared.Contest, error) {
	return a.Store.GetContest(ctx, id)
}

// ListQuestionRecords returns every plagiarism record for a question id. An
// identifier with no dataset yields an empty slice, never a not-found error;
// the caller cannot distinguish a clean question from an unknown one.
func (a *API) ListQuestionRecords(ctx context.Context, questionID string) ([]shared.PlagiarismRecord, error) {
	return a.Store.ListRecords(ctx, questionID)
}
