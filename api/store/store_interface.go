/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 * Authors: Karan Kamath
 */

package store

import (
	"context"

	"github.com/KaranKamath21/Plagify/api/shared"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	ListContests(ctx context.Context) ([]shared.Contest, error)
	GetContest(ctx context.Context, id string) (shared.Contest, error)
	ListRecords(ctx context.Context, questionID string) ([]shared.PlagiarismRecord, error)
	Ping(ctx context.Context) error
	Disconnect(ctx context.Context) error
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)
