/* records.go
 * Contains the methods for interacting with the per-question record
 * collections. Each question's records live in their own collection named by
 * the question id, so a lookup resolves the collection by name instead of
 * filtering a shared table.
 * Authors: Karan Kamath
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/KaranKamath21/Plagify/api/shared"
)

// ListRecords fetches every plagiarism record stored for a question. The
// question id names the collection directly; an id that was never ingested
// resolves to an empty collection, so the result is an empty slice, not an
// error. A caller cannot tell "no plagiarism found" from "unknown question",
// and that is the intended contract.
// Preconditions: Receives a context and a string containing the question id
// Postconditions: Returns slice of records (possibly empty),
// ErrInvalidIdentifier if the id is not a usable collection name, or
// ErrStorageUnavailable on a storage fault. No ordering is guaranteed.
func (s *Store) ListRecords(ctx context.Context, questionID string) ([]shared.PlagiarismRecord, error) {
	if err := ValidateQuestionID(questionID); err != nil {
		return nil, err
	}

	cursor, err := s.recordCollection(questionID).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("fetching records for question %s: %w: %w", questionID, ErrStorageUnavailable, err)
	}

	records := []shared.PlagiarismRecord{}
	if err = cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("unpacking record cursor: %w: %w", ErrStorageUnavailable, err)
	}

	return records, nil
}
