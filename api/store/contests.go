/* contests.go
 * Contains the methods for interacting with the contests collection
 * Authors: Karan Kamath
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/KaranKamath21/Plagify/api/shared"
)

// ListContests fetches every stored contest in storage order. No sort is
// applied here; presentation ordering is the client pipeline's job.
// Preconditions: Receives a context
// Postconditions: Returns slice of contests, or an error if the storage
// engine cannot be queried
func (s *Store) ListContests(ctx context.Context) ([]shared.Contest, error) {
	cursor, err := s.Collections.Contests.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("fetching contests from db: %w: %w", ErrStorageUnavailable, err)
	}

	// Unpack the cursor into a slice. The slice starts non-nil so an empty
	// directory serialises as [] rather than null.
	contests := []shared.Contest{}
	if err = cursor.All(ctx, &contests); err != nil {
		return nil, fmt.Errorf("unpacking contest cursor: %w: %w", ErrStorageUnavailable, err)
	}

	return contests, nil
}

// GetContest fetches a single contest by its hex object id.
// Preconditions: Receives a context and a string containing the contest id
// Postconditions: Returns the contest, ErrInvalidIdentifier for a malformed
// id, ErrNotFound when no contest matches, or ErrStorageUnavailable on a
// storage fault
func (s *Store) GetContest(ctx context.Context, id string) (shared.Contest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return shared.Contest{}, fmt.Errorf("%w: contest id %q is not a valid object id", ErrInvalidIdentifier, id)
	}

	var contest shared.Contest
	err = s.Collections.Contests.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&contest)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return shared.Contest{}, fmt.Errorf("contest %s: %w", id, ErrNotFound)
		}
		return shared.Contest{}, fmt.Errorf("fetching contest from db: %w: %w", ErrStorageUnavailable, err)
	}

	return contest, nil
}
