/* store.go
 * Contains the Store struct and NewStore function. The query methods for this
 * package are split into two files: contests.go holds the contest directory
 * lookups and records.go holds the per-question record collection lookups.
 * Authors: Karan Kamath
 */

package store

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// contestCollection is the single fixed collection. Record collections have no
// fixed names; they are resolved per question id at query time.
const contestCollection = "contests"

// questionIDPattern allow-lists the strings accepted as record collection
// names. Everything the ingestion pipeline produces (contest slugs, numeric
// question ids) fits; anything carrying Mongo-significant characters such as
// '$' or a leading '.' does not.
var questionIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,119}$`)

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Collections struct {
		Contests *mongo.Collection
	}
}

// NewStore initialises the db connection and the contests collection handle.
// Preconditions: Receives strings containing dbName and mongoURI
// Postconditions: Returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string) (*Store, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName cannot be empty")
	}

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, fmt.Errorf("connecting to storage: %w: %w", ErrStorageUnavailable, err)
	}
	db := client.Database(dbName)

	s := &Store{
		Client:   client,
		Database: db,
	}
	s.Collections.Contests = db.Collection(contestCollection)
	return s, nil
}

// Ping verifies the storage engine is reachable. mongo.Connect does not dial,
// so this is the first point a bad URI actually fails.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("pinging storage: %w: %w", ErrStorageUnavailable, err)
	}
	return nil
}

// Disconnect closes the underlying client connection.
func (s *Store) Disconnect(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

// ValidateQuestionID checks that a question identifier is usable as a record
// collection name. The identifier is used verbatim as the collection name, so
// it must pass the allow-list pattern and may not shadow Mongo's reserved
// system namespace.
// Preconditions: Receives string containing the question id
// Postconditions: Returns nil, or ErrInvalidIdentifier if the id is unusable
func ValidateQuestionID(questionID string) error {
	if !questionIDPattern.MatchString(questionID) {
		return fmt.Errorf("%w: question id %q is not a usable collection name", ErrInvalidIdentifier, questionID)
	}
	if strings.HasPrefix(questionID, "system.") {
		return fmt.Errorf("%w: question id %q shadows the system namespace", ErrInvalidIdentifier, questionID)
	}
	return nil
}

// recordCollection resolves the collection holding one question's records. The
// identifier is the lookup key; there is no registry of question collections
// and no check that some contest references the id.
func (s *Store) recordCollection(questionID string) *mongo.Collection {
	return s.Database.Collection(questionID)
}
