/* test_mocks.go
 * Contains mock structures for testing the API package and the web handlers
 * Authors: Karan Kamath
 */

package api

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/KaranKamath21/Plagify/api/shared"
	"github.com/KaranKamath21/Plagify/api/store"
)

// MockStore implements the store Interface for testing
type MockStore struct {
	// Storage for mock data. ContestOrder preserves insertion order because
	// ListContests must reproduce storage order, not map order.
	Contests     map[string]shared.Contest
	ContestOrder []string
	Records      map[string][]shared.PlagiarismRecord

	// Error injection for testing error paths
	ListContestsError error
	GetContestError   error
	ListRecordsError  error
	PingError         error
}

// NewMockStore creates a new MockStore with empty datasets
func NewMockStore() *MockStore {
	return &MockStore{
		Contests: make(map[string]shared.Contest),
		Records:  make(map[string][]shared.PlagiarismRecord),
	}
}

// Ensure MockStore implements the store Interface
var _ store.Interface = (*MockStore)(nil)

// AddContest seeds a contest, assigning an id when the fixture has none
func (m *MockStore) AddContest(c shared.Contest) shared.Contest {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	key := c.ID.Hex()
	if _, exists := m.Contests[key]; !exists {
		m.ContestOrder = append(m.ContestOrder, key)
	}
	m.Contests[key] = c
	return c
}

// AddRecords seeds a question's record collection
func (m *MockStore) AddRecords(questionID string, records []shared.PlagiarismRecord) {
	m.Records[questionID] = append(m.Records[questionID], records...)
}

// ListContests mock implementation
func (m *MockStore) ListContests(ctx context.Context) ([]shared.Contest, error) {
	if m.ListContestsError != nil {
		return nil, m.ListContestsError
	}
	contests := []shared.Contest{}
	for _, key := range m.ContestOrder {
		contests = append(contests, m.Contests[key])
	}
	return contests, nil
}

// GetContest mock implementation. Mirrors the real store's error contract:
// malformed hex ids fail validation before any lookup.
func (m *MockStore) GetContest(ctx context.Context, id string) (shared.Contest, error) {
	if m.GetContestError != nil {
		return shared.Contest{}, m.GetContestError
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return shared.Contest{}, fmt.Errorf("%w: contest id %q is not a valid object id", store.ErrInvalidIdentifier, id)
	}
	contest, ok := m.Contests[id]
	if !ok {
		return shared.Contest{}, fmt.Errorf("contest %s: %w", id, store.ErrNotFound)
	}
	return contest, nil
}

// ListRecords mock implementation. An unknown question id yields an empty
// slice, matching the real store.
func (m *MockStore) ListRecords(ctx context.Context, questionID string) ([]shared.PlagiarismRecord, error) {
	if m.ListRecordsError != nil {
		return nil, m.ListRecordsError
	}
	if err := store.ValidateQuestionID(questionID); err != nil {
		return nil, err
	}
	records := []shared.PlagiarismRecord{}
	records = append(records, m.Records[questionID]...)
	return records, nil
}

// Ping mock implementation
func (m *MockStore) Ping(ctx context.Context) error {
	return m.PingError
}

// Disconnect mock implementation
func (m *MockStore) Disconnect(ctx context.Context) error {
	return nil
}
