/* contests_test.go
 * Contains unit tests for contests.go using mtest mock deployments
 * Authors: Karan Kamath
 */

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// mockStore builds a Store wired to the mtest mock deployment
func mockStore(mt *mtest.T) *Store {
	s := &Store{
		Client:   mt.Client,
		Database: mt.DB,
	}
	s.Collections.Contests = mt.Coll
	return s
}

func TestListContests_ReturnsAllInStorageOrder(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns contests in the order the cursor yields them", func(mt *mtest.T) {
		s := mockStore(mt)

		first := SampleContest(0)
		second := SampleContest(1)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plagify.contests", mtest.FirstBatch,
			MustBsonD(first), MustBsonD(second)))

		contests, err := s.ListContests(context.Background())
		require.NoError(mt, err)
		require.Len(mt, contests, 2)
		assert.Equal(mt, first, contests[0])
		assert.Equal(mt, second, contests[1])
	})
}

func TestListContests_EmptyDirectory(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty directory yields empty non-nil slice", func(mt *mtest.T) {
		s := mockStore(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plagify.contests", mtest.FirstBatch))

		contests, err := s.ListContests(context.Background())
		require.NoError(mt, err)
		assert.NotNil(mt, contests)
		assert.Empty(mt, contests)
	})
}

func TestListContests_StorageFault(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("command error surfaces as ErrStorageUnavailable", func(mt *mtest.T) {
		s := mockStore(mt)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Message: "interrupted at shutdown",
			Name:    "InterruptedAtShutdown",
		}))

		_, err := s.ListContests(context.Background())
		require.Error(mt, err)
		assert.ErrorIs(mt, err, ErrStorageUnavailable)
	})
}

func TestGetContest_Found(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns the matching contest", func(mt *mtest.T) {
		s := mockStore(mt)

		contest := SampleContest(3)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plagify.contests", mtest.FirstBatch,
			MustBsonD(contest)))

		got, err := s.GetContest(context.Background(), contest.ID.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, contest, got)
	})
}

func TestGetContest_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("absent id yields ErrNotFound, not a storage fault", func(mt *mtest.T) {
		s := mockStore(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plagify.contests", mtest.FirstBatch))

		_, err := s.GetContest(context.Background(), primitive.NewObjectID().Hex())
		require.Error(mt, err)
		assert.ErrorIs(mt, err, ErrNotFound)
		assert.NotErrorIs(mt, err, ErrStorageUnavailable)
	})
}

func TestGetContest_MalformedID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("malformed hex yields ErrInvalidIdentifier without touching storage", func(mt *mtest.T) {
		s := mockStore(mt)

		// No mock responses queued: the lookup must fail before any command is sent
		_, err := s.GetContest(context.Background(), "not-a-hex-id")
		require.Error(mt, err)
		assert.ErrorIs(mt, err, ErrInvalidIdentifier)
	})
}

func TestGetContest_StorageFault(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("command error surfaces as ErrStorageUnavailable", func(mt *mtest.T) {
		s := mockStore(mt)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11600,
			Message: "interrupted at shutdown",
			Name:    "InterruptedAtShutdown",
		}))

		_, err := s.GetContest(context.Background(), primitive.NewObjectID().Hex())
		require.Error(mt, err)
		assert.ErrorIs(mt, err, ErrStorageUnavailable)
	})
}
