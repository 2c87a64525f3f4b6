/* test_helpers.go
 * Contains test helper functions and fixture builders for store package tests
 * Authors: Karan Kamath
 */

package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/KaranKamath21/Plagify/api/shared"
)

// SampleContest creates deterministic contest fixture data for testing.
// The index is baked into every field so equality checks catch field mixups.
func SampleContest(i int) shared.Contest {
	return shared.Contest{
		ID:          primitive.NewObjectID(),
		ContestLink: fmt.Sprintf("https://leetcode.com/contest/weekly-contest-%d", 400+i),
		ContestName: fmt.Sprintf("Weekly Contest %d", 400+i),
		ContestDate: fmt.Sprintf("2024-11-%02d", (i%28)+1),
		Question3:   fmt.Sprintf("wc%d-q3", 400+i),
		Question4:   fmt.Sprintf("wc%d-q4", 400+i),
	}
}

// SampleContests creates n contest fixtures.
func SampleContests(n int) []shared.Contest {
	contests := make([]shared.Contest, 0, n)
	for i := 0; i < n; i++ {
		contests = append(contests, SampleContest(i))
	}
	return contests
}

// SampleRecord creates a plagiarism record fixture for a question with the
// given confidence score.
func SampleRecord(questionID string, i int, score float64) shared.PlagiarismRecord {
	return shared.PlagiarismRecord{
		ID:                      primitive.NewObjectID(),
		Plagiarist:              fmt.Sprintf("copycat_%d", i),
		PlagiaristUserID:        fmt.Sprintf("user_copycat_%d", i),
		PlagiarizedFrom:         fmt.Sprintf("original_author_%d", i),
		PlagiarizedFromUserID:   fmt.Sprintf("user_original_%d", i),
		PlagiaristSubmissionID:  int64(1000000 + i),
		PlagiarizedSubmissionID: int64(2000000 + i),
		PlagiaristRank:          500 + i,
		PlagiarizedRank:         10 + i,
		ConfidenceScore:         score,
		Language:                "cpp",
		QuestionID:              questionID,
	}
}

// SampleRecords creates one record fixture per confidence score.
func SampleRecords(questionID string, scores []float64) []shared.PlagiarismRecord {
	records := make([]shared.PlagiarismRecord, 0, len(scores))
	for i, score := range scores {
		records = append(records, SampleRecord(questionID, i, score))
	}
	return records
}

// MustBsonD round-trips a struct through bson so it can be fed to mtest
// cursor responses. Panics on marshal failure, which only happens for
// untaggable fixture bugs.
func MustBsonD(v interface{}) bson.D {
	raw, err := bson.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("marshalling fixture: %v", err))
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		panic(fmt.Sprintf("unmarshalling fixture: %v", err))
	}
	return doc
}
