/* models.go
 * This file contains the data structs that are shared between sub packages.
 * Field names on the wire (bson and json) match the documents produced by the
 * ingestion pipeline, so the structs double as the API response shapes.
 * Authors: Karan Kamath
 */

package shared

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contest represents one contest event. Question3 and Question4 hold the
// identifiers of the two analysed questions; each identifier is also the name
// of the collection holding that question's plagiarism records.
type Contest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ContestLink string             `bson:"contest_link" json:"contest_link"`
	ContestName string             `bson:"contest_name" json:"contest_name"`
	ContestDate string             `bson:"contest_date" json:"contest_date"` // calendar date as supplied, never reparsed
	Question3   string             `bson:"question_3" json:"question_3"`
	Question4   string             `bson:"question_4" json:"question_4"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// PlagiarismRecord represents one detected pairing of submissions for a single
// question. QuestionID is redundant with the collection the record is stored
// in and must agree with it.
type PlagiarismRecord struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Plagiarist              string             `bson:"plagiarist" json:"plagiarist"`
	PlagiaristUserID        string             `bson:"plagiarist_user_id" json:"plagiarist_user_id"`
	PlagiarizedFrom         string             `bson:"plagiarized_from" json:"plagiarized_from"`
	PlagiarizedFromUserID   string             `bson:"plagiarized_from_user_id" json:"plagiarized_from_user_id"`
	PlagiaristSubmissionID  int64              `bson:"plagiarist_submission_id" json:"plagiarist_submission_id"`
	PlagiarizedSubmissionID int64              `bson:"plagiarized_submission_id" json:"plagiarized_submission_id"`
	PlagiaristRank          int                `bson:"plagiarist_rank" json:"plagiarist_rank"`
	PlagiarizedRank         int                `bson:"plagiarized_rank" json:"plagiarized_rank"`
	ConfidenceScore         float64            `bson:"confidence_score" json:"confidence_score"`
	Language                string             `bson:"language" json:"language"`
	QuestionID              string             `bson:"question_id" json:"question_id"`
	CreatedAt               time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt               time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}
