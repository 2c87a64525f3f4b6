/* browser.go
 * Contains the per-session view state for the two browsing views. A browser
 * holds one fetched snapshot plus the current query value; each action
 * replaces the query atomically and the visible page is recomputed from
 * scratch on read. A failed refresh leaves the previous snapshot in place.
 * Authors: Karan Kamath
 */

package client

import (
	"context"

	"github.com/KaranKamath21/Plagify/api/shared"
)

// ContestBrowser is the session state for the contest list view
type ContestBrowser struct {
	client   *Client
	contests []shared.Contest
	query    ContestQuery
}

// NewContestBrowser creates a browser with an empty snapshot; call Refresh
// for the initial load.
func NewContestBrowser(c *Client) *ContestBrowser {
	return &ContestBrowser{
		client:   c,
		contests: []shared.Contest{},
		query:    NewContestQuery(),
	}
}

// Refresh re-fetches the contest directory. New data changes the filtered
// set's identity, so the page resets; search and sort carry over. On failure
// the previous snapshot and query survive and the error is returned for the
// caller to log.
func (b *ContestBrowser) Refresh(ctx context.Context) error {
	contests, err := b.client.FetchContests(ctx)
	if err != nil {
		return err
	}
	b.contests = contests
	b.query = b.query.WithPage(0)
	return nil
}

// SetSearch applies a new search term
func (b *ContestBrowser) SetSearch(term string) {
	b.query = b.query.WithSearch(term)
}

// ToggleSort cycles the sort state for a column
func (b *ContestBrowser) ToggleSort(key string) {
	b.query = b.query.ToggleSort(key)
}

// SetPage moves to another page of the current filtered set
func (b *ContestBrowser) SetPage(page int) {
	b.query = b.query.WithPage(page)
}

// Query returns the current query state
func (b *ContestBrowser) Query() ContestQuery {
	return b.query
}

// Page returns the rows visible under the current query and the page count
func (b *ContestBrowser) Page() ([]shared.Contest, int) {
	return VisibleContests(b.contests, b.query)
}

// RecordBrowser is the session state for one question's record view
type RecordBrowser struct {
	client           *Client
	questionID       string
	records          []shared.PlagiarismRecord
	query            RecordQuery
	thresholdMessage string
}

// NewRecordBrowser creates a browser for one question's records; call
// Refresh for the initial load.
func NewRecordBrowser(c *Client, questionID string) *RecordBrowser {
	return &RecordBrowser{
		client:     c,
		questionID: questionID,
		records:    []shared.PlagiarismRecord{},
		query:      NewRecordQuery(),
	}
}

// QuestionID returns the question this browser is bound to
func (b *RecordBrowser) QuestionID() string {
	return b.questionID
}

// Refresh re-fetches the question's records. On failure the previous
// snapshot and query survive and the error is returned for the caller to log.
func (b *RecordBrowser) Refresh(ctx context.Context) error {
	records, err := b.client.FetchQuestionRecords(ctx, b.questionID)
	if err != nil {
		return err
	}
	b.records = records
	b.query = b.query.WithPage(0)
	return nil
}

// SetSearch applies a new search term
func (b *RecordBrowser) SetSearch(term string) {
	b.query = b.query.WithSearch(term)
}

// ApplyThreshold applies a new confidence threshold. A value below the floor
// is rejected: the prior threshold stays in effect, the validation message is
// retained for display and the error is returned. A valid apply clears the
// message.
func (b *RecordBrowser) ApplyThreshold(threshold float64) error {
	next, err := b.query.ApplyThreshold(threshold)
	if err != nil {
		b.thresholdMessage = err.Error()
		return err
	}
	b.thresholdMessage = ""
	b.query = next
	return nil
}

// ThresholdMessage returns the retained validation message, empty when the
// last apply was valid.
func (b *RecordBrowser) ThresholdMessage() string {
	return b.thresholdMessage
}

// SetPage moves to another page of the current filtered set
func (b *RecordBrowser) SetPage(page int) {
	b.query = b.query.WithPage(page)
}

// Query returns the current query state
func (b *RecordBrowser) Query() RecordQuery {
	return b.query
}

// Page returns the rows visible under the current query and the page count
func (b *RecordBrowser) Page() ([]shared.PlagiarismRecord, int) {
	return VisibleRecords(b.records, b.query)
}
