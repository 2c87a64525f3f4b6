/* query.go
 * Contains the immutable query state values for the two views. Every user
 * action produces a new value instead of mutating in place, so a sequence of
 * actions can be replayed deterministically in tests. Transitions that change
 * the filtered set's identity reset the page to 0; changing the page alone
 * never alters the set.
 * Authors: Karan Kamath
 */

package client

import (
	"errors"
	"fmt"
)

const (
	// DefaultThreshold is the confidence floor applied before any user input
	DefaultThreshold = 50

	// MinThreshold is the lowest threshold a user may apply. The floor is
	// product policy, not a storage constraint: scores below it are noise.
	MinThreshold = 50

	// PageSize is the fixed number of rows per page for both views
	PageSize = 10
)

// Sortable contest columns
const (
	SortByName = "contest_name"
	SortByDate = "contest_date"
)

// ErrThresholdTooLow is returned when a threshold below MinThreshold is
// applied. The prior threshold stays in effect; callers surface the message
// and carry on.
var ErrThresholdTooLow = fmt.Errorf("minimum threshold value is %d", MinThreshold)

// SortDirection is the tri-state sort toggle for a contest column
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

// RecordQuery is the query state for a question's record view: threshold
// filter, substring search and page. The record view has no user sort.
type RecordQuery struct {
	Threshold float64
	Search    string
	Page      int
}

// NewRecordQuery returns the initial record query state
func NewRecordQuery() RecordQuery {
	return RecordQuery{Threshold: DefaultThreshold}
}

// WithSearch returns the state with a new search term. The filtered set
// changes identity, so the page resets.
func (q RecordQuery) WithSearch(term string) RecordQuery {
	q.Search = term
	q.Page = 0
	return q
}

// ApplyThreshold returns the state with a new threshold, or the unchanged
// state and ErrThresholdTooLow when the value is below the floor.
func (q RecordQuery) ApplyThreshold(threshold float64) (RecordQuery, error) {
	if threshold < MinThreshold {
		return q, ErrThresholdTooLow
	}
	q.Threshold = threshold
	q.Page = 0
	return q, nil
}

// WithPage returns the state on a different page of the same filtered set
func (q RecordQuery) WithPage(page int) RecordQuery {
	q.Page = page
	return q
}

// ContestQuery is the query state for the contest list view: substring search
// on the contest name, a single-column tri-state sort and page.
type ContestQuery struct {
	Search  string
	SortKey string
	SortDir SortDirection
	Page    int
}

// NewContestQuery returns the initial contest query state
func NewContestQuery() ContestQuery {
	return ContestQuery{}
}

// WithSearch returns the state with a new search term and the page reset
func (q ContestQuery) WithSearch(term string) ContestQuery {
	q.Search = term
	q.Page = 0
	return q
}

// ToggleSort cycles the sort state for a column: a new column starts
// ascending, toggling the active column flips ascending to descending and
// back to ascending. The visible page's identity changes, so the page resets.
func (q ContestQuery) ToggleSort(key string) ContestQuery {
	switch {
	case q.SortKey != key || q.SortDir == SortNone:
		q.SortKey = key
		q.SortDir = SortAscending
	case q.SortDir == SortAscending:
		q.SortDir = SortDescending
	default:
		q.SortDir = SortAscending
	}
	q.Page = 0
	return q
}

// WithPage returns the state on a different page of the same ordered set
func (q ContestQuery) WithPage(page int) ContestQuery {
	q.Page = page
	return q
}

// IsValidationError reports whether an error is a local input-validation
// failure (recoverable by the user) rather than a fetch failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrThresholdTooLow)
}
