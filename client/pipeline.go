/* pipeline.go
 * Contains the pure query pipeline stages applied to a fetched dataset, in
 * fixed order: threshold filter, substring search, sort, pagination. Every
 * stage is an in-memory transform with no I/O; the whole pipeline re-runs
 * from scratch whenever an input changes.
 * Authors: Karan Kamath
 */

package client

import (
	"sort"
	"strings"

	"github.com/KaranKamath21/Plagify/api/shared"
)

// FilterRecords applies the first two stages to a record set: the strict
// confidence threshold (a score exactly equal to the threshold is excluded)
// and the case-insensitive substring search over both display names. The two
// compose with AND; an empty term matches everything.
func FilterRecords(records []shared.PlagiarismRecord, threshold float64, term string) []shared.PlagiarismRecord {
	needle := strings.ToLower(term)
	filtered := []shared.PlagiarismRecord{}
	for _, record := range records {
		if record.ConfidenceScore <= threshold {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(record.Plagiarist), needle) &&
			!strings.Contains(strings.ToLower(record.PlagiarizedFrom), needle) {
			continue
		}
		filtered = append(filtered, record)
	}
	return filtered
}

// FilterContests keeps contests whose name contains the search term,
// case-insensitively. An empty term matches everything.
func FilterContests(contests []shared.Contest, term string) []shared.Contest {
	needle := strings.ToLower(term)
	filtered := []shared.Contest{}
	for _, contest := range contests {
		if needle != "" && !strings.Contains(strings.ToLower(contest.ContestName), needle) {
			continue
		}
		filtered = append(filtered, contest)
	}
	return filtered
}

// SortContests orders a contest list on the active column. The sort is
// stable: rows equal on the key keep their incoming order, and only the one
// active key is compared (no secondary key). SortNone returns the input
// unchanged.
func SortContests(contests []shared.Contest, key string, dir SortDirection) []shared.Contest {
	if dir == SortNone {
		return contests
	}
	keyOf := contestSortKey(key)
	if keyOf == nil {
		return contests
	}

	sorted := make([]shared.Contest, len(contests))
	copy(sorted, contests)
	sort.SliceStable(sorted, func(i, j int) bool {
		if dir == SortDescending {
			return keyOf(sorted[i]) > keyOf(sorted[j])
		}
		return keyOf(sorted[i]) < keyOf(sorted[j])
	})
	return sorted
}

// contestSortKey maps a column name to its accessor, nil for unknown columns
func contestSortKey(key string) func(shared.Contest) string {
	switch key {
	case SortByName:
		return func(c shared.Contest) string { return c.ContestName }
	case SortByDate:
		return func(c shared.Contest) string { return c.ContestDate }
	}
	return nil
}

// Paginate slices one fixed-size page out of a filtered set. A page past the
// end is empty, not an error.
func Paginate[T any](items []T, page int) []T {
	offset := page * PageSize
	if page < 0 || offset >= len(items) {
		return []T{}
	}
	end := offset + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// PageCount reports how many pages a filtered set spans
func PageCount(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + PageSize - 1) / PageSize
}

// VisibleRecords runs the full record pipeline for one query state and
// returns the visible rows plus the page count of the filtered set.
func VisibleRecords(records []shared.PlagiarismRecord, q RecordQuery) ([]shared.PlagiarismRecord, int) {
	filtered := FilterRecords(records, q.Threshold, q.Search)
	return Paginate(filtered, q.Page), PageCount(len(filtered))
}

// VisibleContests runs the full contest pipeline for one query state and
// returns the visible rows plus the page count of the filtered set.
func VisibleContests(contests []shared.Contest, q ContestQuery) ([]shared.Contest, int) {
	filtered := FilterContests(contests, q.Search)
	ordered := SortContests(filtered, q.SortKey, q.SortDir)
	return Paginate(ordered, q.Page), PageCount(len(ordered))
}
