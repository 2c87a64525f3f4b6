/* pipeline_test.go
 * Contains unit tests for pipeline.go - the four query pipeline stages
 * Authors: Karan Kamath
 */

package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaranKamath21/Plagify/api/shared"
)

// recordsWithScores builds records whose only meaningful field is the score
func recordsWithScores(scores ...float64) []shared.PlagiarismRecord {
	records := make([]shared.PlagiarismRecord, 0, len(scores))
	for _, score := range scores {
		records = append(records, shared.PlagiarismRecord{
			Plagiarist:      "copycat",
			PlagiarizedFrom: "original",
			ConfidenceScore: score,
		})
	}
	return records
}

func scoresOf(records []shared.PlagiarismRecord) []float64 {
	scores := make([]float64, 0, len(records))
	for _, r := range records {
		scores = append(scores, r.ConfidenceScore)
	}
	return scores
}

func namedContests(names ...string) []shared.Contest {
	contests := make([]shared.Contest, 0, len(names))
	for _, name := range names {
		contests = append(contests, shared.Contest{ContestName: name})
	}
	return contests
}

func namesOf(contests []shared.Contest) []string {
	names := make([]string, 0, len(contests))
	for _, c := range contests {
		names = append(names, c.ContestName)
	}
	return names
}

// region threshold filter tests

func TestFilterRecords_StrictThreshold(t *testing.T) {
	records := recordsWithScores(45, 50, 51, 80)

	filtered := FilterRecords(records, DefaultThreshold, "")

	// 45 and 50 excluded: the comparison is strictly greater-than
	assert.Equal(t, []float64{51, 80}, scoresOf(filtered))
}

func TestFilterRecords_ThresholdIsMonotonic(t *testing.T) {
	records := recordsWithScores(52, 61, 70.5, 88, 93, 99.9)

	prev := len(FilterRecords(records, 50, ""))
	for _, threshold := range []float64{55, 61, 70.5, 88, 99.9, 100} {
		cur := len(FilterRecords(records, threshold, ""))
		assert.LessOrEqual(t, cur, prev, "raising threshold to %v grew the set", threshold)
		prev = cur
	}
}

func TestFilterRecords_PreservesOrder(t *testing.T) {
	records := recordsWithScores(99, 51, 77, 62)

	filtered := FilterRecords(records, 50, "")

	assert.Equal(t, []float64{99, 51, 77, 62}, scoresOf(filtered))
}

// endregion

// region search tests

func TestFilterRecords_SearchMatchesEitherName(t *testing.T) {
	records := []shared.PlagiarismRecord{
		{Plagiarist: "Alice", PlagiarizedFrom: "bob", ConfidenceScore: 90},
		{Plagiarist: "carol", PlagiarizedFrom: "ALICE", ConfidenceScore: 90},
		{Plagiarist: "dave", PlagiarizedFrom: "erin", ConfidenceScore: 90},
	}

	filtered := FilterRecords(records, 50, "alice")

	// Matches on plagiarist for the first record and plagiarizedFrom for the
	// second, case-insensitively
	require.Len(t, filtered, 2)
	assert.Equal(t, "Alice", filtered[0].Plagiarist)
	assert.Equal(t, "ALICE", filtered[1].PlagiarizedFrom)
}

func TestFilterRecords_SearchIsSubstring(t *testing.T) {
	records := []shared.PlagiarismRecord{
		{Plagiarist: "codemaster_3000", PlagiarizedFrom: "x", ConfidenceScore: 90},
	}

	assert.Len(t, FilterRecords(records, 50, "master_3"), 1)
	assert.Len(t, FilterRecords(records, 50, "master 3"), 0)
}

func TestFilterRecords_EmptyTermMatchesEverything(t *testing.T) {
	records := recordsWithScores(51, 80, 95)

	withTerm := FilterRecords(records, 50, "")
	assert.Equal(t, scoresOf(records), scoresOf(withTerm))
}

func TestFilterRecords_ThresholdAndSearchCompose(t *testing.T) {
	records := []shared.PlagiarismRecord{
		{Plagiarist: "alice", PlagiarizedFrom: "x", ConfidenceScore: 90},
		{Plagiarist: "alice", PlagiarizedFrom: "x", ConfidenceScore: 45}, // below threshold
		{Plagiarist: "bob", PlagiarizedFrom: "y", ConfidenceScore: 90},   // no name match
	}

	filtered := FilterRecords(records, 50, "alice")

	// AND composition: both conditions must hold
	require.Len(t, filtered, 1)
	assert.Equal(t, 90.0, filtered[0].ConfidenceScore)
}

func TestFilterContests_SearchOnName(t *testing.T) {
	contests := namedContests("Weekly Contest 425", "Biweekly Contest 144", "Weekly Contest 426")

	filtered := FilterContests(contests, "weekly contest 42")

	assert.Equal(t, []string{"Weekly Contest 425", "Weekly Contest 426"}, namesOf(filtered))
}

// endregion

// region sort tests

func TestSortContests_AscendingAndDescending(t *testing.T) {
	contests := namedContests("Charlie Cup", "Alpha Open", "Bravo Round")

	asc := SortContests(contests, SortByName, SortAscending)
	assert.Equal(t, []string{"Alpha Open", "Bravo Round", "Charlie Cup"}, namesOf(asc))

	desc := SortContests(contests, SortByName, SortDescending)
	assert.Equal(t, []string{"Charlie Cup", "Bravo Round", "Alpha Open"}, namesOf(desc))

	// The input slice itself stays untouched
	assert.Equal(t, []string{"Charlie Cup", "Alpha Open", "Bravo Round"}, namesOf(contests))
}

func TestSortContests_StableUnderTies(t *testing.T) {
	contests := []shared.Contest{
		{ContestName: "B", ContestDate: "2024-11-03"},
		{ContestName: "A", ContestDate: "2024-11-03"},
		{ContestName: "C", ContestDate: "2024-11-01"},
	}

	sorted := SortContests(contests, SortByDate, SortAscending)

	// Only the date is compared; the two tied rows keep their original
	// relative order (B before A), no secondary key kicks in
	assert.Equal(t, []string{"C", "B", "A"}, namesOf(sorted))
}

func TestSortContests_NoneAndUnknownKeyAreNoOps(t *testing.T) {
	contests := namedContests("B", "A")

	assert.Equal(t, []string{"B", "A"}, namesOf(SortContests(contests, SortByName, SortNone)))
	assert.Equal(t, []string{"B", "A"}, namesOf(SortContests(contests, "confidence_score", SortAscending)))
}

// endregion

// region pagination tests

func TestPaginate_TwentyThreeItems(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	assert.Equal(t, 3, PageCount(len(items)))
	assert.Len(t, Paginate(items, 0), 10)
	assert.Len(t, Paginate(items, 1), 10)

	// Page index 2 holds the 3 trailing items
	last := Paginate(items, 2)
	assert.Equal(t, []int{20, 21, 22}, last)
}

func TestPaginate_OutOfRange(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Empty(t, Paginate(items, 5))
	assert.Empty(t, Paginate(items, -1))
	assert.Empty(t, Paginate([]int{}, 0))
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0))
	assert.Equal(t, 1, PageCount(1))
	assert.Equal(t, 1, PageCount(10))
	assert.Equal(t, 2, PageCount(11))
	assert.Equal(t, 3, PageCount(23))
}

// endregion

// region full pipeline tests

func TestVisibleRecords_FullPipeline(t *testing.T) {
	records := recordsWithScores(45, 50, 51, 80)

	rows, pages := VisibleRecords(records, NewRecordQuery())

	assert.Equal(t, []float64{51, 80}, scoresOf(rows))
	assert.Equal(t, 1, pages)
}

func TestVisibleContests_SearchThenSortThenPaginate(t *testing.T) {
	contests := []shared.Contest{}
	for _, name := range []string{"Weekly 3", "Weekly 1", "Biweekly 9", "Weekly 2"} {
		contests = append(contests, shared.Contest{ContestName: name})
	}

	q := NewContestQuery().WithSearch("weekly ").ToggleSort(SortByName)
	// "Biweekly 9" also contains "weekly ", so all four survive the search
	rows, pages := VisibleContests(contests, q)

	assert.Equal(t, 1, pages)
	assert.Equal(t, []string{"Biweekly 9", "Weekly 1", "Weekly 2", "Weekly 3"}, namesOf(rows))
}

func TestVisibleContests_PageChangeKeepsSet(t *testing.T) {
	contests := []shared.Contest{}
	for i := 0; i < 23; i++ {
		contests = append(contests, shared.Contest{ContestName: "Contest"})
	}

	q := NewContestQuery()
	firstRows, firstPages := VisibleContests(contests, q)
	lastRows, lastPages := VisibleContests(contests, q.WithPage(2))

	// Changing the page alone never alters the filtered set
	assert.Equal(t, firstPages, lastPages)
	assert.Len(t, firstRows, 10)
	assert.Len(t, lastRows, 3)
}

// endregion
