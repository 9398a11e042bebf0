package query

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruiting-lab/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2024, 6, d, 14, 30, 0, 0, time.UTC)
}

func fixture() []domain.Candidate {
	return []domain.Candidate{
		{ID: "REC0001", Name: "김민준", Position: "백엔드 개발자", Status: domain.StatusScreening, Location: "서울", ResumeScore: 80, AppliedDate: day(1), Skills: []string{"Java", "Spring"}},
		{ID: "REC0002", Name: "이서연", Position: "UI/UX 디자이너", Status: domain.StatusHired, Location: "부산", ResumeScore: 65, AppliedDate: day(5), Skills: []string{"Figma"}},
		{ID: "REC0003", Name: "박지호", Position: "데이터 분석가", Status: domain.StatusScreening, Location: "서울", ResumeScore: 92, AppliedDate: day(10), Skills: []string{"Python", "SQL"}},
		{ID: "REC0004", Name: "최하은", Position: "백엔드 개발자", Status: domain.StatusRejected, Location: "경기", ResumeScore: 50, AppliedDate: day(15), Skills: []string{"Go", "Kubernetes"}},
	}
}

func ids(cands []domain.Candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.ID
	}
	return out
}

func TestFilter_EmptyCriteriaIsIdentity(t *testing.T) {
	in := fixture()
	got := Filter(in, Criteria{Positions: []string{}, Statuses: nil, SearchTerm: "  "})
	assert.Equal(t, in, got)

	got[0].Skills[0] = "mutated"
	assert.Equal(t, "Java", in[0].Skills[0], "view must not alias the input")
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{"position", Criteria{Positions: []string{"백엔드 개발자"}}, []string{"REC0001", "REC0004"}},
		{"status", Criteria{Statuses: []domain.Status{domain.StatusScreening}}, []string{"REC0001", "REC0003"}},
		{"location", Criteria{Locations: []string{"부산", "경기"}}, []string{"REC0002", "REC0004"}},
		{"conjunction", Criteria{Positions: []string{"백엔드 개발자"}, Locations: []string{"서울"}}, []string{"REC0001"}},
		{"date inclusive", Criteria{DateRange: &DateRange{Start: time.Date(2024, 6, 5, 23, 0, 0, 0, time.UTC), End: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)}}, []string{"REC0002", "REC0003"}},
		{"score inclusive", Criteria{ScoreRange: &ScoreRange{Min: 65, Max: 80}}, []string{"REC0001", "REC0002"}},
		{"search name", Criteria{SearchTerm: "서연"}, []string{"REC0002"}},
		{"search skills case-insensitive", Criteria{SearchTerm: "PYTHON"}, []string{"REC0003"}},
		{"search position", Criteria{SearchTerm: "개발자"}, []string{"REC0001", "REC0004"}},
		{"no match", Criteria{Statuses: []domain.Status{domain.StatusFinalInterview}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(fixture(), tt.criteria)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSortAndPaginate_Pages(t *testing.T) {
	cands := make([]domain.Candidate, 25)
	for i := range cands {
		cands[i] = domain.Candidate{ID: fmt.Sprintf("REC%04d", i+1)}
	}

	var sizes []int
	for i := 0; i < 3; i++ {
		page, err := SortAndPaginate(cands, SortByID, true, 10, i)
		require.NoError(t, err)
		assert.Equal(t, 3, page.PageCount)
		sizes = append(sizes, len(page.Items))
	}
	assert.Equal(t, []int{10, 10, 5}, sizes)

	last, err := SortAndPaginate(cands, SortByID, true, 10, 99)
	require.NoError(t, err)
	assert.Equal(t, 2, last.PageIndex)
	assert.Len(t, last.Items, 5)
	assert.Equal(t, "REC0021", last.Items[0].ID)

	first, err := SortAndPaginate(cands, SortByID, true, 10, -4)
	require.NoError(t, err)
	assert.Equal(t, 0, first.PageIndex)
}

func TestSortAndPaginate_Defaults(t *testing.T) {
	page, err := SortAndPaginate(nil, SortByName, true, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, page.PageSize)
	assert.Equal(t, 0, page.PageIndex)
	assert.Equal(t, 1, page.PageCount)
	assert.Empty(t, page.Items)
}

func TestSort_StableBothDirections(t *testing.T) {
	cands := []domain.Candidate{
		{ID: "a", ResumeScore: 70},
		{ID: "b", ResumeScore: 90},
		{ID: "c", ResumeScore: 70},
		{ID: "d", ResumeScore: 90},
	}

	asc, err := Sort(cands, SortByResumeScore, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids(asc))

	desc, err := Sort(cands, SortByResumeScore, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(desc))
}

func TestSort_UnknownKey(t *testing.T) {
	_, err := Sort(fixture(), SortKey("salary"), true)
	assert.ErrorIs(t, err, ErrUnknownSortKey)

	_, err = SortAndPaginate(fixture(), "", true, 10, 0)
	assert.ErrorIs(t, err, ErrUnknownSortKey)
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey(" Resume_Score ")
	require.NoError(t, err)
	assert.Equal(t, SortByResumeScore, k)

	_, err = ParseSortKey("salary")
	assert.ErrorIs(t, err, ErrUnknownSortKey)
}
