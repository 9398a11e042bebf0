package query

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"recruiting-lab/internal/domain"
)

// DefaultPageSize is used when a non-positive page size is requested.
const DefaultPageSize = 10

// ErrUnknownSortKey is returned for a sort key outside the supported set.
var ErrUnknownSortKey = errors.New("unknown sort key")

// SortKey names a sortable candidate column.
type SortKey string

const (
	SortByID          SortKey = "id"
	SortByName        SortKey = "name"
	SortByAppliedDate SortKey = "applied_date"
	SortByResumeScore SortKey = "resume_score"
	SortByRating      SortKey = "rating"
)

// SortKeys lists the supported keys.
var SortKeys = []SortKey{SortByID, SortByName, SortByAppliedDate, SortByResumeScore, SortByRating}

// ParseSortKey validates a user-supplied key.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SortKeys {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortKey, s)
}

type lessFunc func(a, b domain.Candidate) bool

func lessFor(key SortKey) (lessFunc, error) {
	switch key {
	case SortByID:
		return func(a, b domain.Candidate) bool { return a.ID < b.ID }, nil
	case SortByName:
		return func(a, b domain.Candidate) bool { return a.Name < b.Name }, nil
	case SortByAppliedDate:
		return func(a, b domain.Candidate) bool { return a.AppliedDate.Before(b.AppliedDate) }, nil
	case SortByResumeScore:
		return func(a, b domain.Candidate) bool { return a.ResumeScore < b.ResumeScore }, nil
	case SortByRating:
		return func(a, b domain.Candidate) bool { return a.Rating < b.Rating }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSortKey, key)
	}
}

// Sort returns a stably sorted copy. Ties keep their input order in both
// directions.
func Sort(candidates []domain.Candidate, key SortKey, ascending bool) ([]domain.Candidate, error) {
	less, err := lessFor(key)
	if err != nil {
		return nil, err
	}
	out := domain.CloneCandidates(candidates)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return out, nil
}

// Page is one slice of a sorted view.
type Page struct {
	Items     []domain.Candidate
	PageIndex int
	PageCount int
	PageSize  int
	Total     int
}

// SortAndPaginate sorts candidates and returns page pageIndex. The index is
// clamped into the valid range; an empty input yields one empty page 0.
func SortAndPaginate(candidates []domain.Candidate, key SortKey, ascending bool, pageSize, pageIndex int) (Page, error) {
	sorted, err := Sort(candidates, key, ascending)
	if err != nil {
		return Page{}, err
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(sorted)
	pageCount := (total + pageSize - 1) / pageSize
	if pageCount == 0 {
		pageCount = 1
	}
	pageIndex = clamp(pageIndex, 0, pageCount-1)

	start := pageIndex * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	return Page{
		Items:     sorted[start:end],
		PageIndex: pageIndex,
		PageCount: pageCount,
		PageSize:  pageSize,
		Total:     total,
	}, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
