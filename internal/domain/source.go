package domain

// Source represents the recruiting channel an applicant arrived through.
type Source string

const (
	SourceSaramin     Source = "사람인"
	SourceJobKorea    Source = "잡코리아"
	SourceLinkedIn    Source = "링크드인"
	SourceWanted      Source = "원티드"
	SourceDirect      Source = "직접지원"
	SourceReferral    Source = "추천"
	SourceGitHubJobs  Source = "GitHub Jobs"
	SourceProgrammers Source = "프로그래머스"
)

// Sources lists every recruiting channel in display order.
var Sources = []Source{
	SourceSaramin,
	SourceJobKorea,
	SourceLinkedIn,
	SourceWanted,
	SourceDirect,
	SourceReferral,
	SourceGitHubJobs,
	SourceProgrammers,
}

// String returns the string representation of Source.
func (s Source) String() string {
	return string(s)
}

// IsValid checks if the source is a known channel.
func (s Source) IsValid() bool {
	for _, known := range Sources {
		if s == known {
			return true
		}
	}
	return false
}
