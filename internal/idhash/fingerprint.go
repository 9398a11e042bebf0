// Package idhash computes deterministic SHA256 fingerprints of generated
// records. Two datasets with equal fingerprints hold identical records.
package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"recruiting-lab/internal/domain"
	"recruiting-lab/internal/generation"
)

// CandidateFingerprint computes a deterministic candidate fingerprint.
// Formula: SHA256(id|name|position|status|experience|location|resume_score|
// rating|applied_unix_nano|salary|skills|source|interview_unix_nano)
// Returns hex-encoded hash (64 characters).
func CandidateFingerprint(c domain.Candidate) string {
	hash := sha256.Sum256([]byte(candidateLine(c)))
	return hex.EncodeToString(hash[:])
}

func candidateLine(c domain.Candidate) string {
	interview := ""
	if c.InterviewDate != nil {
		interview = fmt.Sprint(c.InterviewDate.UnixNano())
	}
	return fmt.Sprintf("%s|%s|%s|%s|%s|%s|%d|%.1f|%d|%d|%s|%s|%s",
		c.ID,
		c.Name,
		c.Position,
		string(c.Status),
		string(c.Experience),
		c.Location,
		c.ResumeScore,
		c.Rating,
		c.AppliedDate.UnixNano(),
		c.SalaryExpectation,
		strings.Join(c.Skills, ","),
		string(c.Source),
		interview,
	)
}

// DatasetFingerprint hashes every table of ds in generation order. Returns
// an empty string for a nil dataset.
func DatasetFingerprint(ds *generation.Dataset) string {
	if ds == nil {
		return ""
	}

	h := sha256.New()
	line(h, "generated|%d", ds.GeneratedAt.UnixNano())
	for _, c := range ds.Candidates {
		line(h, "candidate|%s", candidateLine(c))
	}
	for _, ch := range ds.Channels {
		line(h, "channel|%s|%d|%d|%s|%.2f|%d|%.2f|%.1f",
			ch.Name, ch.Applicants, ch.Hired, ch.Cost.String(), ch.ConversionRate, ch.Clicks, ch.CTR, ch.QualityScore)
	}
	for _, m := range ds.MonthlyTrend {
		line(h, "trend|%s|%d|%d|%d|%d|%d|%d|%d|%.1f|%.1f",
			m.Month, m.TotalApplicants, m.Developers, m.Designers, m.DataAnalysts,
			m.ProductManagers, m.QAEngineers, m.Others, m.AvgQualityScore, m.AvgResponseTimeDays)
	}
	for _, r := range ds.Regional {
		line(h, "region|%s|%s|%d|%.1f|%d|%.1f|%s",
			r.Region, r.Tier, r.Count, r.Percentage, r.AvgSalaryExpectation, r.AvgQualityScore, r.TopPosition)
	}
	for _, s := range ds.Funnel {
		line(h, "funnel|%s|%d|%.1f", s.Name, s.Count, s.Percentage)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func line(h hash.Hash, format string, args ...interface{}) {
	fmt.Fprintf(h, format, args...)
	h.Write([]byte{'\n'})
}

// Short returns the first 12 characters of a fingerprint for display.
func Short(fingerprint string) string {
	if len(fingerprint) <= 12 {
		return fingerprint
	}
	return fingerprint[:12]
}
