package domain

import "fmt"

// RegionalStat summarises applicants from one region.
type RegionalStat struct {
	Region     string
	Tier       RegionTier
	Count      int
	Percentage float64
	// AvgSalaryExpectation is in 만원.
	AvgSalaryExpectation int
	AvgQualityScore      float64
	TopPosition          string
}

// SalaryText formats the salary band, e.g. "6200만원".
func (r RegionalStat) SalaryText() string {
	return fmt.Sprintf("%d만원", r.AvgSalaryExpectation)
}
