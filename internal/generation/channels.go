package generation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"recruiting-lab/internal/domain"
	"recruiting-lab/internal/population"
)

// ChannelSpec is the baseline profile of one recruiting channel.
type ChannelSpec struct {
	Name           domain.Source
	BaseApplicants int
	ConversionRate float64 // percent
	CostPerClick   int64
}

// DefaultChannelSpecs returns the stock channel profiles.
func DefaultChannelSpecs() []ChannelSpec {
	return []ChannelSpec{
		{Name: domain.SourceSaramin, BaseApplicants: 1200, ConversionRate: 4.5, CostPerClick: 800},
		{Name: domain.SourceJobKorea, BaseApplicants: 900, ConversionRate: 5.2, CostPerClick: 750},
		{Name: domain.SourceLinkedIn, BaseApplicants: 300, ConversionRate: 8.5, CostPerClick: 1200},
		{Name: domain.SourceWanted, BaseApplicants: 600, ConversionRate: 6.8, CostPerClick: 950},
		{Name: domain.SourceDirect, BaseApplicants: 200, ConversionRate: 12.0, CostPerClick: 0},
		{Name: domain.SourceReferral, BaseApplicants: 80, ConversionRate: 15.5, CostPerClick: 0},
		{Name: domain.SourceGitHubJobs, BaseApplicants: 150, ConversionRate: 9.2, CostPerClick: 600},
		{Name: domain.SourceProgrammers, BaseApplicants: 180, ConversionRate: 7.8, CostPerClick: 700},
	}
}

// Channels produces one record per spec, in spec order.
func Channels(m *population.Model, specs []ChannelSpec) ([]domain.Channel, error) {
	out := make([]domain.Channel, 0, len(specs))
	for _, spec := range specs {
		if spec.BaseApplicants < 0 || spec.CostPerClick < 0 ||
			spec.ConversionRate < 0 || spec.ConversionRate > 100 {
			return nil, fmt.Errorf("%w: %s", ErrInvalidChannelSpec, spec.Name)
		}

		applicants := int(float64(spec.BaseApplicants) * m.Uniform(0.8, 1.2))

		rate := spec.ConversionRate * m.Uniform(0.9, 1.1)
		if rate > 100 {
			rate = 100
		}
		hired := int(float64(applicants) * rate / 100)

		cost := decimal.Zero
		if spec.CostPerClick > 0 {
			cost = decimal.NewFromInt(int64(applicants)).Mul(decimal.NewFromInt(spec.CostPerClick))
		}

		out = append(out, domain.Channel{
			Name:           spec.Name,
			Applicants:     applicants,
			Hired:          hired,
			Cost:           cost,
			ConversionRate: domain.Round(rate, 2),
			Clicks:         applicants * m.IntRange(3, 8),
			CTR:            domain.Round(m.Uniform(2.0, 8.0), 2),
			QualityScore:   domain.Round(m.Uniform(3.5, 5.0), 1),
		})
	}
	return out, nil
}
