package generation

import (
	"fmt"

	"recruiting-lab/internal/domain"
	"recruiting-lab/internal/population"
)

// RegionSpec is a region's population share and tier.
type RegionSpec struct {
	Name   string
	Weight float64
	Tier   domain.RegionTier
}

// DefaultRegionSpecs returns the stock population shares.
func DefaultRegionSpecs() []RegionSpec {
	return []RegionSpec{
		{Name: "서울", Weight: 0.35, Tier: domain.TierCapital},
		{Name: "경기", Weight: 0.25, Tier: domain.TierMetro},
		{Name: "부산", Weight: 0.08, Tier: domain.TierOther},
		{Name: "대구", Weight: 0.06, Tier: domain.TierOther},
		{Name: "인천", Weight: 0.07, Tier: domain.TierOther},
		{Name: "광주", Weight: 0.04, Tier: domain.TierOther},
		{Name: "대전", Weight: 0.04, Tier: domain.TierOther},
		{Name: "울산", Weight: 0.03, Tier: domain.TierOther},
		{Name: "세종", Weight: 0.02, Tier: domain.TierOther},
		{Name: "기타", Weight: 0.06, Tier: domain.TierOther},
	}
}

type tierBand struct {
	salaryLo, salaryHi   int
	qualityLo, qualityHi float64
}

var tierBands = map[domain.RegionTier]tierBand{
	domain.TierCapital: {5500, 7500, 78, 88},
	domain.TierMetro:   {4800, 6800, 75, 85},
	domain.TierOther:   {3800, 5800, 70, 82},
}

var topPositions = []string{"프론트엔드 개발자", "백엔드 개발자", "UI/UX 디자이너"}

// Regional distributes totalPopulation across the configured regions.
func Regional(m *population.Model, specs []RegionSpec, totalPopulation int) ([]domain.RegionalStat, error) {
	if totalPopulation <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPopulation, totalPopulation)
	}

	out := make([]domain.RegionalStat, 0, len(specs))
	for _, spec := range specs {
		if spec.Weight < 0 {
			return nil, fmt.Errorf("%w: region %s weight %v", population.ErrInvalidDistribution, spec.Name, spec.Weight)
		}
		band, ok := tierBands[spec.Tier]
		if !ok {
			band = tierBands[domain.TierOther]
		}

		count := int(float64(totalPopulation) * spec.Weight * m.Uniform(0.9, 1.1))
		out = append(out, domain.RegionalStat{
			Region:               spec.Name,
			Tier:                 spec.Tier,
			Count:                count,
			Percentage:           domain.Round(float64(count)/float64(totalPopulation)*100, 1),
			AvgSalaryExpectation: m.IntRange(band.salaryLo, band.salaryHi),
			AvgQualityScore:      domain.Round(m.Uniform(band.qualityLo, band.qualityHi), 1),
			TopPosition:          m.Choice(topPositions),
		})
	}
	return out, nil
}
