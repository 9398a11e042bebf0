package domain

import "github.com/shopspring/decimal"

// DefaultPerHireValue is the assumed value of one hire used for channel ROI.
var DefaultPerHireValue = decimal.NewFromInt(50_000_000)

// Channel holds acquisition metrics for one recruiting channel.
type Channel struct {
	Name       Source
	Applicants int
	Hired      int
	Cost       decimal.Decimal
	// ConversionRate is hired/applicants as a percentage, two decimals.
	ConversionRate float64
	Clicks         int
	CTR            float64
	QualityScore   float64
}

// CPA returns cost per hire rounded to whole currency units, or zero when
// nothing was hired.
func (c Channel) CPA() decimal.Decimal {
	if c.Hired <= 0 {
		return decimal.Zero
	}
	return c.Cost.Div(decimal.NewFromInt(int64(c.Hired))).Round(0)
}

// ROI returns ((hired × perHireValue) − cost) / cost × 100, one decimal.
// Channels without spend report zero.
func (c Channel) ROI(perHireValue decimal.Decimal) float64 {
	if !c.Cost.IsPositive() {
		return 0
	}
	gain := perHireValue.Mul(decimal.NewFromInt(int64(c.Hired)))
	roi := gain.Sub(c.Cost).Div(c.Cost).Mul(decimal.NewFromInt(100))
	f, _ := roi.Round(1).Float64()
	return f
}

// Free reports whether the channel carries no spend.
func (c Channel) Free() bool {
	return c.Cost.IsZero()
}
