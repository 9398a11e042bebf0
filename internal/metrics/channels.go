package metrics

import (
	"github.com/shopspring/decimal"

	"recruiting-lab/internal/domain"
)

// ChannelRow is a channel with its derived CPA and ROI.
type ChannelRow struct {
	domain.Channel
	CPA decimal.Decimal
	ROI float64
}

// ChannelTable derives CPA and ROI for every channel, keeping input order.
func ChannelTable(channels []domain.Channel, perHireValue decimal.Decimal) []ChannelRow {
	out := make([]ChannelRow, len(channels))
	for i, ch := range channels {
		out[i] = ChannelRow{Channel: ch, CPA: ch.CPA(), ROI: ch.ROI(perHireValue)}
	}
	return out
}

// ChannelInsight names the standout channels by conversion rate.
type ChannelInsight struct {
	Best     *domain.Channel
	Worst    *domain.Channel
	BestFree *domain.Channel
}

// ChannelInsights picks the best and worst channels by conversion rate and the
// best channel without spend. Ties go to the earlier channel. Fields are nil
// when no channel qualifies.
func ChannelInsights(channels []domain.Channel) ChannelInsight {
	var out ChannelInsight
	for i := range channels {
		ch := channels[i]
		if out.Best == nil || ch.ConversionRate > out.Best.ConversionRate {
			c := ch
			out.Best = &c
		}
		if out.Worst == nil || ch.ConversionRate < out.Worst.ConversionRate {
			c := ch
			out.Worst = &c
		}
		if ch.Free() && (out.BestFree == nil || ch.ConversionRate > out.BestFree.ConversionRate) {
			c := ch
			out.BestFree = &c
		}
	}
	return out
}

// Scorecard is a channel normalised onto 0–100 axes for comparison charts.
type Scorecard struct {
	Channel    domain.Source
	Applicants float64
	Conversion float64
	Quality    float64
}

// ChannelScorecard normalises applicants against the busiest channel,
// conversion rate ×10 and quality score out of 5.
func ChannelScorecard(channels []domain.Channel) []Scorecard {
	maxApplicants := 0
	for _, ch := range channels {
		if ch.Applicants > maxApplicants {
			maxApplicants = ch.Applicants
		}
	}

	out := make([]Scorecard, len(channels))
	for i, ch := range channels {
		out[i] = Scorecard{
			Channel:    ch.Name,
			Applicants: domain.Round(computeRate(ch.Applicants, maxApplicants), 1),
			Conversion: domain.Round(ch.ConversionRate*10, 1),
			Quality:    domain.Round(ch.QualityScore/5*100, 1),
		}
	}
	return out
}
