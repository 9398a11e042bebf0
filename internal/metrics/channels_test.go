package metrics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruiting-lab/internal/domain"
)

func sampleChannels() []domain.Channel {
	return []domain.Channel{
		{Name: domain.SourceSaramin, Applicants: 1000, Hired: 30, Cost: decimal.NewFromInt(3_000_000), ConversionRate: 3.0, QualityScore: 4.0},
		{Name: domain.SourceWanted, Applicants: 500, Hired: 25, Cost: decimal.NewFromInt(1_000_000), ConversionRate: 5.0, QualityScore: 4.5},
		{Name: domain.SourceReferral, Applicants: 100, Hired: 8, Cost: decimal.Zero, ConversionRate: 8.0, QualityScore: 5.0},
		{Name: domain.SourceDirect, Applicants: 200, Hired: 2, Cost: decimal.Zero, ConversionRate: 1.0, QualityScore: 3.0},
	}
}

func TestChannelTable(t *testing.T) {
	rows := ChannelTable(sampleChannels(), domain.DefaultPerHireValue)
	require.Len(t, rows, 4)

	assert.True(t, rows[0].CPA.Equal(decimal.NewFromInt(100_000)))
	assert.InDelta(t, 49900.0, rows[0].ROI, 1e-9)
	assert.True(t, rows[2].CPA.IsZero())
	assert.Zero(t, rows[2].ROI)
}

func TestChannelInsights(t *testing.T) {
	ins := ChannelInsights(sampleChannels())
	require.NotNil(t, ins.Best)
	require.NotNil(t, ins.Worst)
	require.NotNil(t, ins.BestFree)
	assert.Equal(t, domain.SourceReferral, ins.Best.Name)
	assert.Equal(t, domain.SourceDirect, ins.Worst.Name)
	assert.Equal(t, domain.SourceReferral, ins.BestFree.Name)

	none := ChannelInsights(sampleChannels()[:2])
	assert.Nil(t, none.BestFree)
	assert.Equal(t, ChannelInsight{}, ChannelInsights(nil))
}

func TestChannelScorecard(t *testing.T) {
	cards := ChannelScorecard(sampleChannels())
	require.Len(t, cards, 4)
	assert.InDelta(t, 100.0, cards[0].Applicants, 1e-9)
	assert.InDelta(t, 50.0, cards[1].Applicants, 1e-9)
	assert.InDelta(t, 50.0, cards[1].Conversion, 1e-9)
	assert.InDelta(t, 100.0, cards[2].Quality, 1e-9)
}
