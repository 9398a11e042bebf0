package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestChannel_CPAAndROI(t *testing.T) {
	ch := Channel{Name: SourceLinkedIn, Applicants: 234, Hired: 18, Cost: decimal.NewFromInt(1_800_000)}

	assert.True(t, ch.CPA().Equal(decimal.NewFromInt(100_000)), "CPA = %s", ch.CPA())
	assert.InDelta(t, 49900.0, ch.ROI(DefaultPerHireValue), 0.05)
	assert.False(t, ch.Free())
}

func TestChannel_ZeroHiredAndZeroCost(t *testing.T) {
	tests := []struct {
		name    string
		channel Channel
		wantCPA decimal.Decimal
		wantROI float64
	}{
		{
			name:    "no hires",
			channel: Channel{Applicants: 10, Hired: 0, Cost: decimal.NewFromInt(8000)},
			wantCPA: decimal.Zero,
			wantROI: -100,
		},
		{
			name:    "free channel",
			channel: Channel{Applicants: 200, Hired: 24, Cost: decimal.Zero},
			wantCPA: decimal.Zero,
			wantROI: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.channel.CPA().Equal(tt.wantCPA))
			assert.InDelta(t, tt.wantROI, tt.channel.ROI(DefaultPerHireValue), 1e-9)
		})
	}
}

func TestChannel_CPARoundsToWholeUnits(t *testing.T) {
	ch := Channel{Hired: 3, Cost: decimal.NewFromInt(1000)}
	assert.Equal(t, "333", ch.CPA().String())
}
