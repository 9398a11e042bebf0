package formatter

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsWideRunes(t *testing.T) {
	out := RenderTable([]string{"Name", "Score"}, [][]string{
		{"김민준", "80"},
		{"Kim", "92"},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	// Score column starts at the same cell offset on every data row.
	idxWide := lipgloss.Width(lines[2][:strings.Index(lines[2], "80")])
	idxNarrow := lipgloss.Width(lines[3][:strings.Index(lines[3], "92")])
	assert.Equal(t, idxWide, idxNarrow)
}

func TestRenderTable_Empty(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}

func TestWon(t *testing.T) {
	tests := []struct {
		in   decimal.Decimal
		want string
	}{
		{decimal.Zero, "0원"},
		{decimal.NewFromInt(999), "999원"},
		{decimal.NewFromInt(1_800_000), "1,800,000원"},
		{decimal.NewFromInt(-12345), "-12,345원"},
		{decimal.NewFromFloat(333.33), "333원"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Won(tt.in))
	}
}

func TestSigned(t *testing.T) {
	assert.Contains(t, Signed(10), "+10.0%")
	assert.Contains(t, Signed(-2.5), "-2.5%")
	assert.Equal(t, "0.0%", Signed(0))
}

func TestBar(t *testing.T) {
	assert.Empty(t, Bar(0, 10, 20))
	assert.Empty(t, Bar(5, 0, 20))
	assert.Equal(t, 10, strings.Count(Bar(5, 10, 20), "█"))
	assert.Equal(t, 1, strings.Count(Bar(1, 1000, 20), "█"))
}

func TestPct(t *testing.T) {
	assert.Equal(t, "5.0%", Pct(5))
	assert.Equal(t, "59.9%", Pct(59.94))
}
