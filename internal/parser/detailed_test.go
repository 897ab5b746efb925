package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/models"
)

func TestDetailedParser_ParseLine(t *testing.T) {
	p := &DetailedParser{}

	row, ok := p.ParseLine("01/02/2023 יום רביעי גונן 08:00 16:00 00:30 7.50 7.50 0.00 0.00")
	require.True(t, ok)

	assert.Equal(t, models.Row{
		Date:       "01/02/2023",
		Weekday:    "רביעי",
		Entry:      "08:00",
		Exit:       "16:00",
		TotalHours: 7.5,
		Detail: &models.Detail{
			Location: "גונן",
			Break:    "00:30",
			Regular:  7.5,
			Tier1:    0,
			Tier2:    0,
		},
	}, row)
}

func TestDetailedParser_OptionalFields(t *testing.T) {
	p := &DetailedParser{}

	row, ok := p.ParseLine("02/02/2023 8:00 17:30 9.50 8.00 1.00 0.50")
	require.True(t, ok)

	assert.Equal(t, "", row.Weekday)
	assert.Equal(t, "08:00", row.Entry)
	assert.Equal(t, "17:30", row.Exit)
	require.NotNil(t, row.Detail)
	assert.Equal(t, "00:00", row.Detail.Break)
	assert.Equal(t, "", row.Detail.Location)
	assert.Equal(t, 9.5, row.TotalHours)
	assert.Equal(t, 8.0, row.Detail.Regular)
	assert.Equal(t, 1.0, row.Detail.Tier1)
	assert.Equal(t, 0.5, row.Detail.Tier2)
}

func TestDetailedParser_Rejects(t *testing.T) {
	p := &DetailedParser{}

	tests := []struct {
		name string
		line string
	}{
		{"no date", "רביעי גונן 08:00 16:00 00:30 7.50 7.50 0.00 0.00"},
		{"one time", "01/02/2023 רביעי 08:00 7.50 7.50 0.00 0.00"},
		{"three figures", "01/02/2023 רביעי 08:00 16:00 00:30 7.50 7.50 0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := p.ParseLine(tt.line)
			assert.False(t, ok)
		})
	}
}

// Figures are mapped to total, 100%, 125% and 150% strictly by position, with
// no check that the bands add up to the total.
func TestDetailedParser_PositionalFigures(t *testing.T) {
	p := &DetailedParser{}

	row, ok := p.ParseLine("03/02/2023 שישי 08:00 16:00 00:30 0.00 7.50 7.50 0.00 3.25")
	require.True(t, ok)

	assert.Equal(t, 0.0, row.TotalHours)
	assert.Equal(t, 7.5, row.Detail.Regular)
	assert.Equal(t, 7.5, row.Detail.Tier1)
	assert.Equal(t, 0.0, row.Detail.Tier2)
}
