package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLayout(t *testing.T) {
	tests := []struct {
		input string
		want  LayoutKind
	}{
		{"simple", LayoutSimple},
		{"a", LayoutSimple},
		{"type_a", LayoutSimple},
		{"detailed", LayoutDetailed},
		{"b", LayoutDetailed},
		{"type_b", LayoutDetailed},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLayout(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLayout("weekly")
	assert.Error(t, err)
}

func TestRow_Clone(t *testing.T) {
	r := Row{Date: "01/02/2023", Detail: &Detail{Break: "00:30"}}
	c := r.Clone()
	c.Detail.Break = "00:45"
	assert.Equal(t, "00:30", r.Detail.Break)

	bare := Row{Date: "01/02/2023"}
	assert.Nil(t, bare.Clone().Detail)
}

func TestDescribe(t *testing.T) {
	simple := LayoutSimple.Describe()
	assert.Equal(t, "דוח נוכחות פשוט", simple.Name)
	assert.Len(t, simple.Columns, 6)
	assert.False(t, simple.HasOvertime)

	detailed := LayoutDetailed.Describe()
	assert.True(t, detailed.HasOvertime)
	assert.True(t, detailed.HasBreak)
	assert.Equal(t, []string{"100%", "125%", "150%"}, detailed.Columns[7:])

	detailed.Columns[0] = "changed"
	assert.Equal(t, "תאריך", LayoutDetailed.Describe().Columns[0])

	assert.Equal(t, LayoutSimple, LayoutKind("unknown").Describe().Kind)
}

func TestParsedDocument_Totals(t *testing.T) {
	doc := &ParsedDocument{
		Layout: LayoutDetailed,
		Rows: []Row{
			{TotalHours: 7.5, Detail: &Detail{Regular: 7.5}},
			{TotalHours: 10.1, Detail: &Detail{Regular: 8, Tier1: 1, Tier2: 1.1}},
			{TotalHours: 0.2},
		},
	}

	got := doc.Totals()
	assert.Equal(t, Totals{Days: 3, Hours: 17.8, Regular: 15.5, Tier1: 1, Tier2: 1.1}, got)
}

func TestParsedDocument_Payment(t *testing.T) {
	rate := 32.35
	doc := &ParsedDocument{
		Rows:    []Row{{TotalHours: 8.25}, {TotalHours: 7.5}},
		Summary: SummaryInfo{HourlyRate: &rate},
	}

	assert.Equal(t, 32.35, doc.HourlyRate(DefaultHourlyRate))
	assert.Equal(t, 509.51, doc.Payment(doc.HourlyRate(DefaultHourlyRate)))

	doc.Summary.HourlyRate = nil
	assert.Equal(t, DefaultHourlyRate, doc.HourlyRate(DefaultHourlyRate))
	assert.Equal(t, 504.0, doc.Payment(DefaultHourlyRate))
}

func TestParsedDocument_Count(t *testing.T) {
	doc := &ParsedDocument{DebugLines: []DebugLine{
		{Result: LineParsed}, {Result: LineFiltered}, {Result: LineParsed},
	}}
	assert.Equal(t, 2, doc.Count(LineParsed))
	assert.Equal(t, 0, doc.Count(LineRejected))
}
