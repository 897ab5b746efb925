package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/models"
)

func ptr[T any](v T) *T { return &v }

func simpleDoc() *models.ParsedDocument {
	return &models.ParsedDocument{
		Layout: models.LayoutSimple,
		Rows: []models.Row{
			{Date: "05/02/2023", Weekday: "ראשון", Entry: "08:00", Exit: "16:15", TotalHours: 8.25},
			{Date: "06/02/2023", Weekday: "שני", Entry: "08:10", Exit: "15:40", TotalHours: 7.5},
		},
		Summary: models.SummaryInfo{WorkDays: ptr(21), MonthlyHours: ptr(63.02), HourlyRate: ptr(32.35)},
	}
}

func detailedDoc() *models.ParsedDocument {
	return &models.ParsedDocument{
		Layout: models.LayoutDetailed,
		Rows: []models.Row{
			{
				Date: "01/02/2023", Weekday: "רביעי", Entry: "08:00", Exit: "16:00", TotalHours: 7.5,
				Detail: &models.Detail{Location: "גונן", Break: "00:30", Regular: 7.5},
			},
			{
				Date: "04/02/2023", Weekday: "שבת", Entry: "07:00", Exit: "17:30", TotalHours: 10,
				Detail: &models.Detail{Break: "00:30", Regular: 8, Tier1: 1, Tier2: 1},
			},
		},
		Summary: models.SummaryInfo{TotalDays: ptr(2)},
	}
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		name string
		ext  string
	}{
		{"csv", "csv"},
		{"XLSX", "xlsx"},
		{"excel", "xlsx"},
		{" html ", "html"},
		{"PDF", "pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ForFormat(tt.name, 32)
			require.NoError(t, err)
			assert.Equal(t, tt.ext, w.Extension())
		})
	}

	_, err := ForFormat("docx", 32)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")

	require.NoError(t, WriteToFile(&CSVWriter{}, path, simpleDoc()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "05/02/2023")

	err = WriteToFile(&CSVWriter{}, filepath.Join(t.TempDir(), "missing", "report.csv"), simpleDoc())
	assert.Error(t, err)
}

func TestCells(t *testing.T) {
	doc := detailedDoc()
	assert.Equal(t,
		[]string{"01/02/2023", "רביעי", "גונן", "08:00", "16:00", "00:30", "7.50", "7.50", "0.00", "0.00"},
		cells(models.LayoutDetailed, doc.Rows[0]))

	bare := models.Row{Date: "02/02/2023", Entry: "08:00", Exit: "16:00", TotalHours: 8}
	assert.Len(t, cells(models.LayoutDetailed, bare), 10)

	assert.Equal(t,
		[]string{"05/02/2023", "ראשון", "08:00", "16:15", "8.25", ""},
		cells(models.LayoutSimple, simpleDoc().Rows[0]))
}
