package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/models"
)

// CSVWriter writes attendance rows in CSV format.
type CSVWriter struct {
	IncludeHeader bool
}

func (w *CSVWriter) Extension() string { return "csv" }

// Write writes the document's rows to out, preceded by "#" metadata rows
// when IncludeHeader is set.
func (w *CSVWriter) Write(out io.Writer, doc *models.ParsedDocument) error {
	writer := csv.NewWriter(out)
	info := doc.Layout.Describe()

	if w.IncludeHeader {
		for _, meta := range metadata(info.Name, doc.Summary) {
			if err := writer.Write(meta); err != nil {
				return fmt.Errorf("failed to write CSV metadata: %w", err)
			}
		}
	}

	if err := writer.Write(info.Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range doc.Rows {
		if err := writer.Write(cells(doc.Layout, row)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func metadata(name string, s models.SummaryInfo) [][]string {
	rows := [][]string{{"# Layout", name}}
	if s.WorkDays != nil {
		rows = append(rows, []string{"# Work Days", strconv.Itoa(*s.WorkDays)})
	}
	if s.MonthlyHours != nil {
		rows = append(rows, []string{"# Monthly Hours", formatHours(*s.MonthlyHours)})
	}
	if s.HourlyRate != nil {
		rows = append(rows, []string{"# Hourly Rate", formatHours(*s.HourlyRate)})
	}
	if s.TotalDays != nil {
		rows = append(rows, []string{"# Total Days", strconv.Itoa(*s.TotalDays)})
	}
	return rows
}
