// Package writer renders parsed attendance documents to output files.
package writer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/models"
)

// ErrUnknownFormat is returned by ForFormat for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Writer renders a document in one output format.
type Writer interface {
	// Extension is the file extension without the dot.
	Extension() string
	Write(out io.Writer, doc *models.ParsedDocument) error
}

// ForFormat returns the writer for a format name: csv, xlsx, html or pdf.
// defaultRate is the hourly rate used when the document carries none.
func ForFormat(name string, defaultRate float64) (Writer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "csv":
		return &CSVWriter{IncludeHeader: true}, nil
	case "xlsx", "excel":
		return &XLSXWriter{}, nil
	case "html":
		return &HTMLWriter{DefaultRate: defaultRate}, nil
	case "pdf":
		return &PDFWriter{DefaultRate: defaultRate}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// WriteToFile writes doc to path with w.
func WriteToFile(w Writer, path string, doc *models.ParsedDocument) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	if err := w.Write(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}

func detailOf(r models.Row) models.Detail {
	if r.Detail == nil {
		return models.Detail{}
	}
	return *r.Detail
}

// cells returns a row's values as text, in the layout's column order.
func cells(layout models.LayoutKind, r models.Row) []string {
	if layout != models.LayoutDetailed {
		return []string{r.Date, r.Weekday, r.Entry, r.Exit, formatHours(r.TotalHours), ""}
	}
	d := detailOf(r)
	return []string{
		r.Date, r.Weekday, d.Location, r.Entry, r.Exit, d.Break,
		formatHours(r.TotalHours), formatHours(d.Regular), formatHours(d.Tier1), formatHours(d.Tier2),
	}
}
