package writer

import (
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/go-pdf/fpdf"

	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/models"
)

// PDFWriter writes a plain A4 table report with the core Helvetica font.
// Helvetica has no Hebrew glyphs, so headers are English and cells holding
// non-ASCII text are left empty.
type PDFWriter struct {
	DefaultRate float64
}

func (w *PDFWriter) Extension() string { return "pdf" }

var pdfColumns = map[models.LayoutKind]struct {
	headers []string
	widths  []float64
}{
	models.LayoutSimple: {
		headers: []string{"Date", "Day", "Entry", "Exit", "Hours", "Notes"},
		widths:  []float64{30, 25, 25, 25, 25, 60},
	},
	models.LayoutDetailed: {
		headers: []string{"Date", "Day", "Location", "Entry", "Exit", "Break", "Total", "100%", "125%", "150%"},
		widths:  []float64{25, 18, 18, 18, 18, 18, 18, 18, 18, 18},
	},
}

func (w *PDFWriter) Write(out io.Writer, doc *models.ParsedDocument) error {
	layout := doc.Layout
	if layout != models.LayoutDetailed {
		layout = models.LayoutSimple
	}
	cols := pdfColumns[layout]

	title := "Attendance Report - Simple"
	if layout == models.LayoutDetailed {
		title = "Attendance Report - Detailed"
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	if layout == models.LayoutSimple {
		rate := doc.HourlyRate(w.DefaultRate)
		t := doc.Totals()
		pdf.SetFont("Helvetica", "", 10)
		for _, line := range []string{
			"Work Days: " + strconv.Itoa(t.Days),
			"Total Hours: " + formatHours(t.Hours),
			"Hourly Rate: " + formatHours(rate),
			"Total Payment: " + formatHours(doc.Payment(rate)),
		} {
			pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
		}
		pdf.Ln(5)
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range cols.headers {
		pdf.CellFormat(cols.widths[i], 8, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range doc.Rows {
		for i, c := range cells(layout, row) {
			pdf.CellFormat(cols.widths[i], 7, asciiOnly(c), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(out); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func asciiOnly(s string) string {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return ""
		}
	}
	return s
}
