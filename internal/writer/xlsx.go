package writer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/models"
)

// SheetName is the name of the single worksheet.
const SheetName = "נוכחות"

// XLSXWriter writes a right-to-left workbook with one attendance sheet.
type XLSXWriter struct{}

func (w *XLSXWriter) Extension() string { return "xlsx" }

func (w *XLSXWriter) Write(out io.Writer, doc *models.ParsedDocument) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	rtl := true
	if err := f.SetSheetView(SheetName, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
		return fmt.Errorf("set sheet view: %w", err)
	}

	columns := doc.Layout.Describe().Columns
	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(columns))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", lastCol, 12); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	for i, row := range doc.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := rowValues(doc.Layout, row)
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	if err := writeTotals(f, doc, len(doc.Rows)+2, bold); err != nil {
		return err
	}

	return f.Write(out)
}

// rowValues keeps hour figures numeric so the sheet can sum them.
func rowValues(layout models.LayoutKind, r models.Row) []any {
	if layout != models.LayoutDetailed {
		return []any{r.Date, r.Weekday, r.Entry, r.Exit, r.TotalHours, ""}
	}
	d := detailOf(r)
	return []any{r.Date, r.Weekday, d.Location, r.Entry, r.Exit, d.Break, r.TotalHours, d.Regular, d.Tier1, d.Tier2}
}

func writeTotals(f *excelize.File, doc *models.ParsedDocument, line int, style int) error {
	t := doc.Totals()
	var values []any
	if doc.Layout == models.LayoutDetailed {
		values = []any{`סה"כ`, t.Days, "", "", "", "", t.Hours, t.Regular, t.Tier1, t.Tier2}
	} else {
		values = []any{`סה"כ`, t.Days, "", "", t.Hours, ""}
	}

	first, err := excelize.CoordinatesToCellName(1, line)
	if err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(values), line)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, first, &values); err != nil {
		return fmt.Errorf("write totals: %w", err)
	}
	return f.SetCellStyle(SheetName, first, last, style)
}
