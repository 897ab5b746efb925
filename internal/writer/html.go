package writer

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/models"
)

// DefaultEmployer heads detailed reports.
const DefaultEmployer = `נ.ע. הנשר בע"מ`

const sabbath = "שבת"

// HTMLWriter writes a printable right-to-left A4 report. Tables are built as
// markdown and rendered with goldmark.
type HTMLWriter struct {
	DefaultRate float64
	Employer    string
}

func (w *HTMLWriter) Extension() string { return "html" }

type page struct {
	Title     string
	Employer  string
	Landscape bool
	Summary   *summaryBox
	Body      template.HTML
}

type summaryBox struct {
	WorkDays     int
	MonthlyHours string
	HourlyRate   string
	Payment      string
}

func (w *HTMLWriter) Write(out io.Writer, doc *models.ParsedDocument) error {
	info := doc.Layout.Describe()
	p := page{Title: info.Name}

	var md strings.Builder
	writeTable(&md, info.Columns, doc.Rows, doc.Layout)

	if doc.Layout == models.LayoutDetailed {
		p.Landscape = true
		p.Employer = w.Employer
		if p.Employer == "" {
			p.Employer = DefaultEmployer
		}
		t := doc.Totals()
		md.WriteString("\n")
		writeMarkdownRow(&md, []string{"ימי עבודה", `סה"כ שעות`, "100%", "125%", "150%", "בונוס", "נסיעות"})
		writeMarkdownRow(&md, []string{"---", "---", "---", "---", "---", "---", "---"})
		writeMarkdownRow(&md, []string{
			strconv.Itoa(t.Days), formatHours(t.Hours), formatHours(t.Regular),
			formatHours(t.Tier1), formatHours(t.Tier2), formatHours(0), formatHours(0),
		})
	} else {
		p.Summary = w.summary(doc)
	}

	body, err := renderMarkdown(md.String())
	if err != nil {
		return err
	}
	p.Body = body

	return pageTemplate.Execute(out, p)
}

func (w *HTMLWriter) summary(doc *models.ParsedDocument) *summaryBox {
	t := doc.Totals()
	box := &summaryBox{WorkDays: t.Days, MonthlyHours: formatHours(t.Hours)}
	if doc.Summary.WorkDays != nil {
		box.WorkDays = *doc.Summary.WorkDays
	}
	if doc.Summary.MonthlyHours != nil {
		box.MonthlyHours = formatHours(*doc.Summary.MonthlyHours)
	}

	fallback := w.DefaultRate
	if fallback <= 0 {
		fallback = models.DefaultHourlyRate
	}
	rate := doc.HourlyRate(fallback)
	box.HourlyRate = formatHours(rate)
	box.Payment = formatHours(doc.Payment(rate))
	return box
}

func writeTable(md *strings.Builder, columns []string, rows []models.Row, layout models.LayoutKind) {
	writeMarkdownRow(md, columns)
	sep := make([]string, len(columns))
	for i := range sep {
		sep[i] = "---"
	}
	writeMarkdownRow(md, sep)

	for _, r := range rows {
		c := cells(layout, r)
		if layout == models.LayoutDetailed && r.Weekday == sabbath {
			c[1] = "**" + c[1] + "**"
		}
		writeMarkdownRow(md, c)
	}
}

func writeMarkdownRow(md *strings.Builder, values []string) {
	md.WriteString("|")
	for _, v := range values {
		v = strings.ReplaceAll(v, "|", `\|`)
		if v == "" {
			v = " "
		}
		md.WriteString(" " + v + " |")
	}
	md.WriteString("\n")
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render report tables: %w", err)
	}
	return template.HTML(buf.String()), nil
}

var pageTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="he" dir="rtl">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: A4{{if .Landscape}} landscape{{end}}; margin: 15mm; }
body { font-family: Arial, "David", sans-serif; direction: rtl; font-size: 11pt; }
h1 { text-align: center; font-size: 16pt; }
h2 { text-align: center; font-size: 13pt; }
table { border-collapse: collapse; width: 100%; margin-bottom: 12px; }
th, td { border: 1px solid #444; padding: 3px 6px; text-align: center; }
th { background: #d9e1f2; }
.summary { border: 1px solid #444; padding: 8px; margin-bottom: 12px; }
.summary span { margin-left: 24px; }
</style>
</head>
<body>
{{- if .Employer}}
<h1>{{.Employer}}</h1>
{{- end}}
<h2>{{.Title}}</h2>
{{- with .Summary}}
<div class="summary">
<span>ימי עבודה: {{.WorkDays}}</span>
<span>שעות חודשיות: {{.MonthlyHours}}</span>
<span>מחיר לשעה: ₪{{.HourlyRate}}</span>
<span>סה"כ לתשלום: ₪{{.Payment}}</span>
</div>
{{- end}}
{{.Body}}
</body>
</html>
`))
