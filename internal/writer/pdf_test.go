package writer

import (
	"bytes"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/models"
)

func readPDF(t *testing.T, data []byte) string {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Equal(t, 1, r.NumPage())

	page := r.Page(1)
	fonts := make(map[string]*pdf.Font)
	for _, name := range page.Fonts() {
		font := page.Font(name)
		fonts[name] = &font
	}
	text, err := page.GetPlainText(fonts)
	require.NoError(t, err)
	return text
}

func TestPDFWriter_Simple(t *testing.T) {
	var buf bytes.Buffer
	w := &PDFWriter{DefaultRate: 32}
	require.NoError(t, w.Write(&buf, simpleDoc()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	text := readPDF(t, buf.Bytes())
	assert.Contains(t, text, "Attendance Report - Simple")
	assert.Contains(t, text, "Work Days: 2")
	assert.Contains(t, text, "Total Hours: 15.75")
	assert.Contains(t, text, "Hourly Rate: 32.35")
	assert.Contains(t, text, "Total Payment: 509.51")
	assert.Contains(t, text, "05/02/2023")
	assert.Contains(t, text, "8.25")
	assert.NotContains(t, text, "ראשון")
}

func TestPDFWriter_Detailed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&PDFWriter{}).Write(&buf, detailedDoc()))

	text := readPDF(t, buf.Bytes())
	assert.Contains(t, text, "Attendance Report - Detailed")
	assert.Contains(t, text, "150%")
	assert.Contains(t, text, "04/02/2023")
	assert.NotContains(t, text, "Total Payment")
}

func TestPDFWriter_EmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	doc := &models.ParsedDocument{Layout: models.LayoutSimple}
	require.NoError(t, (&PDFWriter{DefaultRate: 32}).Write(&buf, doc))

	text := readPDF(t, buf.Bytes())
	assert.Contains(t, text, "Hourly Rate: 32.00")
	assert.Contains(t, text, "Total Payment: 0.00")
}

func TestASCIIOnly(t *testing.T) {
	assert.Equal(t, "08:00", asciiOnly("08:00"))
	assert.Equal(t, "", asciiOnly("גונן"))
	assert.Equal(t, "", asciiOnly(""))
}
