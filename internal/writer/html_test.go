package writer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/models"
)

func TestHTMLWriter_Simple(t *testing.T) {
	var buf bytes.Buffer
	w := &HTMLWriter{DefaultRate: 32}
	require.NoError(t, w.Write(&buf, simpleDoc()))

	out := buf.String()
	assert.Contains(t, out, `dir="rtl"`)
	assert.Contains(t, out, "size: A4;")
	assert.NotContains(t, out, "landscape")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>05/02/2023</td>")
	assert.Contains(t, out, "ימי עבודה: 21")
	assert.Contains(t, out, "שעות חודשיות: 63.02")
	assert.Contains(t, out, "₪32.35")
	// 15.75 hours at 32.35
	assert.Contains(t, out, "₪509.51")
	assert.NotContains(t, out, DefaultEmployer)
}

func TestHTMLWriter_SimpleDefaultRate(t *testing.T) {
	doc := simpleDoc()
	doc.Summary = models.SummaryInfo{}

	var buf bytes.Buffer
	require.NoError(t, (&HTMLWriter{}).Write(&buf, doc))

	out := buf.String()
	assert.Contains(t, out, "ימי עבודה: 2")
	assert.Contains(t, out, "שעות חודשיות: 15.75")
	assert.Contains(t, out, "₪32.00")
	assert.Contains(t, out, "₪504.00")
}

func TestHTMLWriter_Detailed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&HTMLWriter{}).Write(&buf, detailedDoc()))

	out := buf.String()
	assert.Contains(t, out, "size: A4 landscape;")
	assert.Contains(t, out, "<h1>נ.ע. הנשר בע&#34;מ</h1>")
	assert.Contains(t, out, "<strong>שבת</strong>")
	assert.NotContains(t, out, "<strong>רביעי</strong>")
	assert.Contains(t, out, "<td>17.50</td>")
	assert.Contains(t, out, "<td>15.50</td>")
	assert.NotContains(t, out, "ימי עבודה:")
}

func TestHTMLWriter_EscapesCellContent(t *testing.T) {
	doc := detailedDoc()
	doc.Rows[0].Detail.Location = "<script>alert(1)</script>"

	var buf bytes.Buffer
	require.NoError(t, (&HTMLWriter{Employer: "Acme | Co"}).Write(&buf, doc))

	out := buf.String()
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "<h1>Acme | Co</h1>")
}
