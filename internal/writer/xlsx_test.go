package writer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func readBack(t *testing.T, data []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	view, err := f.GetSheetView(SheetName, 0)
	require.NoError(t, err)
	require.NotNil(t, view.RightToLeft)
	assert.True(t, *view.RightToLeft)

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	return rows
}

func TestXLSXWriter_Simple(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&XLSXWriter{}).Write(&buf, simpleDoc()))

	rows := readBack(t, buf.Bytes())
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"תאריך", "יום", "כניסה", "יציאה", "שעות", "הערות"}, rows[0])
	require.GreaterOrEqual(t, len(rows[1]), 5)
	assert.Equal(t, []string{"05/02/2023", "ראשון", "08:00", "16:15", "8.25"}, rows[1][:5])
	assert.Equal(t, "2", rows[3][1])
	assert.Equal(t, "15.75", rows[3][4])
}

func TestXLSXWriter_Detailed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&XLSXWriter{}).Write(&buf, detailedDoc()))

	rows := readBack(t, buf.Bytes())
	require.Len(t, rows, 4)
	assert.Len(t, rows[0], 10)
	assert.Equal(t, "גונן", rows[1][2])
	assert.Equal(t, "00:30", rows[1][5])
	assert.Equal(t, "10", rows[2][6])

	totals := rows[3]
	assert.Equal(t, "17.5", totals[6])
	assert.Equal(t, "15.5", totals[7])
	assert.Equal(t, "1", totals[8])
	assert.Equal(t, "1", totals[9])
}
