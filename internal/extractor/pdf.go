package extractor

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// minTextLayer is the number of characters page 1 must carry before its text
// layer is trusted over OCR.
const minTextLayer = 50

// attendanceWords appear on virtually every attendance report.
var attendanceWords = []string{"תאריך", "כניסה", "יציאה", "שעות", "נוכחות", "הפסקה", "יום"}

// TextLayer returns the text embedded in page 1, row by row.
// Scanned documents have no text layer and return an empty string.
func TextLayer(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if r.NumPage() == 0 {
		return "", fmt.Errorf("PDF has no pages")
	}
	page := r.Page(1)
	if page.V.IsNull() {
		return "", nil
	}

	if text := pageByRow(page); text != "" {
		return text, nil
	}

	fonts := make(map[string]*pdf.Font)
	for _, name := range page.Fonts() {
		font := page.Font(name)
		fonts[name] = &font
	}
	plain, err := page.GetPlainText(fonts)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(plain), nil
}

// PageCount returns the number of pages in the PDF.
func PageCount(path string) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return r.NumPage(), nil
}

func pageByRow(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err != nil {
		return ""
	}
	var lines []string
	for _, row := range rows {
		var parts []string
		for _, word := range row.Content {
			parts = append(parts, word.S)
		}
		if line := strings.TrimSpace(strings.Join(parts, " ")); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

// textQuality returns the share of runes that are Hebrew or Latin letters,
// digits, whitespace or common report punctuation.
func textQuality(text string) float64 {
	total, readable := 0, 0
	for _, r := range text {
		total++
		switch {
		case r >= 'א' && r <= 'ת',
			r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			unicode.IsSpace(r),
			strings.ContainsRune(`.,-/:;()'"%₪|`, r):
			readable++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(readable) / float64(total)
}

// isReadable requires enough mostly-readable text with at least one word an
// attendance report would contain.
func isReadable(text string) bool {
	if len([]rune(strings.TrimSpace(text))) <= minTextLayer {
		return false
	}
	if textQuality(text) <= 0.6 {
		return false
	}
	for _, w := range attendanceWords {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
