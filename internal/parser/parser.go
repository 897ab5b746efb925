package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/models"
)

// ErrUnknownLayout is returned by New for a layout with no line strategy.
var ErrUnknownLayout = errors.New("unknown layout")

// minLineLength is the shortest line, in characters, that can hold a data row.
const minLineLength = 15

// noiseKeywords mark column headers and letterhead lines.
var noiseKeywords = []string{"תאריך", "כניסה", "יציאה", "מקום", "הפסקה", "DTN", `בע"מ`, "נ.ע."}

// Parser turns a single normalized report line into a row.
type Parser interface {
	// ParseLine returns false when the line is not a data row.
	ParseLine(line string) (models.Row, bool)
	// Layout returns the layout this parser reads.
	Layout() models.LayoutKind
	// Name returns the human-readable layout name.
	Name() string
}

// New returns the line parser for the given layout.
func New(layout models.LayoutKind) (Parser, error) {
	switch layout {
	case models.LayoutSimple:
		return &SimpleParser{}, nil
	case models.LayoutDetailed:
		return &DetailedParser{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, layout)
	}
}

// Parse normalizes raw recognized text and runs every line that survives the
// pre-filter through p. Lines keep their source order. A document with no
// data rows yields an empty Rows slice, not an error.
func Parse(p Parser, raw string) *models.ParsedDocument {
	doc := &models.ParsedDocument{
		Layout:  p.Layout(),
		Summary: ExtractSummary(raw, p.Layout()),
	}

	for i, line := range strings.Split(Normalize(raw), "\n") {
		line = strings.TrimSpace(line)
		debug := models.DebugLine{LineNum: i + 1, Text: line}

		switch {
		case line == "":
			continue
		case !KeepLine(line):
			debug.Result = models.LineFiltered
		default:
			if row, ok := p.ParseLine(line); ok {
				doc.Rows = append(doc.Rows, row)
				debug.Result = models.LineParsed
			} else {
				debug.Result = models.LineRejected
			}
		}
		doc.DebugLines = append(doc.DebugLines, debug)
	}

	return doc
}

// KeepLine reports whether a trimmed line may be a data row: long enough and
// free of header and letterhead keywords.
func KeepLine(line string) bool {
	if utf8.RuneCountInString(line) < minLineLength {
		return false
	}
	for _, kw := range noiseKeywords {
		if strings.Contains(line, kw) {
			return false
		}
	}
	return true
}
