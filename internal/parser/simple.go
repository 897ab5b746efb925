package parser

import (
	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/hours"
	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/models"
)

// SimpleParser reads the simple attendance layout:
//
//	Date | Day | Entry | Exit | Hours | Notes
//
// Example line: "05/02/23 ראשון 08:00 16:30 8.50"
type SimpleParser struct{}

// maxDayHours bounds a plausible total; larger values are extraction garbage.
const maxDayHours = 24.0

func (p *SimpleParser) Layout() models.LayoutKind { return models.LayoutSimple }

func (p *SimpleParser) Name() string { return models.LayoutSimple.Describe().Name }

// ParseLine needs a date and two clock readings. The hours column is the last
// two-decimal figure on the line; when OCR lost it, the span between entry and
// exit is used instead.
func (p *SimpleParser) ParseLine(line string) (models.Row, bool) {
	date, ok := ExtractDate(line)
	if !ok {
		return models.Row{}, false
	}

	times := findTimes(line, false)
	if len(times) < 2 {
		return models.Row{}, false
	}
	entry, exit := times[0], times[1]

	var total float64
	if figures := findFloats(hoursPattern, line); len(figures) > 0 {
		total = figures[len(figures)-1]
	} else {
		span, err := hours.Between(entry, exit, 0)
		if err != nil {
			return models.Row{}, false
		}
		total = span
	}

	if total <= 0 || total > maxDayHours {
		return models.Row{}, false
	}

	day, _ := IdentifyWeekday(line)

	return models.Row{
		Date:       date,
		Weekday:    day,
		Entry:      entry,
		Exit:       exit,
		TotalHours: total,
	}, true
}
