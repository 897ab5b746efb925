package parser

import (
	"regexp"

	"github.com/Mimi-Berlin/SmartPDFGenerator/internal/models"
)

// DetailedParser reads the detailed layout with overtime bands:
//
//	Date | Day | Location | Entry | Exit | Break | Total | 100% | 125% | 150%
//
// Example line: "01/02/2023 יום רביעי גונן 08:00 16:00 00:30 7.50 7.50 0.00 0.00"
type DetailedParser struct{}

// locationPattern captures the single Hebrew word between the weekday and the
// entry time.
var locationPattern = regexp.MustCompile(`(?:ראשון|שני|שלישי|רביעי|חמישי|שישי|שבת)\s+([א-ת]+)\s+\d{1,2}:`)

const noBreak = "00:00"

func (p *DetailedParser) Layout() models.LayoutKind { return models.LayoutDetailed }

func (p *DetailedParser) Name() string { return models.LayoutDetailed.Describe().Name }

// ParseLine needs a date, at least two clock readings and four decimal
// figures. The figures are assigned to total, 100%, 125% and 150% in the order
// they appear; they are not cross-checked against each other.
func (p *DetailedParser) ParseLine(line string) (models.Row, bool) {
	date, ok := ExtractDate(line)
	if !ok {
		return models.Row{}, false
	}

	day, _ := IdentifyWeekday(line)
	times := findTimes(line, true)
	figures := findFloats(decimalPattern, line)

	if len(times) < 2 || len(figures) < 4 {
		return models.Row{}, false
	}

	brk := noBreak
	if len(times) > 2 {
		brk = times[2]
	}

	var location string
	if m := locationPattern.FindStringSubmatch(line); m != nil {
		location = m[1]
	}

	return models.Row{
		Date:       date,
		Weekday:    day,
		Entry:      times[0],
		Exit:       times[1],
		TotalHours: figures[0],
		Detail: &models.Detail{
			Location: location,
			Break:    brk,
			Regular:  figures[1],
			Tier1:    figures[2],
			Tier2:    figures[3],
		},
	}, true
}
